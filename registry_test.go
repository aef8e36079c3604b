package vcard_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/mocks"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := vcard.DefaultRegistry()
	for _, name := range []string{"fn", "N", "Tel", "BDAY", "AGENT", "X-UNKNOWN"} {
		c := reg.Codec(name)
		if c == nil {
			t.Errorf("reg.Codec(%q) = nil, want codec", name)
			continue
		}
		if got, _ := reg.Lookup(name); name != "X-UNKNOWN" && got == nil {
			t.Errorf("reg.Lookup(%q) = nil, want codec", name)
		}
	}
	if _, ok := reg.Lookup("X-UNKNOWN"); ok {
		t.Errorf("reg.Lookup(\"X-UNKNOWN\") ok = true, want false")
	}
	if got := reg.Codec("x-unknown").Name(); got != "X-UNKNOWN" {
		t.Errorf("reg.Codec(\"x-unknown\").Name() = %q, want %q", got, "X-UNKNOWN")
	}
	if reg.Order(vcard.PropFN) >= reg.Order(vcard.PropN) || reg.Order(vcard.PropN) >= reg.Order(vcard.PropNote) {
		t.Errorf("registry order FN=%d N=%d NOTE=%d, want increasing",
			reg.Order(vcard.PropFN), reg.Order(vcard.PropN), reg.Order(vcard.PropNote))
	}
	if got := reg.Order("X-UNKNOWN"); got != -1 {
		t.Errorf("reg.Order(\"X-UNKNOWN\") = %d, want -1", got)
	}
}

func TestRegistry_CodecFor(t *testing.T) {
	t.Parallel()

	reg := vcard.DefaultRegistry()
	cases := []struct {
		name string
		prop vcard.Property
		want string
	}{
		{"typed", vcard.NewFormattedName("John"), vcard.PropFN},
		{"raw extended", vcard.NewRawProperty("X-FOO", "bar"), "X-FOO"},
		{"raw standard", vcard.NewRawProperty(vcard.PropBday, "sometime"), vcard.PropBday},
	}
	for _, c := range cases {
		if codec := reg.CodecFor(c.prop); codec == nil || codec.Name() != c.want {
			t.Errorf("reg.CodecFor(%s) = %v, want codec %s", c.name, codec, c.want)
		}
	}
	if codec := reg.CodecFor(vcard.NewText(vcard.PropTel, "555")); codec != nil {
		t.Errorf("reg.CodecFor(TEL as *Text) = %v, want nil", codec)
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	custom := mocks.NewMockCodec(ctrl)
	custom.EXPECT().Name().Return("x-custom").AnyTimes()
	note := mocks.NewMockCodec(ctrl)
	note.EXPECT().Name().Return(vcard.PropNote).AnyTimes()

	def := vcard.DefaultRegistry()
	reg := def.Clone().Register(custom).Register(note)

	if got, _ := reg.Lookup("X-CUSTOM"); got != custom {
		t.Errorf("reg.Lookup(\"X-CUSTOM\") = %v, want the registered codec", got)
	}
	if got := reg.Order("X-CUSTOM"); got != len(reg.Codecs())-1 {
		t.Errorf("reg.Order(\"X-CUSTOM\") = %d, want last position %d", got, len(reg.Codecs())-1)
	}
	if got, want := reg.Order(vcard.PropNote), def.Order(vcard.PropNote); got != want {
		t.Errorf("reg.Order(NOTE) = %d, want replaced in place at %d", got, want)
	}
	if got, _ := reg.Lookup(vcard.PropNote); got != note {
		t.Errorf("reg.Lookup(NOTE) = %v, want the replacement codec", got)
	}
	if _, ok := def.Lookup("X-CUSTOM"); ok {
		t.Errorf("default registry modified by its clone")
	}
	if got := len(vcard.NewRegistry().Codecs()); got != 0 {
		t.Errorf("len(vcard.NewRegistry().Codecs()) = %d, want 0", got)
	}
}
