package vcard_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/ghettovoice/vcard"
)

func TestCard(t *testing.T) {
	t.Parallel()

	home := vcard.NewTelephone("555-1234")
	work := vcard.NewTelephone("555-9876")
	c := vcard.New(
		vcard.NewFormattedName("John Doe"),
		home,
		nil,
		vcard.NewRawProperty(vcard.PropVersion, "4.0"),
		vcard.NewEmail("john@example.com"),
		work,
	)

	if got := c.Len(); got != 4 {
		t.Errorf("c.Len() = %d, want 4 without nil and framing properties", got)
	}
	if got := c.FormattedName(); got != "John Doe" {
		t.Errorf("c.FormattedName() = %q, want %q", got, "John Doe")
	}
	if diff := cmp.Diff(c.Telephones(), []*vcard.Telephone{home, work}); diff != "" {
		t.Errorf("c.Telephones() diff (-got +want):\n%v", diff)
	}
	if !c.Has("email") || c.Has(vcard.PropAdr) {
		t.Errorf("c.Has(email) = %v, c.Has(ADR) = %v, want true, false", c.Has("email"), c.Has(vcard.PropAdr))
	}

	c.SetFormattedName("Johnny").Set(vcard.NewTelephone("555-0000"))
	names := make([]string, 0, c.Len())
	for _, p := range c.Properties() {
		names = append(names, p.Name())
	}
	if diff := cmp.Diff(names, []string{"FN", "TEL", "EMAIL"}); diff != "" {
		t.Errorf("property names after Set diff (-got +want):\n%v", diff)
	}
	if got := c.Telephones()[0].Text(); got != "555-0000" {
		t.Errorf("c.Telephones()[0].Text() = %q, want %q", got, "555-0000")
	}

	if !c.RemoveProperty(c.First(vcard.PropEmail)) || c.Has(vcard.PropEmail) {
		t.Errorf("c.RemoveProperty(EMAIL) did not remove the property")
	}
	c.Remove("fn")
	if got := c.FormattedName(); got != "" {
		t.Errorf("c.FormattedName() = %q after Remove, want empty", got)
	}
}

func TestCard_Accessors(t *testing.T) {
	t.Parallel()

	n := vcard.NewStructuredName("Doe", "John")
	c := vcard.New(n, vcard.NewText(vcard.PropKind, "Group"))
	if c.StructuredName() != n {
		t.Errorf("c.StructuredName() = %v, want %v", c.StructuredName(), n)
	}
	if got := c.Kind(); got != "group" {
		t.Errorf("c.Kind() = %q, want %q", got, "group")
	}

	c.SetUID(vcard.NewUID())
	uid := c.UID()
	if !strings.HasPrefix(uid, "urn:uuid:") {
		t.Fatalf("c.UID() = %q, want urn:uuid: prefix", uid)
	}
	if _, err := uuid.Parse(uid); err != nil {
		t.Errorf("uuid.Parse(%q) error = %v, want nil", uid, err)
	}

	if p, ok := vcard.FirstOf[*vcard.Telephone](c, vcard.PropKind); ok {
		t.Errorf("vcard.FirstOf[*Telephone](KIND) = %v, true, want false", p)
	}
	if got := len(vcard.All[*vcard.Text](c)); got != 2 {
		t.Errorf("len(vcard.All[*Text](c)) = %d, want 2", got)
	}

	var nilCard *vcard.Card
	if nilCard.Len() != 0 || nilCard.First(vcard.PropFN) != nil || nilCard.Properties() != nil {
		t.Errorf("nil card accessors returned values, want zero values")
	}
}

func TestCard_Equal(t *testing.T) {
	t.Parallel()

	a := vcard.New(vcard.NewFormattedName("John Doe"), vcard.NewNote("note"))
	b := vcard.New(vcard.NewFormattedName("John Doe"), vcard.NewNote("note"))
	c := vcard.New(vcard.NewNote("note"), vcard.NewFormattedName("John Doe"))
	d := vcard.New(vcard.NewFormattedName("John Doe"), vcard.NewNote("other"))

	if !a.Equal(b) {
		t.Errorf("a.Equal(b) = false, want true")
	}
	if !a.Equal(c) {
		t.Errorf("a.Equal(c) = false, want true for another order across names")
	}
	if a.Equal(d) {
		t.Errorf("a.Equal(d) = true, want false")
	}

	e := vcard.New(vcard.NewTelephone("+1 555 1"), vcard.NewNote("n"), vcard.NewTelephone("+1 555 2"))
	f := vcard.New(vcard.NewNote("n"), vcard.NewTelephone("+1 555 1"), vcard.NewTelephone("+1 555 2"))
	g := vcard.New(vcard.NewNote("n"), vcard.NewTelephone("+1 555 2"), vcard.NewTelephone("+1 555 1"))
	if !e.Equal(f) {
		t.Errorf("e.Equal(f) = false, want true for TEL order kept")
	}
	if e.Equal(g) {
		t.Errorf("e.Equal(g) = true, want false for another TEL order")
	}
	if a.Equal(nil) || a.Equal("card") {
		t.Errorf("a.Equal(non-card) = true, want false")
	}
}
