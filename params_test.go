package vcard_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/vcard"
)

func TestParams_Append(t *testing.T) {
	t.Parallel()

	var ps vcard.Params
	ps.Append("type", "home", "voice").Append("TYPE", "VOICE", "cell").Append("pref", "1")

	want := vcard.Params{
		{Name: "type", Values: []string{"home", "voice", "cell"}},
		{Name: "pref", Values: []string{"1"}},
	}
	if diff := cmp.Diff([]vcard.Param(ps), []vcard.Param(want)); diff != "" {
		t.Errorf("ps = %v, want %v\ndiff (-got +want):\n%v", ps, want, diff)
	}
	if diff := cmp.Diff(ps.Types(), []string{"home", "voice", "cell"}); diff != "" {
		t.Errorf("ps.Types() diff (-got +want):\n%v", diff)
	}
	if !ps.HasType("CELL") {
		t.Errorf("ps.HasType(\"CELL\") = false, want true")
	}
}

func TestParams_SetDel(t *testing.T) {
	t.Parallel()

	ps := vcard.Params{{Name: "TYPE", Values: []string{"work"}}, {Name: "LANGUAGE", Values: []string{"en"}}}
	ps.Set("type", "home")
	if got, _ := ps.First(vcard.ParamType); got != "home" {
		t.Errorf("ps.First(TYPE) = %q, want %q", got, "home")
	}
	if diff := cmp.Diff(ps.Names(), []string{"TYPE", "LANGUAGE"}); diff != "" {
		t.Errorf("ps.Names() diff (-got +want):\n%v", diff)
	}

	ps.Set(vcard.ParamLanguage)
	if ps.Has(vcard.ParamLanguage) {
		t.Errorf("ps.Has(LANGUAGE) = true after Set without values, want false")
	}
	ps.RemoveType("HOME")
	if ps != nil {
		t.Errorf("ps = %v after removing the last value, want nil", ps)
	}
}

func TestParams_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b vcard.Params
		want bool
	}{
		{"both empty", nil, vcard.Params{}, true},
		{
			"order and case",
			vcard.Params{{Name: "TYPE", Values: []string{"home", "voice"}}, {Name: "PREF", Values: []string{"1"}}},
			vcard.Params{{Name: "pref", Values: []string{"1"}}, {Name: "type", Values: []string{"VOICE", "Home"}}},
			true,
		},
		{
			"different values",
			vcard.Params{{Name: "TYPE", Values: []string{"home"}}},
			vcard.Params{{Name: "TYPE", Values: []string{"work"}}},
			false,
		},
		{
			"missing name",
			vcard.Params{{Name: "TYPE", Values: []string{"home"}}},
			vcard.Params{{Name: "LABEL", Values: []string{"home"}}},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("(%v).Equal(%v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestParams_Accessors(t *testing.T) {
	t.Parallel()

	var ps vcard.Params
	ps.SetValue(vcard.DataTypeURI).SetPref(2).SetMediaType("image/png").SetSortAs("Doe", "John")
	if got := ps.Value(); got != vcard.DataTypeURI {
		t.Errorf("ps.Value() = %q, want %q", got, vcard.DataTypeURI)
	}
	if n, ok := ps.Pref(); !ok || n != 2 {
		t.Errorf("ps.Pref() = %d, %v, want 2, true", n, ok)
	}
	if got := ps.MediaType(); got != "image/png" {
		t.Errorf("ps.MediaType() = %q, want %q", got, "image/png")
	}
	if diff := cmp.Diff(ps.SortAs(), []string{"Doe", "John"}); diff != "" {
		t.Errorf("ps.SortAs() diff (-got +want):\n%v", diff)
	}
	if got, want := ps.String(), "VALUE=uri;PREF=2;MEDIATYPE=image/png;SORT-AS=Doe,John"; got != want {
		t.Errorf("ps.String() = %q, want %q", got, want)
	}

	ps.SetPref(0).SetMediaType("").SetValue("")
	if got, want := ps.String(), "SORT-AS=Doe,John"; got != want {
		t.Errorf("ps.String() = %q, want %q", got, want)
	}

	bad := vcard.Params{{Name: "PREF", Values: []string{"first"}}}
	if _, ok := bad.Pref(); ok {
		t.Errorf("bad.Pref() ok = true, want false")
	}
}

func TestParams_Clone(t *testing.T) {
	t.Parallel()

	ps := vcard.Params{{Name: "TYPE", Values: []string{"home"}}}
	cl := ps.Clone()
	cl.AddType("work")
	if ps.HasType("work") {
		t.Errorf("ps.HasType(\"work\") = true after modifying the clone, want false")
	}
	if got := vcard.Params(nil).Clone(); got != nil {
		t.Errorf("nil.Clone() = %v, want nil", got)
	}
}

func TestParseDataType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want vcard.DataType
		v21  string
		v40  string
	}{
		{"", "", "", ""},
		{"URL", vcard.DataTypeURI, "url", "uri"},
		{"uri", vcard.DataTypeURI, "url", "uri"},
		{"cid", vcard.DataTypeContentID, "content-id", "cid"},
		{" Date-Time ", vcard.DataTypeDateTime, "date-time", "date-time"},
	}
	for _, c := range cases {
		got := vcard.ParseDataType(c.in)
		if got != c.want {
			t.Errorf("vcard.ParseDataType(%q) = %q, want %q", c.in, got, c.want)
		}
		if s := got.Render(vcard.V21); s != c.v21 {
			t.Errorf("DataType(%q).Render(V21) = %q, want %q", got, s, c.v21)
		}
		if s := got.Render(vcard.V40); s != c.v40 {
			t.Errorf("DataType(%q).Render(V40) = %q, want %q", got, s, c.v40)
		}
	}
}
