package grammar_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar"
)

func TestIsTelNum(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		want, glob bool
	}{
		{"", false, false},
		{"+1-555-9876", true, true},
		{"+1(555)9876", true, true},
		{"+1 555", false, false},
		{"+", false, false},
		{"+-.", false, false},
		{"7042", true, false},
		{"*21#", true, false},
		{"abc", true, false},
		{"xyz", false, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsTelNum(c.in); got != c.want {
				t.Errorf("grammar.IsTelNum(%q) = %v, want %v", c.in, got, c.want)
			}
			if got := grammar.IsGlobTelNum(c.in); got != c.glob {
				t.Errorf("grammar.IsGlobTelNum(%q) = %v, want %v", c.in, got, c.glob)
			}
		})
	}
}

func TestCleanTelNum(t *testing.T) {
	t.Parallel()

	if got, want := grammar.CleanTelNum("+1 (555) 98-76.5"), "+1 555 98765"; got != want {
		t.Errorf("grammar.CleanTelNum() = %q, want %q", got, want)
	}
}

func TestIsTelURIParts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"ext digits", grammar.IsTelExt[string], "1-01", true},
		{"ext letters", grammar.IsTelExt[string], "abc", false},
		{"ext empty", grammar.IsTelExt[string], "", false},
		{"isub", grammar.IsTelSubaddr[string], "a%3Bb", true},
		{"isub bad escape", grammar.IsTelSubaddr[string], "a%zz", false},
		{"pname", grammar.IsTelURIParamName[string], "phone-context", true},
		{"pname underscore", grammar.IsTelURIParamName[string], "a_b", false},
		{"pname empty", grammar.IsTelURIParamName[string], "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.fn(c.in); got != c.want {
				t.Errorf("%s(%q) = %v, want %v", c.name, c.in, got, c.want)
			}
		})
	}
}

func TestParseTelURI(t *testing.T) {
	t.Parallel()

	n, err := grammar.ParseTelURI("tel:+1-555;ext=1;foo=bar")
	if err != nil {
		t.Fatalf("grammar.ParseTelURI() error = %v, want nil", err)
	}
	if got, want := grammar.MustGetNode(n, "global-number-digits").String(), "+1-555"; got != want {
		t.Errorf("global-number-digits = %q, want %q", got, want)
	}
	if got, want := len(n.GetNodes("par")), 2; got != want {
		t.Errorf("len(par) = %d, want %d", got, want)
	}

	for _, in := range []string{"", "tel:", "tel:+1 555", "tel:+1;=x", "tel:7042", "sip:+1"} {
		if _, err := grammar.ParseTelURI(in); !errors.Is(err, errorutil.ErrInvalidArgument) {
			t.Errorf("grammar.ParseTelURI(%q) error = %v, want %v", in, err, errorutil.ErrInvalidArgument)
		}
	}
}

func TestIsName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in          string
		name, group bool
	}{
		{"", false, false},
		{"FN", true, true},
		{"X-ABLabel", true, true},
		{"item1", true, true},
		{"a_b", false, false},
		{"A.B", false, false},
		{"NOTE:", false, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsName(c.in); got != c.name {
				t.Errorf("grammar.IsName(%q) = %v, want %v", c.in, got, c.name)
			}
			if got := grammar.IsGroup(c.in); got != c.group {
				t.Errorf("grammar.IsGroup(%q) = %v, want %v", c.in, got, c.group)
			}
			if got := grammar.IsParamName(c.in); got != c.name {
				t.Errorf("grammar.IsParamName(%q) = %v, want %v", c.in, got, c.name)
			}
		})
	}
}

func TestParamValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in             string
		safe, quotable bool
	}{
		{"", true, true},
		{"home", true, true},
		{"a b\t", true, true},
		{"héllo", true, true},
		{"http://a", false, true},
		{"a,b;c", false, true},
		{`a"b`, false, false},
		{"a\nb", false, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsSafeParamValue(c.in); got != c.safe {
				t.Errorf("grammar.IsSafeParamValue(%q) = %v, want %v", c.in, got, c.safe)
			}
			if got := grammar.IsQuotableParamValue(c.in); got != c.quotable {
				t.Errorf("grammar.IsQuotableParamValue(%q) = %v, want %v", c.in, got, c.quotable)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a%20b", "a b"},
		{"%41%42", "AB"},
		{"%zz", "%zz"},
		{"%2", "%2"},
	}
	for _, c := range cases {
		if got := grammar.Unescape(c.in); got != c.want {
			t.Errorf("grammar.Unescape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
