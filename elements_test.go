package vcard_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ghettovoice/vcard"
)

func TestXElement(t *testing.T) {
	t.Parallel()

	el, err := vcard.ParseXElement(`<?xml version="1.0"?>
<bday xmlns="urn:ietf:params:xml:ns:vcard-4.0" note="x">
	<parameters><type><text>home</text><text>work</text></type></parameters>
	<date-and-or-time>--0615</date-and-or-time>
</bday>`)
	if err != nil {
		t.Fatalf("vcard.ParseXElement() error = %v, want nil", err)
	}
	if el.Space != vcard.XMLNamespace || el.Name != "bday" {
		t.Errorf("element name = {%s}%s, want {%s}bday", el.Space, el.Name, vcard.XMLNamespace)
	}
	if got := el.Attr("NOTE"); got != "x" {
		t.Errorf("el.Attr(\"NOTE\") = %q, want %q", got, "x")
	}
	if len(el.Attrs) != 1 {
		t.Errorf("el.Attrs = %v, want namespace declarations dropped", el.Attrs)
	}
	if diff := cmp.Diff(el.Child("parameters").Child("TYPE").Texts("text"), []string{"home", "work"}); diff != "" {
		t.Errorf("parameter texts diff (-got +want):\n%v", diff)
	}

	dt, s, ok := el.ValueOf()
	if !ok || dt != vcard.DataTypeDateAndOrTime || s != "--0615" {
		t.Errorf("el.ValueOf() = %q, %q, %v, want %q, %q, true", dt, s, ok, vcard.DataTypeDateAndOrTime, "--0615")
	}
	if _, _, ok := el.ValueOf(vcard.DataTypeText); ok {
		t.Errorf("el.ValueOf(text) ok = true, want false")
	}
	if el.Child("missing") != nil || el.Child("missing").Child("x") != nil {
		t.Errorf("el.Child(\"missing\") != nil, want nil")
	}
}

func TestXElement_String(t *testing.T) {
	t.Parallel()

	el := vcard.NewXElement("a", "").Append(
		&vcard.XElement{Name: "b", Text: "x < y"},
		vcard.NewXElement("c", ""),
	)
	if got, want := el.String(), "<a><b>x &lt; y</b><c></c></a>"; got != want {
		t.Errorf("el.String() = %q, want %q", got, want)
	}

	back, err := vcard.ParseXElement(el.String())
	if err != nil {
		t.Fatalf("vcard.ParseXElement(%q) error = %v, want nil", el.String(), err)
	}
	if diff := cmp.Diff(back, el); diff != "" {
		t.Errorf("vcard.ParseXElement(%q) diff (-got +want):\n%v", el.String(), diff)
	}

	if _, err := vcard.ParseXElement("not xml"); err == nil {
		t.Errorf("vcard.ParseXElement(\"not xml\") error = nil, want error")
	}
}

func TestJValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		val        *vcard.JValue
		wantStr    string
		wantStrs   []string
		wantStruct [][]string
	}{
		{
			"text",
			vcard.NewJValue(vcard.DataTypeText, "Doe"),
			"Doe",
			[]string{"Doe"},
			[][]string{{"Doe"}},
		},
		{
			"list",
			vcard.NewJValue(vcard.DataTypeText, "friends", "work"),
			"friends",
			[]string{"friends", "work"},
			[][]string{{"friends"}, {"work"}},
		},
		{
			"numbers",
			vcard.NewJValue(vcard.DataTypeFloat, json.Number("1.5"), 2.25, true, nil),
			"1.5",
			[]string{"1.5", "2.25", "true", ""},
			[][]string{{"1.5"}, {"2.25"}, {"true"}, nil},
		},
		{
			"structured",
			vcard.NewJStructured(vcard.DataTypeText, [][]string{{"Doe"}, {"John"}, nil, {"Dr.", "Prof."}}),
			"Doe,John,,Dr.,Prof.",
			[]string{"Doe,John,,Dr.,Prof."},
			[][]string{{"Doe"}, {"John"}, nil, {"Dr.", "Prof."}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.val.String(); got != c.wantStr {
				t.Errorf("val.String() = %q, want %q", got, c.wantStr)
			}
			if diff := cmp.Diff(c.val.Strings(), c.wantStrs); diff != "" {
				t.Errorf("val.Strings() diff (-got +want):\n%v", diff)
			}
			if diff := cmp.Diff(c.val.Structured(), c.wantStruct); diff != "" {
				t.Errorf("val.Structured() diff (-got +want):\n%v", diff)
			}
		})
	}

	var nilVal *vcard.JValue
	if nilVal.String() != "" || nilVal.Strings() != nil || nilVal.Structured() != nil {
		t.Errorf("nil JValue accessors returned values, want zero values")
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func TestHTMLElement(t *testing.T) {
	t.Parallel()

	doc, err := html.Parse(strings.NewReader(`<html><body><div class="vcard Contact">
		<a class="url" href="../john"><span class="fn">John
			Doe</span></a>
		<abbr class="bday" title="1980-06-15">June 15</abbr>
		<div class="tel"><span class="type">Work</span><span class="type">voice</span><span class="type">work</span>
			<span class="value">+1</span>-<span class="value">555</span></div>
		<p class="adr">123 Main St<br>Anytown<script>ignored()</script></p>
		<img class="photo" src="/me.png" alt="me">
		<div class="agent vcard"><span class="fn">Jane Roe</span></div>
	</div></body></html>`))
	if err != nil {
		t.Fatalf("html.Parse() error = %v, want nil", err)
	}
	base, _ := url.Parse("https://example.com/people/list/")
	el := vcard.NewHTMLElement(findElement(doc, atom.Div), base)
	if el == nil {
		t.Fatalf("vcard.NewHTMLElement() = nil, want element")
	}

	if !el.HasClass("contact") || el.TagName() != "div" {
		t.Errorf("el classes = %v, tag = %q, want contact class on div", el.Classes(), el.TagName())
	}

	cases := []struct {
		class     string
		wantValue string
		wantURL   string
	}{
		{"url", "John Doe", "https://example.com/people/john"},
		{"bday", "1980-06-15", ""},
		{"tel", "+1555", ""},
		{"adr", "123 Main St\nAnytown", ""},
		{"photo", "me", "https://example.com/me.png"},
	}
	for _, c := range cases {
		sub := el.FirstByClass(c.class)
		if sub == nil {
			t.Errorf("el.FirstByClass(%q) = nil, want element", c.class)
			continue
		}
		if got := sub.Value(); got != c.wantValue {
			t.Errorf("%s.Value() = %q, want %q", c.class, got, c.wantValue)
		}
		if got := sub.URL(); got != c.wantURL {
			t.Errorf("%s.URL() = %q, want %q", c.class, got, c.wantURL)
		}
	}

	if diff := cmp.Diff(el.FirstByClass("tel").Types(), []string{"work", "voice"}); diff != "" {
		t.Errorf("tel.Types() diff (-got +want):\n%v", diff)
	}
	if got := len(el.AllByClass("fn")); got != 1 {
		t.Errorf("len(el.AllByClass(\"fn\")) = %d, want 1 outside nested cards", got)
	}

	var nested int
	el.Walk(func(e *vcard.HTMLElement) bool {
		if e.HasClass("vcard") {
			nested++
		}
		return true
	})
	if nested != 1 {
		t.Errorf("el.Walk() visited %d nested cards, want 1", nested)
	}

	if vcard.NewHTMLElement(nil, nil) != nil {
		t.Errorf("vcard.NewHTMLElement(nil, nil) != nil, want nil")
	}
}
