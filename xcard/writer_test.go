package xcard_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/xcard"
)

const nameXML = "<n><surname>Doe</surname><given>John</given><additional></additional><prefix></prefix><suffix></suffix></n>"

func doc(cards ...string) string {
	return `<vcards xmlns="urn:ietf:params:xml:ns:vcard-4.0">` + strings.Join(cards, "") + "</vcards>"
}

func johnDoe(props ...vcard.Property) *vcard.Card {
	return vcard.New(append([]vcard.Property{
		vcard.NewFormattedName("John Doe"),
		vcard.NewStructuredName("Doe", "John"),
	}, props...)...)
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	tel := vcard.NewTelephone("+1 555 1234")
	tel.Params.AddType("work", "pref")

	email := vcard.NewEmail("john@example.com")
	email.Group = "item1"
	note := vcard.NewNote("work mail")
	note.Group = "item1"

	cases := []struct {
		name     string
		card     *vcard.Card
		opts     *xcard.WriterOptions
		want     string
		wantWarn vcard.Warnings
	}{
		{
			"basic",
			johnDoe(),
			&xcard.WriterOptions{NoHeader: true},
			doc("<vcard><fn><text>John Doe</text></fn>" + nameXML + "</vcard>"),
			nil,
		},
		{
			"without FN",
			vcard.New(vcard.NewStructuredName("Doe", "John")),
			&xcard.WriterOptions{NoHeader: true},
			doc("<vcard>" + nameXML + "</vcard>"),
			vcard.Warnings{"FN property is required by vCard 4.0"},
		},
		{
			"parameters",
			vcard.New(vcard.NewFormattedName("John Doe"), tel),
			&xcard.WriterOptions{NoHeader: true},
			doc("<vcard><fn><text>John Doe</text></fn>" +
				"<tel><parameters><type><text>work</text></type><pref><integer>1</integer></pref></parameters>" +
				"<text>+1 555 1234</text></tel></vcard>"),
			nil,
		},
		{
			"groups",
			vcard.New(vcard.NewFormattedName("John Doe"), email, note),
			&xcard.WriterOptions{NoHeader: true},
			doc(`<vcard><fn><text>John Doe</text></fn><group name="item1">` +
				"<email><text>john@example.com</text></email><note><text>work mail</text></note>" +
				"</group></vcard>"),
			nil,
		},
		{
			"date and extended property",
			vcard.New(
				vcard.NewFormattedName("John Doe"),
				vcard.NewRawProperty("X-CUSTOM", "custom"),
				vcard.NewBirthday(time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), false),
			),
			&xcard.WriterOptions{NoHeader: true},
			doc("<vcard><fn><text>John Doe</text></fn><bday><date>19800615</date></bday>" +
				"<x-custom><unknown>custom</unknown></x-custom></vcard>"),
			nil,
		},
		{
			"foreign element",
			vcard.New(
				vcard.NewFormattedName("John Doe"),
				vcard.NewXMLProperty(`<foo xmlns="http://example.com/ns">bar</foo>`),
			),
			&xcard.WriterOptions{NoHeader: true},
			doc(`<vcard><foo xmlns="http://example.com/ns">bar</foo><fn><text>John Doe</text></fn></vcard>`),
			nil,
		},
		{
			"embedded card",
			vcard.New(
				vcard.NewFormattedName("John Doe"),
				vcard.NewAgentCard(vcard.New(vcard.NewFormattedName("Jane"))),
			),
			&xcard.WriterOptions{NoHeader: true},
			doc("<vcard><fn><text>John Doe</text></fn></vcard>"),
			vcard.Warnings{"AGENT: property skipped: embedded cards cannot be written in xml format"},
		},
		{
			"legacy property",
			vcard.New(vcard.NewFormattedName("John Doe"), vcard.NewText(vcard.PropMailer, "mutt")),
			&xcard.WriterOptions{NoHeader: true},
			doc("<vcard><fn><text>John Doe</text></fn></vcard>"),
			vcard.Warnings{"MAILER: property is not supported by vCard 4.0, property skipped"},
		},
		{
			"product identifier",
			vcard.New(vcard.NewFormattedName("John Doe")),
			&xcard.WriterOptions{NoHeader: true, AddProdID: true, ProdID: "-//Test//EN"},
			doc("<vcard><fn><text>John Doe</text></fn><prodid><text>-//Test//EN</text></prodid></vcard>"),
			nil,
		},
		{
			"header",
			vcard.New(vcard.NewFormattedName("John Doe")),
			nil,
			`<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
				doc("<vcard><fn><text>John Doe</text></fn></vcard>"),
			nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, warns, err := xcard.Marshal(c.card, c.opts)
			if err != nil {
				t.Fatalf("xcard.Marshal(card, opts) error = %v, want nil", err)
			}
			if diff := cmp.Diff(string(got), c.want); diff != "" {
				t.Errorf("xcard.Marshal(card, opts) = %q, want %q\ndiff (-got +want):\n%v", got, c.want, diff)
			}
			if diff := cmp.Diff(warns, c.wantWarn); diff != "" {
				t.Errorf("xcard.Marshal(card, opts) warnings = %q, want %q\ndiff (-got +want):\n%v", warns, c.wantWarn, diff)
			}
		})
	}
}

func TestWriter_WriteAll_Indent(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := xcard.NewWriter(&sb, &xcard.WriterOptions{NoHeader: true, Indent: "  "})
	err := w.WriteAll(
		vcard.New(vcard.NewFormattedName("John")),
		vcard.New(vcard.NewFormattedName("Jane")),
	)
	if err != nil {
		t.Fatalf("w.WriteAll(cards...) error = %v, want nil", err)
	}

	want := strings.Join([]string{
		`<vcards xmlns="urn:ietf:params:xml:ns:vcard-4.0">`,
		`  <vcard>`,
		`    <fn>`,
		`      <text>John</text>`,
		`    </fn>`,
		`  </vcard>`,
		`  <vcard>`,
		`    <fn>`,
		`      <text>Jane</text>`,
		`    </fn>`,
		`  </vcard>`,
		`</vcards>`,
	}, "\n")
	if diff := cmp.Diff(sb.String(), want); diff != "" {
		t.Errorf("w.WriteAll(cards...) = %q, want %q\ndiff (-got +want):\n%v", sb.String(), want, diff)
	}
	if len(w.Warnings()) != 0 {
		t.Errorf("w.Warnings() = %q, want none", w.Warnings())
	}
}

func TestWriter_Write_NilCard(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if err := xcard.NewWriter(&sb, nil).Write(nil); err == nil {
		t.Error("w.Write(nil) error = nil, want error")
	}
}
