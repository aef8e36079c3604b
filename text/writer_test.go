package text_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/text"
)

func crlf(lines ...string) string { return strings.Join(lines, "\r\n") + "\r\n" }

func johnDoe(props ...vcard.Property) *vcard.Card {
	return vcard.New(append([]vcard.Property{
		vcard.NewFormattedName("John Doe"),
		vcard.NewStructuredName("Doe", "John"),
	}, props...)...)
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	tel := func(num string, pref int, types ...string) *vcard.Telephone {
		p := vcard.NewTelephone(num)
		p.Params.AddType(types...)
		p.Params.SetPref(pref)
		return p
	}
	adr := &vcard.Address{Street: "1 Main St", Locality: "Town"}
	adr.Params.AddType("home")
	adr.Params.SetLabel("1 Main St\nTown")

	cases := []struct {
		name     string
		card     *vcard.Card
		opts     *text.WriterOptions
		want     string
		wantWarn vcard.Warnings
	}{
		{
			"3.0 basic",
			johnDoe(),
			&text.WriterOptions{Version: vcard.V30},
			crlf("BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "N:Doe;John;;;", "END:VCARD"),
			nil,
		},
		{
			"3.0 without N",
			vcard.New(vcard.NewFormattedName("John Doe")),
			&text.WriterOptions{Version: vcard.V30},
			crlf("BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "END:VCARD"),
			vcard.Warnings{"N property is required by vCard 3.0"},
		},
		{
			"4.0 without FN",
			vcard.New(vcard.NewStructuredName("Doe", "John")),
			&text.WriterOptions{Version: vcard.V40},
			crlf("BEGIN:VCARD", "VERSION:4.0", "N:Doe;John;;;", "END:VCARD"),
			vcard.Warnings{"FN property is required by vCard 4.0"},
		},
		{
			"declared properties in registry order",
			vcard.New(
				vcard.NewNote("note"),
				vcard.NewRawProperty("X-CUSTOM", "custom"),
				vcard.NewEmail("john@example.com"),
				vcard.NewStructuredName("Doe", "John"),
				vcard.NewFormattedName("John Doe"),
			),
			&text.WriterOptions{Version: vcard.V30},
			crlf(
				"BEGIN:VCARD", "VERSION:3.0",
				"FN:John Doe", "N:Doe;John;;;", "EMAIL:john@example.com", "NOTE:note",
				"X-CUSTOM:custom",
				"END:VCARD",
			),
			nil,
		},
		{
			"2.1 legacy TYPE and PREF",
			johnDoe(tel("+1 555 1234", 2, "home", "voice"), tel("+1 555 9876", 1, "work")),
			&text.WriterOptions{Version: vcard.V21},
			crlf(
				"BEGIN:VCARD", "VERSION:2.1", "FN:John Doe", "N:Doe;John;;;",
				"TEL;HOME;VOICE:+1 555 1234",
				"TEL;WORK;PREF:+1 555 9876",
				"END:VCARD",
			),
			nil,
		},
		{
			"3.0 TYPE=pref on the most preferred",
			johnDoe(tel("+1 555 1234", 2, "home"), tel("+1 555 9876", 1, "work")),
			&text.WriterOptions{Version: vcard.V30},
			crlf(
				"BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "N:Doe;John;;;",
				"TEL;TYPE=home:+1 555 1234",
				"TEL;TYPE=work,pref:+1 555 9876",
				"END:VCARD",
			),
			nil,
		},
		{
			"4.0 PREF",
			johnDoe(tel("+1 555 1234", 2, "home", "voice")),
			&text.WriterOptions{Version: vcard.V40},
			crlf(
				"BEGIN:VCARD", "VERSION:4.0", "FN:John Doe", "N:Doe;John;;;",
				"TEL;TYPE=home,voice;PREF=2:+1 555 1234",
				"END:VCARD",
			),
			nil,
		},
		{
			"3.0 LABEL after ADR",
			johnDoe(adr),
			&text.WriterOptions{Version: vcard.V30},
			crlf(
				"BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "N:Doe;John;;;",
				"ADR;TYPE=home:;;1 Main St;Town;;;",
				`LABEL;TYPE=home:1 Main St\nTown`,
				"END:VCARD",
			),
			nil,
		},
		{
			"4.0 LABEL parameter",
			johnDoe(adr),
			&text.WriterOptions{Version: vcard.V40},
			crlf(
				"BEGIN:VCARD", "VERSION:4.0", "FN:John Doe", "N:Doe;John;;;",
				"ADR;TYPE=home;LABEL=1 Main St^nTown:;;1 Main St;Town;;;",
				"END:VCARD",
			),
			nil,
		},
		{
			"unsupported property",
			johnDoe(vcard.NewCategories("a", "b")),
			&text.WriterOptions{Version: vcard.V21},
			crlf("BEGIN:VCARD", "VERSION:2.1", "FN:John Doe", "N:Doe;John;;;", "END:VCARD"),
			vcard.Warnings{"CATEGORIES: property is not supported by vCard 2.1, property skipped"},
		},
		{
			"MEMBER without KIND:group",
			johnDoe(vcard.NewURI(vcard.PropMember, "urn:uuid:1")),
			&text.WriterOptions{Version: vcard.V40},
			crlf("BEGIN:VCARD", "VERSION:4.0", "FN:John Doe", "N:Doe;John;;;", "END:VCARD"),
			vcard.Warnings{"MEMBER: property requires KIND:group, property skipped"},
		},
		{
			"3.0 product identifier",
			johnDoe(),
			&text.WriterOptions{Version: vcard.V30, AddProdID: true, ProdID: "-//test//EN"},
			crlf("BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "N:Doe;John;;;", "PRODID:-//test//EN", "END:VCARD"),
			nil,
		},
		{
			"2.1 product identifier",
			johnDoe(),
			&text.WriterOptions{Version: vcard.V21, AddProdID: true, ProdID: "-//test//EN"},
			crlf("BEGIN:VCARD", "VERSION:2.1", "FN:John Doe", "N:Doe;John;;;", "X-PRODID:-//test//EN", "END:VCARD"),
			nil,
		},
		{
			"group",
			johnDoe(func() vcard.Property {
				p := vcard.NewEmail("john@example.com")
				p.Group = "item1"
				return p
			}()),
			&text.WriterOptions{Version: vcard.V40},
			crlf("BEGIN:VCARD", "VERSION:4.0", "FN:John Doe", "N:Doe;John;;;", "item1.EMAIL:john@example.com", "END:VCARD"),
			nil,
		},
		{
			"escaping",
			vcard.New(vcard.NewFormattedName("Doe, John; Jr.\\"), vcard.NewNote("line 1\nline 2")),
			&text.WriterOptions{Version: vcard.V40},
			crlf("BEGIN:VCARD", "VERSION:4.0", `FN:Doe\, John\; Jr.\\`, `NOTE:line 1\nline 2`, "END:VCARD"),
			nil,
		},
		{
			"2.1 parameter value with separators",
			johnDoe(func() vcard.Property {
				p := vcard.NewNote("hello")
				p.Params.Set("X-SRC", "http://a,b")
				return p
			}()),
			&text.WriterOptions{Version: vcard.V21},
			crlf("BEGIN:VCARD", "VERSION:2.1", "FN:John Doe", "N:Doe;John;;;", "NOTE:hello", "END:VCARD"),
			vcard.Warnings{`NOTE: X-SRC parameter value "http://a,b" cannot be written in vCard 2.1, value skipped`},
		},
		{
			"3.0 parameter value with separators",
			johnDoe(func() vcard.Property {
				p := vcard.NewNote("hello")
				p.Params.Set("X-SRC", "http://a,b")
				return p
			}()),
			&text.WriterOptions{Version: vcard.V30},
			crlf("BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "N:Doe;John;;;", `NOTE;X-SRC="http://a,b":hello`, "END:VCARD"),
			nil,
		},
		{
			"invalid property name",
			johnDoe(vcard.NewRawProperty("X_BAD", "x")),
			&text.WriterOptions{Version: vcard.V40},
			crlf("BEGIN:VCARD", "VERSION:4.0", "FN:John Doe", "N:Doe;John;;;", "END:VCARD"),
			vcard.Warnings{`X_BAD: property skipped: invalid name "X_BAD"`},
		},
		{
			"invalid group",
			johnDoe(func() vcard.Property {
				p := vcard.NewEmail("john@example.com")
				p.Group = "item_1"
				return p
			}()),
			&text.WriterOptions{Version: vcard.V40},
			crlf("BEGIN:VCARD", "VERSION:4.0", "FN:John Doe", "N:Doe;John;;;", "END:VCARD"),
			vcard.Warnings{`EMAIL: property skipped: invalid group "item_1"`},
		},
		{
			"LF newlines",
			johnDoe(),
			&text.WriterOptions{Version: vcard.V30, Newline: "\n"},
			"BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\nN:Doe;John;;;\nEND:VCARD\n",
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			w := text.NewWriter(&sb, c.opts)
			if err := w.Write(c.card); err != nil {
				t.Fatalf("w.Write(card) error = %v, want nil", err)
			}
			if diff := cmp.Diff(sb.String(), c.want); diff != "" {
				t.Errorf("w.Write(card) output mismatch\ndiff (-got +want):\n%v", diff)
			}
			if diff := cmp.Diff(w.Warnings(), c.wantWarn); diff != "" {
				t.Errorf("w.Warnings() = %q, want %q\ndiff (-got +want):\n%v", w.Warnings(), c.wantWarn, diff)
			}
		})
	}
}

func TestWriter_Write_EmbeddedCard(t *testing.T) {
	t.Parallel()

	agent := vcard.New(vcard.NewFormattedName("Jane"), vcard.NewStructuredName("Doe", "Jane"))

	cases := []struct {
		name string
		ver  vcard.Version
		want string
	}{
		{
			"2.1 inline",
			vcard.V21,
			crlf(
				"BEGIN:VCARD", "VERSION:2.1", "FN:John Doe", "N:Doe;John;;;",
				"AGENT:",
				"BEGIN:VCARD", "VERSION:2.1", "FN:Jane", "N:Doe;Jane;;;", "END:VCARD",
				"END:VCARD",
			),
		},
		{
			"3.0 escaped value",
			vcard.V30,
			crlf(
				"BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "N:Doe;John;;;",
				`AGENT:BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nN:Doe\;Jane\;\;\;\nEND:VCARD\n`,
				"END:VCARD",
			),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, warns, err := text.Marshal(johnDoe(vcard.NewAgentCard(agent)), &text.WriterOptions{Version: c.ver, NoFold: true})
			if err != nil {
				t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
			}
			if diff := cmp.Diff(string(got), c.want); diff != "" {
				t.Errorf("text.Marshal(card, opts) output mismatch\ndiff (-got +want):\n%v", diff)
			}
			if len(warns) != 0 {
				t.Errorf("text.Marshal(card, opts) warnings = %q, want none", warns)
			}
		})
	}
}

func TestWriter_Write_EmbeddedWarnings(t *testing.T) {
	t.Parallel()

	agent := vcard.New(vcard.NewFormattedName("Jane"))
	_, warns, err := text.Marshal(johnDoe(vcard.NewAgentCard(agent)), &text.WriterOptions{Version: vcard.V30})
	if err != nil {
		t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
	}
	want := vcard.Warnings{"AGENT: N property is required by vCard 3.0"}
	if diff := cmp.Diff(warns, want); diff != "" {
		t.Errorf("text.Marshal(card, opts) warnings = %q, want %q\ndiff (-got +want):\n%v", warns, want, diff)
	}
}

func TestWriter_Write_MaxDepth(t *testing.T) {
	t.Parallel()

	inner := johnDoe()
	middle := johnDoe(vcard.NewAgentCard(inner))
	outer := johnDoe(vcard.NewAgentCard(middle))

	for _, ver := range []vcard.Version{vcard.V21, vcard.V30} {
		t.Run(ver.String(), func(t *testing.T) {
			t.Parallel()

			got, warns, err := text.Marshal(outer, &text.WriterOptions{Version: ver, MaxDepth: 1, NoFold: true})
			if err != nil {
				t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
			}
			if n := strings.Count(string(got), "BEGIN:VCARD"); n != 2 {
				t.Errorf("text.Marshal(card, opts) wrote %d cards, want 2\n%s", n, got)
			}
			if len(warns) != 1 || !strings.HasPrefix(warns[0], "AGENT: AGENT: property skipped") {
				t.Errorf("text.Marshal(card, opts) warnings = %q, want one nesting warning", warns)
			}
		})
	}
}

func TestWriter_Write_Folding(t *testing.T) {
	t.Parallel()

	note := strings.Repeat("a", 100)
	card := vcard.New(vcard.NewFormattedName("John Doe"), vcard.NewNote(note))

	got, _, err := text.Marshal(card, &text.WriterOptions{Version: vcard.V40})
	if err != nil {
		t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
	}
	want := crlf(
		"BEGIN:VCARD", "VERSION:4.0", "FN:John Doe",
		"NOTE:"+strings.Repeat("a", 70),
		" "+strings.Repeat("a", 30),
		"END:VCARD",
	)
	if diff := cmp.Diff(string(got), want); diff != "" {
		t.Errorf("text.Marshal(card, opts) output mismatch\ndiff (-got +want):\n%v", diff)
	}

	got, _, err = text.Marshal(card, &text.WriterOptions{Version: vcard.V40, NoFold: true})
	if err != nil {
		t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
	}
	if !strings.Contains(string(got), "NOTE:"+note+"\r\n") {
		t.Errorf("text.Marshal(card, opts) folded the line with NoFold\n%s", got)
	}
}

func TestWriter_Write_QuotedPrintable(t *testing.T) {
	t.Parallel()

	note := vcard.NewNote("Café")
	note.Params.SetEncoding(vcard.EncodingQuotedPrintable)
	card := johnDoe(note)

	cases := []struct {
		name string
		ver  vcard.Version
		want string
	}{
		{"2.1", vcard.V21, "NOTE;ENCODING=QUOTED-PRINTABLE;CHARSET=UTF-8:Caf=C3=A9\r\n"},
		{"3.0", vcard.V30, "NOTE:Café\r\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := text.Marshal(card, &text.WriterOptions{Version: c.ver})
			if err != nil {
				t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
			}
			if !strings.Contains(string(got), c.want) {
				t.Errorf("text.Marshal(card, opts) = %q, want it to contain %q", got, c.want)
			}
		})
	}
}

func TestWriter_Write_OutlookBase64(t *testing.T) {
	t.Parallel()

	card := johnDoe(vcard.NewPhotoData([]byte("abc"), "image/jpeg"))

	got, _, err := text.Marshal(card, &text.WriterOptions{Version: vcard.V21, Compat: vcard.CompatOutlook})
	if err != nil {
		t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
	}
	if want := "PHOTO;ENCODING=BASE64;JPEG:YWJj\r\n\r\nEND:VCARD\r\n"; !strings.HasSuffix(string(got), want) {
		t.Errorf("text.Marshal(card, opts) = %q, want suffix %q", got, want)
	}

	got, _, err = text.Marshal(card, &text.WriterOptions{Version: vcard.V21})
	if err != nil {
		t.Fatalf("text.Marshal(card, opts) error = %v, want nil", err)
	}
	if want := "PHOTO;ENCODING=BASE64;JPEG:YWJj\r\nEND:VCARD\r\n"; !strings.HasSuffix(string(got), want) {
		t.Errorf("text.Marshal(card, opts) = %q, want suffix %q", got, want)
	}
}
