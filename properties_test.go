package vcard_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/vcard"
)

func TestCodecs_TextRoundTrip(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3}
	cases := []struct {
		name       string
		prop       vcard.Property
		version    vcard.Version
		wantValue  string
		wantParams vcard.Params
	}{
		{"name", vcard.NewStructuredName("Doe", "John"), vcard.V30, "Doe;John;;;", nil},
		{"note", vcard.NewNote("line1\nline2; x"), vcard.V40, `line1\nline2\; x`, nil},
		{"organization", vcard.NewOrganization("Acme, Inc.", "R&D"), vcard.V30, `Acme\, Inc.;R&D`, nil},
		{"categories", vcard.NewCategories("friends", "work"), vcard.V40, "friends,work", nil},
		{"3.0 position", vcard.NewGeo(37.386013, -122.082932), vcard.V30, "37.386013;-122.082932", nil},
		{"4.0 position", vcard.NewGeo(37.386013, -122.082932), vcard.V40, "geo:37.386013,-122.082932", nil},
		{
			"2.1 inline photo",
			vcard.NewPhotoData(data, "image/jpeg"),
			vcard.V21,
			"AQID",
			vcard.Params{{Name: "ENCODING", Values: []string{"BASE64"}}, {Name: "TYPE", Values: []string{"JPEG"}}},
		},
		{
			"3.0 inline photo",
			vcard.NewPhotoData(data, "image/jpeg"),
			vcard.V30,
			"AQID",
			vcard.Params{{Name: "ENCODING", Values: []string{"b"}}, {Name: "TYPE", Values: []string{"JPEG"}}},
		},
		{"4.0 inline photo", vcard.NewPhotoData(data, "image/jpeg"), vcard.V40, "data:image/jpeg;base64,AQID", nil},
		{
			"2.1 photo link",
			vcard.NewPhotoURL("https://example.com/me.png", "image/png"),
			vcard.V21,
			"https://example.com/me.png",
			vcard.Params{{Name: "VALUE", Values: []string{"url"}}, {Name: "TYPE", Values: []string{"PNG"}}},
		},
		{
			"4.0 photo link",
			vcard.NewPhotoURL("https://example.com/me.png", "image/png"),
			vcard.V40,
			"https://example.com/me.png",
			vcard.Params{{Name: "MEDIATYPE", Values: []string{"image/png"}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			codec := vcard.DefaultRegistry().CodecFor(c.prop)
			wctx := &vcard.WriteContext{Version: c.version, Card: vcard.New(c.prop)}
			value, err := codec.WriteText(c.prop, wctx)
			if err != nil {
				t.Fatalf("codec.WriteText() error = %v, want nil", err)
			}
			if value != c.wantValue {
				t.Errorf("codec.WriteText() = %q, want %q", value, c.wantValue)
			}
			params := codec.PrepareParams(c.prop, wctx)
			if diff := cmp.Diff(params, c.wantParams); diff != "" {
				t.Errorf("codec.PrepareParams() = %v, want %v\ndiff (-got +want):\n%v", params, c.wantParams, diff)
			}

			var warns vcard.Warnings
			got, err := codec.ParseText(value, params.Value(), params, &vcard.ParseContext{Version: c.version, Warnings: &warns})
			if err != nil {
				t.Fatalf("codec.ParseText(%q) error = %v, want nil", value, err)
			}
			if diff := cmp.Diff(got, c.prop); diff != "" {
				t.Errorf("codec.ParseText(%q) = %+v, want %+v\ndiff (-got +want):\n%v", value, got, c.prop, diff)
			}
			if len(warns) != 0 {
				t.Errorf("warnings = %q, want none", warns)
			}
		})
	}
}

// writeAndParse writes the property in the version and format and reads it back.
func writeAndParse(p vcard.Property, v vcard.Version, f vcard.Format) (vcard.Property, vcard.Warnings, error) {
	var warns vcard.Warnings
	codec := vcard.DefaultRegistry().CodecFor(p)
	wctx := &vcard.WriteContext{Version: v, Format: f, Card: vcard.New(p), Warnings: &warns}
	pctx := &vcard.ParseContext{Version: v, Format: f, Warnings: &warns}
	params := codec.PrepareParams(p, wctx)

	switch f {
	case vcard.FormatXML:
		elems, err := codec.WriteXML(p, wctx)
		if err != nil {
			return nil, warns, err
		}
		el := vcard.NewXElement(strings.ToLower(p.Name()), "").Append(elems...)
		got, err := codec.ParseXML(el, params, pctx)
		return got, warns, err
	case vcard.FormatJSON:
		val, err := codec.WriteJSON(p, wctx)
		if err != nil {
			return nil, warns, err
		}
		got, err := codec.ParseJSON(val, params, pctx)
		return got, warns, err
	default:
		value, err := codec.WriteText(p, wctx)
		if err != nil {
			return nil, warns, err
		}
		got, err := codec.ParseText(value, params.Value(), params, pctx)
		return got, warns, err
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	t.Parallel()

	mustTel := func(s string) *vcard.TelURI {
		u, err := vcard.ParseTelURI(s)
		if err != nil {
			t.Fatalf("vcard.ParseTelURI(%q) error = %v, want nil", s, err)
		}
		return u
	}
	key := func(set func(k *vcard.Key)) *vcard.Key {
		k := &vcard.Key{}
		set(k)
		return k
	}
	adr := &vcard.Address{Extended: "Apt 5", Street: "1 Main St", Locality: "Town", PostalCode: "12345", Country: "USA"}
	adr.Params.AddType("home")
	bday := func() *vcard.DateOrTime { return vcard.NewDateOrTime(vcard.PropBday) }

	all := vcard.AllVersions
	modern := []vcard.Version{vcard.V30, vcard.V40}
	v40 := []vcard.Version{vcard.V40}

	cases := []struct {
		name     string
		prop     vcard.Property
		versions []vcard.Version
	}{
		{"name", vcard.NewStructuredName("Doe", "John"), all},
		{"note", vcard.NewNote("line1\nline2; x"), all},
		{"organization", vcard.NewOrganization("Acme, Inc.", "R&D"), all},
		{"categories", vcard.NewCategories("friends", "work"), modern},
		{"position", vcard.NewGeo(37.386013, -122.082932), all},
		{"address", adr, all},
		{"tel text", vcard.NewTelephone("+1 555 1234"), all},
		{"tel uri", vcard.NewTelephoneURI(mustTel("tel:+1-555-1234;ext=42")), v40},
		{"tel local uri", vcard.NewTelephoneURI(mustTel("tel:7042;phone-context=example.com")), v40},
		{"tz offset", vcard.NewTimezoneOffset(vcard.NewUTCOffset(-5, 30)), all},
		{"tz text", vcard.NewTimezoneText("America/New_York"), modern},
		{"photo data", vcard.NewPhotoData([]byte{1, 2, 3}, "image/jpeg"), all},
		{"photo link", vcard.NewPhotoURL("https://example.com/me.png", "image/png"), all},
		{"key data", key(func(k *vcard.Key) { k.SetData([]byte{4, 5, 6}, "application/pgp-keys") }), all},
		{"key link", key(func(k *vcard.Key) { k.SetURL("https://example.com/key.asc", "") }), v40},
		{"key text", vcard.NewTextKey("ssh-ed25519 AAAAC3", ""), all},
		{"revision", vcard.NewRevision(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), all},
		{"birthday date", vcard.NewBirthday(time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), false), all},
		{"birthday date-time", vcard.NewBirthday(time.Date(1980, 6, 15, 10, 30, 0, 0, time.UTC), true), all},
		{"birthday partial date", bday().SetPartial(vcard.PartialDate{}.WithMonth(6).WithDay(15)), v40},
		{"birthday time", bday().SetPartial(vcard.PartialDate{}.WithHour(10).WithMinute(30)), v40},
		{"birthday text", bday().SetText("circa 1800"), v40},
		{"related uri", vcard.NewRelated("urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6", "friend"), v40},
		{"related text", vcard.NewTextOrURI(vcard.PropRelated).SetText("Jane, a friend"), v40},
		{"birthplace uri", vcard.NewTextOrURI(vcard.PropBirthplace).SetURI("geo:46.772673,-71.282945"), v40},
		{"birthplace text", vcard.NewTextOrURI(vcard.PropBirthplace).SetText("Babies R Us Hospital"), v40},
	}
	for _, c := range cases {
		for _, v := range c.versions {
			formats := []vcard.Format{vcard.FormatText}
			if v == vcard.V40 {
				formats = append(formats, vcard.FormatXML, vcard.FormatJSON)
			}
			for _, f := range formats {
				t.Run(c.name+"/"+v.String()+"/"+f.String(), func(t *testing.T) {
					t.Parallel()

					got, warns, err := writeAndParse(c.prop, v, f)
					if err != nil {
						t.Fatalf("write and parse error = %v, want nil", err)
					}
					if diff := cmp.Diff(got, c.prop); diff != "" {
						t.Errorf("parsed property = %+v, want %+v\ndiff (-got +want):\n%v", got, c.prop, diff)
					}
					if len(warns) != 0 {
						t.Errorf("warnings = %q, want none", warns)
					}
				})
			}
		}
	}
}

func TestCodecs_SkipProperty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		prop    vcard.Property
		version vcard.Version
		format  vcard.Format
	}{
		{"2.1 tz text", vcard.NewTimezoneText("America/New_York"), vcard.V21, vcard.FormatText},
		{"3.0 partial date", vcard.NewDateOrTime(vcard.PropBday).SetPartial(vcard.PartialDate{}.WithYear(1980)), vcard.V30, vcard.FormatText},
		{"2.1 text date", vcard.NewDateOrTime(vcard.PropBday).SetText("circa 1800"), vcard.V21, vcard.FormatText},
		{"empty tel", vcard.NewTelephone(""), vcard.V40, vcard.FormatText},
		{"empty tel xml", vcard.NewTelephone(""), vcard.V40, vcard.FormatXML},
		{"empty photo", vcard.NewBinary(vcard.PropPhoto), vcard.V30, vcard.FormatText},
		{"empty photo json", vcard.NewBinary(vcard.PropPhoto), vcard.V40, vcard.FormatJSON},
		{"zero revision xml", vcard.NewRevision(time.Time{}), vcard.V40, vcard.FormatXML},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := writeAndParse(c.prop, c.version, c.format); !errors.Is(err, vcard.ErrSkipProperty) {
				t.Errorf("write error = %v, want %v", err, vcard.ErrSkipProperty)
			}
		})
	}

	codec := vcard.DefaultRegistry().Codec(vcard.PropBday)
	var warns vcard.Warnings
	_, err := codec.ParseText("--0615", "", nil, &vcard.ParseContext{Version: vcard.V30, Warnings: &warns})
	if !errors.Is(err, vcard.ErrSkipProperty) {
		t.Errorf("codec.ParseText(\"--0615\") in 3.0 error = %v, want %v", err, vcard.ErrSkipProperty)
	}
}

func TestCodecs_TelURIDowngrade(t *testing.T) {
	t.Parallel()

	u, err := vcard.ParseTelURI("tel:+1-555-1234;ext=42")
	if err != nil {
		t.Fatalf("vcard.ParseTelURI() error = %v, want nil", err)
	}
	p := vcard.NewTelephoneURI(u)
	var warns vcard.Warnings
	codec := vcard.DefaultRegistry().CodecFor(p)
	got, err := codec.WriteText(p, &vcard.WriteContext{Version: vcard.V30, Card: vcard.New(p), Warnings: &warns})
	if err != nil {
		t.Fatalf("codec.WriteText() error = %v, want nil", err)
	}
	if want := "+1-555-1234 x42"; got != want {
		t.Errorf("codec.WriteText() = %q, want %q", got, want)
	}
	if want := (vcard.Warnings{"TEL: tel URIs are not supported by vCard 3.0, writing the number as text"}); !cmp.Equal(warns, want) {
		t.Errorf("warnings = %q, want %q", warns, want)
	}
}
