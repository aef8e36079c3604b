package vcard

import (
	"strings"

	"github.com/ghettovoice/vcard/internal/util"
)

var (
	allVersions    = AllVersions
	versions30Plus = []Version{V30, V40}
	versions40     = []Version{V40}
	versionsLegacy = []Version{V21, V30}
	versions30     = []Version{V30}
)

// Text is a property with a single text value, such as FN, NOTE, TITLE or EMAIL.
type Text struct {
	PropertyBase
	name  string
	Value string
}

// NewText creates a text property with the name.
func NewText(name, value string) *Text { return &Text{name: util.UCase(name), Value: value} }

// NewFormattedName creates an FN property.
func NewFormattedName(fn string) *Text { return NewText(PropFN, fn) }

// NewEmail creates an EMAIL property.
func NewEmail(addr string) *Text { return NewText(PropEmail, addr) }

// NewNote creates a NOTE property.
func NewNote(note string) *Text { return NewText(PropNote, note) }

func (p *Text) Name() string { return p.name }

// Equal compares name, group, parameters and value.
func (p *Text) Equal(val any) bool {
	other, ok := val.(*Text)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && p.Value == other.Value && p.equalBase(&other.PropertyBase)
}

// URI is a property with a single URI value, such as URL, SOURCE or FBURL.
type URI struct {
	PropertyBase
	name  string
	Value string
}

// NewURI creates a URI property with the name.
func NewURI(name, uri string) *URI { return &URI{name: util.UCase(name), Value: uri} }

// NewURL creates a URL property.
func NewURL(url string) *URI { return NewURI(PropURL, url) }

func (p *URI) Name() string { return p.name }

// Equal compares name, group, parameters and value.
func (p *URI) Equal(val any) bool {
	other, ok := val.(*URI)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && p.Value == other.Value && p.equalBase(&other.PropertyBase)
}

func constType(dt DataType) func(Version) DataType {
	return func(Version) DataType { return dt }
}

func newTextCodec(name string, versions []Version) *codec[*Text] {
	return &codec[*Text]{
		name:     name,
		versions: versions,
		newFn:    func() *Text { return NewText(name, "") },
		defType:  constType(DataTypeText),
		plain: func(p *Text, _ *WriteContext) (string, error) {
			return p.Value, nil
		},
		setPlain: func(p *Text, s string, _ DataType, _ *Params, _ *ParseContext) error {
			p.Value = s
			return nil
		},
	}
}

func newURICodec(name string, versions []Version) *codec[*URI] {
	return &codec[*URI]{
		name:     name,
		versions: versions,
		newFn:    func() *URI { return NewURI(name, "") },
		defType:  constType(DataTypeURI),
		rawText:  true,
		plain: func(p *URI, _ *WriteContext) (string, error) {
			return p.Value, nil
		},
		setPlain: func(p *URI, s string, _ DataType, _ *Params, _ *ParseContext) error {
			p.Value = util.TrimSP(s)
			return nil
		},
		parseHTML: func(p *URI, el *HTMLElement, params *Params, _ *ParseContext) error {
			p.Value = util.Coalesce(el.URL(), util.TrimSP(el.Value()))
			if p.Value == "" {
				return NewSkipPropertyError("empty link") //errtrace:skip
			}
			htmlTypes(el, params)
			return nil
		},
	}
}

func newEmailCodec() *codec[*Text] {
	c := newTextCodec(PropEmail, allVersions)
	c.prefAware = true
	c.parseHTML = func(p *Text, el *HTMLElement, params *Params, _ *ParseContext) error {
		v := el.URL()
		if v == "" {
			v = el.Value()
		}
		if len(v) > 7 && util.EqFold(v[:7], "mailto:") {
			v = v[7:]
		}
		v, _, _ = strings.Cut(v, "?")
		p.Value = util.TrimSP(v)
		htmlTypes(el, params)
		params.RemoveType("internet")
		return nil
	}
	return c
}

func newUIDCodec() *codec[*Text] {
	c := newTextCodec(PropUID, allVersions)
	c.defType = func(v Version) DataType {
		if v == V40 {
			return DataTypeURI
		}
		return DataTypeText
	}
	c.valueType = func(p *Text, v Version) DataType {
		if v == V40 && !strings.Contains(p.Value, ":") {
			return DataTypeText
		}
		return c.defType(v)
	}
	return c
}

func newKindCodec() *codec[*Text] {
	c := newTextCodec(PropKind, versions40)
	c.setPlain = func(p *Text, s string, _ DataType, _ *Params, _ *ParseContext) error {
		p.Value = util.LCase(util.TrimSP(s))
		return nil
	}
	return c
}

func newLangCodec() *codec[*Text] {
	c := newTextCodec(PropLang, versions40)
	c.defType = constType(DataTypeLanguageTag)
	return c
}

func newLabelCodec() *codec[*Text] {
	c := newTextCodec(PropLabel, versionsLegacy)
	c.prefAware = true
	return c
}
