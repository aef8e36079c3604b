package vcard

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// TextOrURI is a property whose value is either a text or a URI:
// RELATED, BIRTHPLACE and DEATHPLACE.
type TextOrURI struct {
	PropertyBase
	name string
	text string
	uri  string
}

// NewTextOrURI creates an empty property with the name.
func NewTextOrURI(name string) *TextOrURI { return &TextOrURI{name: util.UCase(name)} }

// NewRelated creates a RELATED property referencing another entity.
func NewRelated(uri string, types ...string) *TextOrURI {
	p := NewTextOrURI(PropRelated).SetURI(uri)
	p.Params.AddType(types...)
	return p
}

func (p *TextOrURI) Name() string { return p.name }

// Text returns the text value.
func (p *TextOrURI) Text() string { return p.text }

// URI returns the URI value.
func (p *TextOrURI) URI() string { return p.uri }

// SetText sets the text and clears the URI.
func (p *TextOrURI) SetText(s string) *TextOrURI {
	p.text, p.uri = s, ""
	return p
}

// SetURI sets the URI and clears the text.
func (p *TextOrURI) SetURI(s string) *TextOrURI {
	p.text, p.uri = "", s
	return p
}

// Equal compares name, group, parameters and the value.
func (p *TextOrURI) Equal(val any) bool {
	other, ok := val.(*TextOrURI)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && p.text == other.text && p.uri == other.uri &&
		p.equalBase(&other.PropertyBase)
}

func newTextOrURICodec(name string, versions []Version, def DataType) *codec[*TextOrURI] {
	set := func(p *TextOrURI, s string, dt DataType) {
		if dt == "" {
			dt = def
		}
		if dt == DataTypeURI {
			p.SetURI(util.TrimSP(s))
		} else {
			p.SetText(s)
		}
	}
	return &codec[*TextOrURI]{
		name:     name,
		versions: versions,
		newFn:    func() *TextOrURI { return NewTextOrURI(name) },
		defType:  constType(def),
		valueType: func(p *TextOrURI, _ Version) DataType {
			if p.uri != "" {
				return DataTypeURI
			}
			return DataTypeText
		},
		writeText: func(p *TextOrURI, _ *WriteContext) (string, error) {
			switch {
			case p.uri != "":
				return p.uri, nil
			case p.text != "":
				return EscapeText(p.text), nil
			default:
				return "", errtrace.Wrap(NewSkipPropertyError("empty value"))
			}
		},
		parseText: func(p *TextOrURI, value string, dt DataType, _ *Params, _ *ParseContext) error {
			if dt == "" {
				dt = def
			}
			if dt != DataTypeURI {
				value = UnescapeText(value)
			}
			set(p, value, dt)
			return nil
		},
		plain: func(p *TextOrURI, _ *WriteContext) (string, error) {
			if p.uri == "" && p.text == "" {
				return "", errtrace.Wrap(NewSkipPropertyError("empty value"))
			}
			return util.Coalesce(p.uri, p.text), nil
		},
		setPlain: func(p *TextOrURI, s string, dt DataType, _ *Params, _ *ParseContext) error {
			set(p, s, dt)
			return nil
		},
		parseHTML: func(p *TextOrURI, el *HTMLElement, params *Params, _ *ParseContext) error {
			if u := el.URL(); u != "" {
				p.SetURI(u)
			} else {
				p.SetText(el.Value())
			}
			htmlTypes(el, params)
			return nil
		},
	}
}

// XMLProperty is the XML property holding a serialized XML element
// from a namespace other than the xCard one.
type XMLProperty struct {
	PropertyBase
	Value string
}

// NewXMLProperty creates an XML property.
func NewXMLProperty(xml string) *XMLProperty { return &XMLProperty{Value: xml} }

func (*XMLProperty) Name() string { return PropXML }

// Element parses the value into an element tree.
func (p *XMLProperty) Element() (*XElement, error) { return errtrace.Wrap2(ParseXElement(p.Value)) }

// Equal compares group, parameters and the value.
func (p *XMLProperty) Equal(val any) bool {
	other, ok := val.(*XMLProperty)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.Value == other.Value && p.equalBase(&other.PropertyBase)
}

func newXMLCodec() *codec[*XMLProperty] {
	return &codec[*XMLProperty]{
		name:     PropXML,
		versions: versions40,
		newFn:    func() *XMLProperty { return &XMLProperty{} },
		defType:  constType(DataTypeText),
		plain: func(p *XMLProperty, _ *WriteContext) (string, error) {
			if p.Value == "" {
				return "", errtrace.Wrap(NewSkipPropertyError("empty XML"))
			}
			return p.Value, nil
		},
		setPlain: func(p *XMLProperty, s string, _ DataType, _ *Params, _ *ParseContext) error {
			if _, err := ParseXElement(s); err != nil {
				return errtrace.Wrap(NewCannotParseError(err))
			}
			p.Value = s
			return nil
		},
		writeXML: func(p *XMLProperty, _ *WriteContext) ([]*XElement, error) {
			el, err := p.Element()
			if err != nil {
				return nil, errtrace.Wrap(NewSkipPropertyError(err))
			}
			return []*XElement{el}, nil
		},
		parseXML: func(p *XMLProperty, el *XElement, _ *Params, _ *ParseContext) error {
			p.Value = el.String()
			return nil
		},
	}
}

// RawProperty is a property without a dedicated codec, an extended property.
// Its value is kept exactly as found in the text format.
type RawProperty struct {
	PropertyBase
	name     string
	Value    string
	DataType DataType
}

// NewRawProperty creates a property with the name and the raw value.
func NewRawProperty(name, value string) *RawProperty {
	return &RawProperty{name: util.UCase(name), Value: value}
}

func (p *RawProperty) Name() string { return p.name }

// Equal compares name, group, parameters, data type and value.
func (p *RawProperty) Equal(val any) bool {
	other, ok := val.(*RawProperty)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && p.Value == other.Value && p.DataType == other.DataType &&
		p.equalBase(&other.PropertyBase)
}

// RawCodec returns the codec of extended properties with the name.
func RawCodec(name string) Codec { return newRawCodec(util.UCase(name)) }

func newRawCodec(name string) *codec[*RawProperty] {
	return &codec[*RawProperty]{
		name:     name,
		versions: allVersions,
		newFn:    func() *RawProperty { return NewRawProperty(name, "") },
		defType:  constType(DataTypeUnknown),
		valueType: func(p *RawProperty, _ Version) DataType {
			return util.Coalesce(p.DataType, DataTypeUnknown)
		},
		rawText: true,
		plain: func(p *RawProperty, ctx *WriteContext) (string, error) {
			if ctx.Format == FormatText {
				return escapeNewlines(p.Value), nil
			}
			return p.Value, nil
		},
		setPlain: func(p *RawProperty, s string, dt DataType, _ *Params, _ *ParseContext) error {
			p.Value = s
			if dt != DataTypeUnknown {
				p.DataType = dt
			}
			return nil
		},
		parseText: func(p *RawProperty, value string, dt DataType, _ *Params, _ *ParseContext) error {
			p.Value, p.DataType = value, dt
			return nil
		},
		parseXML: func(p *RawProperty, el *XElement, _ *Params, _ *ParseContext) error {
			if len(el.Children) == 0 {
				p.Value = el.Text
				return nil
			}
			c := el.Children[0]
			p.Value = c.Text
			if dt := ParseDataType(c.Name); dt != DataTypeUnknown {
				p.DataType = dt
			}
			return nil
		},
	}
}

func escapeNewlines(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\r':
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
