package vcard

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// Telephone is the TEL property. It holds either a free-form number or a "tel" URI.
type Telephone struct {
	PropertyBase
	text string
	uri  *TelURI
}

// NewTelephone creates a TEL property with a free-form number.
func NewTelephone(number string) *Telephone { return &Telephone{text: number} }

// NewTelephoneURI creates a TEL property with a "tel" URI.
func NewTelephoneURI(u *TelURI) *Telephone { return &Telephone{uri: u} }

func (*Telephone) Name() string { return PropTel }

// Text returns the free-form number.
func (p *Telephone) Text() string { return p.text }

// URI returns the "tel" URI.
func (p *Telephone) URI() *TelURI { return p.uri }

// SetText sets the free-form number and clears the URI.
func (p *Telephone) SetText(number string) *Telephone {
	p.text, p.uri = number, nil
	return p
}

// SetURI sets the URI and clears the free-form number.
func (p *Telephone) SetURI(u *TelURI) *Telephone {
	p.text, p.uri = "", u
	return p
}

// Number returns the number either from the text or from the URI, with the extension appended.
func (p *Telephone) Number() string {
	if p.uri == nil {
		return p.text
	}
	if ext := p.uri.Ext(); ext != "" {
		return p.uri.Number + " x" + ext
	}
	return p.uri.Number
}

// Equal compares group, parameters and the value.
func (p *Telephone) Equal(val any) bool {
	other, ok := val.(*Telephone)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	if (p.uri == nil) != (other.uri == nil) || (p.uri != nil && !p.uri.Equal(other.uri)) {
		return false
	}
	return p.text == other.text && p.equalBase(&other.PropertyBase)
}

func (p *Telephone) set(s string, dt DataType, ctx *ParseContext) {
	s = util.TrimSP(s)
	if dt == DataTypeURI || (dt == "" && len(s) > 4 && util.EqFold(s[:4], "tel:")) {
		u, err := ParseTelURI(s)
		if err == nil {
			p.SetURI(u)
			return
		}
		if dt == DataTypeURI {
			ctx.Warn(PropTel, "cannot parse tel URI %q, keeping it as text", s)
		}
	}
	p.SetText(s)
}

func newTelephoneCodec() *codec[*Telephone] {
	return &codec[*Telephone]{
		name:      PropTel,
		versions:  allVersions,
		newFn:     func() *Telephone { return &Telephone{} },
		defType:   constType(DataTypeText),
		prefAware: true,
		valueType: func(p *Telephone, v Version) DataType {
			if p.uri != nil && v == V40 {
				return DataTypeURI
			}
			return DataTypeText
		},
		writeText: func(p *Telephone, ctx *WriteContext) (string, error) {
			switch {
			case p.uri != nil && ctx.version() == V40:
				return p.uri.String(), nil
			case p.uri != nil:
				ctx.Warn(PropTel, "tel URIs are not supported by vCard %s, writing the number as text", ctx.version())
				return EscapeText(p.Number()), nil
			case p.text == "":
				return "", errtrace.Wrap(NewSkipPropertyError("empty number"))
			default:
				return EscapeText(p.text), nil
			}
		},
		parseText: func(p *Telephone, value string, dt DataType, _ *Params, ctx *ParseContext) error {
			if dt != DataTypeURI {
				value = UnescapeText(value)
			}
			if ctx.version() != V40 && dt == "" {
				p.SetText(util.TrimSP(value))
				return nil
			}
			p.set(value, dt, ctx)
			return nil
		},
		plain: func(p *Telephone, _ *WriteContext) (string, error) {
			switch {
			case p.uri != nil:
				return p.uri.String(), nil
			case p.text == "":
				return "", errtrace.Wrap(NewSkipPropertyError("empty number"))
			default:
				return p.text, nil
			}
		},
		setPlain: func(p *Telephone, s string, dt DataType, _ *Params, ctx *ParseContext) error {
			p.set(s, dt, ctx)
			return nil
		},
		parseHTML: func(p *Telephone, el *HTMLElement, params *Params, ctx *ParseContext) error {
			if href := el.Attr("href"); strings.HasPrefix(util.LCase(href), "tel:") {
				p.set(href, DataTypeURI, ctx)
			} else {
				p.SetText(util.TrimSP(el.Value()))
			}
			if p.uri == nil && p.text == "" {
				return errtrace.Wrap(NewSkipPropertyError("empty number"))
			}
			htmlTypes(el, params)
			return nil
		},
	}
}
