package vcard

import (
	"slices"
	"strings"

	"github.com/ghettovoice/vcard/internal/util"
)

// TextList is a property holding a list of text values:
// NICKNAME and CATEGORIES separate values by commas, ORG by semicolons.
type TextList struct {
	PropertyBase
	name   string
	Values []string
}

// NewTextList creates a list property with the name.
func NewTextList(name string, vals ...string) *TextList {
	return &TextList{name: util.UCase(name), Values: vals}
}

// NewCategories creates a CATEGORIES property.
func NewCategories(vals ...string) *TextList { return NewTextList(PropCategories, vals...) }

// NewNickname creates a NICKNAME property.
func NewNickname(vals ...string) *TextList { return NewTextList(PropNickname, vals...) }

// NewOrganization creates an ORG property from the organization name followed by unit names.
func NewOrganization(vals ...string) *TextList { return NewTextList(PropOrg, vals...) }

func (p *TextList) Name() string { return p.name }

// Equal compares name, group, parameters and values.
func (p *TextList) Equal(val any) bool {
	other, ok := val.(*TextList)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && slices.Equal(p.Values, other.Values) &&
		p.equalBase(&other.PropertyBase)
}

func newTextListCodec(name string, versions []Version, sep byte) *codec[*TextList] {
	c := &codec[*TextList]{
		name:     name,
		versions: versions,
		newFn:    func() *TextList { return NewTextList(name) },
		defType:  constType(DataTypeText),
		writeText: func(p *TextList, _ *WriteContext) (string, error) {
			return JoinList(p.Values, sep), nil
		},
		parseText: func(p *TextList, value string, _ DataType, _ *Params, _ *ParseContext) error {
			p.Values = SplitList(value, sep)
			if sep == ',' {
				p.Values = util.Filter(p.Values, func(s string) bool { return s != "" })
			}
			return nil
		},
		writeXML: func(p *TextList, _ *WriteContext) ([]*XElement, error) {
			els := make([]*XElement, len(p.Values))
			for i, v := range p.Values {
				els[i] = valueElement(DataTypeText, v)
			}
			return els, nil
		},
		parseXML: func(p *TextList, el *XElement, _ *Params, _ *ParseContext) error {
			p.Values = el.Texts(string(DataTypeText))
			return nil
		},
		writeJSON: func(p *TextList, _ *WriteContext) (*JValue, error) {
			if sep == ';' && len(p.Values) > 1 {
				comps := make([][]string, len(p.Values))
				for i, v := range p.Values {
					comps[i] = []string{v}
				}
				return NewJStructured(DataTypeText, comps), nil
			}
			vals := make([]any, len(p.Values))
			for i, v := range p.Values {
				vals[i] = v
			}
			return NewJValue(DataTypeText, vals...), nil
		},
		parseJSON: func(p *TextList, val *JValue, _ *Params, _ *ParseContext) error {
			if sep == ';' {
				for _, comp := range val.Structured() {
					p.Values = append(p.Values, strings.Join(comp, ","))
				}
				return nil
			}
			p.Values = val.Strings()
			return nil
		},
	}
	return c
}

func newCategoriesCodec() *codec[*TextList] {
	c := newTextListCodec(PropCategories, versions30Plus, ',')
	c.parseHTML = func(p *TextList, el *HTMLElement, _ *Params, _ *ParseContext) error {
		p.Values = []string{el.Value()}
		return nil
	}
	return c
}

func newNicknameCodec() *codec[*TextList] {
	c := newTextListCodec(PropNickname, versions30Plus, ',')
	c.parseHTML = func(p *TextList, el *HTMLElement, _ *Params, _ *ParseContext) error {
		p.Values = []string{el.Value()}
		return nil
	}
	return c
}

func newOrgCodec() *codec[*TextList] {
	c := newTextListCodec(PropOrg, allVersions, ';')
	c.parseHTML = func(p *TextList, el *HTMLElement, _ *Params, _ *ParseContext) error {
		name := el.FirstByClass("organization-name")
		units := el.AllByClass("organization-unit")
		if name == nil && len(units) == 0 {
			p.Values = []string{el.Value()}
			return nil
		}
		if name != nil {
			p.Values = append(p.Values, name.Value())
		} else {
			p.Values = append(p.Values, "")
		}
		for _, u := range units {
			p.Values = append(p.Values, u.Value())
		}
		return nil
	}
	return c
}
