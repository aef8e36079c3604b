package vcard

import (
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// StructuredName is the N property.
type StructuredName struct {
	PropertyBase
	Family     string
	Given      string
	Additional []string
	Prefixes   []string
	Suffixes   []string
}

// NewStructuredName creates an N property.
func NewStructuredName(family, given string) *StructuredName {
	return &StructuredName{Family: family, Given: given}
}

func (*StructuredName) Name() string { return PropN }

// Equal compares group, parameters and all name components.
func (p *StructuredName) Equal(val any) bool {
	other, ok := val.(*StructuredName)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.Family == other.Family && p.Given == other.Given &&
		slices.Equal(p.Additional, other.Additional) &&
		slices.Equal(p.Prefixes, other.Prefixes) &&
		slices.Equal(p.Suffixes, other.Suffixes) &&
		p.equalBase(&other.PropertyBase)
}

// IsEmpty reports whether all components are empty.
func (p *StructuredName) IsEmpty() bool {
	return p.Family == "" && p.Given == "" &&
		len(p.Additional) == 0 && len(p.Prefixes) == 0 && len(p.Suffixes) == 0
}

func (p *StructuredName) components() [][]string {
	return [][]string{
		single(p.Family),
		single(p.Given),
		p.Additional,
		p.Prefixes,
		p.Suffixes,
	}
}

func (p *StructuredName) setComponents(comps [][]string) {
	get := func(i int) []string {
		if i < len(comps) {
			return util.Filter(comps[i], func(s string) bool { return s != "" })
		}
		return nil
	}
	p.Family = strings.Join(get(0), ",")
	p.Given = strings.Join(get(1), ",")
	p.Additional = get(2)
	p.Prefixes = get(3)
	p.Suffixes = get(4)
}

func single(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

var nameXMLElements = []string{"surname", "given", "additional", "prefix", "suffix"}

var nameHTMLClasses = []string{"family-name", "given-name", "additional-name", "honorific-prefix", "honorific-suffix"}

func newStructuredNameCodec() *codec[*StructuredName] {
	return &codec[*StructuredName]{
		name:     PropN,
		versions: allVersions,
		newFn:    func() *StructuredName { return &StructuredName{} },
		defType:  constType(DataTypeText),
		writeText: func(p *StructuredName, _ *WriteContext) (string, error) {
			return JoinStructured(p.components()), nil
		},
		parseText: func(p *StructuredName, value string, _ DataType, _ *Params, _ *ParseContext) error {
			p.setComponents(SplitStructured(value))
			return nil
		},
		writeXML: func(p *StructuredName, _ *WriteContext) ([]*XElement, error) {
			return structuredXML(nameXMLElements, p.components()), nil
		},
		parseXML: func(p *StructuredName, el *XElement, _ *Params, _ *ParseContext) error {
			p.setComponents(structuredFromXML(el, nameXMLElements))
			return nil
		},
		writeJSON: func(p *StructuredName, _ *WriteContext) (*JValue, error) {
			return NewJStructured(DataTypeText, p.components()), nil
		},
		parseJSON: func(p *StructuredName, val *JValue, _ *Params, _ *ParseContext) error {
			p.setComponents(val.Structured())
			return nil
		},
		parseHTML: func(p *StructuredName, el *HTMLElement, _ *Params, _ *ParseContext) error {
			p.setComponents(structuredFromHTML(el, nameHTMLClasses))
			if p.IsEmpty() {
				return NewSkipPropertyError("empty name") //errtrace:skip
			}
			return nil
		},
	}
}

func structuredXML(names []string, comps [][]string) []*XElement {
	var els []*XElement
	for i, name := range names {
		var vals []string
		if i < len(comps) {
			vals = comps[i]
		}
		if len(vals) == 0 {
			els = append(els, NewXElement(name, ""))
			continue
		}
		for _, v := range vals {
			els = append(els, NewXElement(name, v))
		}
	}
	return els
}

func structuredFromXML(el *XElement, names []string) [][]string {
	comps := make([][]string, len(names))
	for i, name := range names {
		for _, t := range el.Texts(name) {
			if t != "" {
				comps[i] = append(comps[i], t)
			}
		}
	}
	return comps
}

func structuredFromHTML(el *HTMLElement, classes []string) [][]string {
	comps := make([][]string, len(classes))
	for i, cls := range classes {
		for _, e := range el.AllByClass(cls) {
			if v := e.Value(); v != "" {
				comps[i] = append(comps[i], v)
			}
		}
	}
	return comps
}

// Address is the ADR property.
// The LABEL parameter holds the delivery label of the address.
type Address struct {
	PropertyBase
	POBox      string
	Extended   string
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

func (*Address) Name() string { return PropAdr }

// Equal compares group, parameters and all address components.
func (p *Address) Equal(val any) bool {
	other, ok := val.(*Address)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.fields() == other.fields() && p.equalBase(&other.PropertyBase)
}

func (p *Address) fields() [7]string {
	return [7]string{p.POBox, p.Extended, p.Street, p.Locality, p.Region, p.PostalCode, p.Country}
}

func (p *Address) setFields(f []string) {
	get := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return ""
	}
	p.POBox, p.Extended, p.Street = get(0), get(1), get(2)
	p.Locality, p.Region, p.PostalCode, p.Country = get(3), get(4), get(5), get(6)
}

func (p *Address) components() [][]string {
	f := p.fields()
	return structuredFields(f[:]...)
}

func (p *Address) setComponents(comps [][]string) {
	f := make([]string, len(comps))
	for i, c := range comps {
		f[i] = strings.Join(c, ",")
	}
	p.setFields(f)
}

var adrXMLElements = []string{"pobox", "ext", "street", "locality", "region", "code", "country"}

var adrHTMLClasses = []string{
	"post-office-box", "extended-address", "street-address",
	"locality", "region", "postal-code", "country-name",
}

func newAddressCodec() *codec[*Address] {
	return &codec[*Address]{
		name:      PropAdr,
		versions:  allVersions,
		newFn:     func() *Address { return &Address{} },
		defType:   constType(DataTypeText),
		prefAware: true,
		prepare: func(_ *Address, params *Params, ctx *WriteContext) {
			if ctx.version() != V40 {
				params.Del(ParamLabel)
			}
		},
		writeText: func(p *Address, _ *WriteContext) (string, error) {
			f := p.fields()
			return joinFields(f[:]...), nil
		},
		parseText: func(p *Address, value string, _ DataType, _ *Params, _ *ParseContext) error {
			p.setFields(splitFields(value, 7))
			return nil
		},
		writeXML: func(p *Address, _ *WriteContext) ([]*XElement, error) {
			return structuredXML(adrXMLElements, p.components()), nil
		},
		parseXML: func(p *Address, el *XElement, _ *Params, _ *ParseContext) error {
			p.setComponents(structuredFromXML(el, adrXMLElements))
			return nil
		},
		writeJSON: func(p *Address, _ *WriteContext) (*JValue, error) {
			return NewJStructured(DataTypeText, p.components()), nil
		},
		parseJSON: func(p *Address, val *JValue, _ *Params, _ *ParseContext) error {
			p.setComponents(val.Structured())
			return nil
		},
		parseHTML: func(p *Address, el *HTMLElement, params *Params, _ *ParseContext) error {
			p.setComponents(structuredFromHTML(el, adrHTMLClasses))
			if p.fields() == ([7]string{}) {
				return NewSkipPropertyError("empty address") //errtrace:skip
			}
			htmlTypes(el, params)
			return nil
		},
	}
}

// syntheticLabel builds the legacy LABEL property written after an address with a LABEL parameter.
func syntheticLabel(adr *Address) *Text {
	label := adr.Params.Label()
	if label == "" {
		return nil
	}
	p := NewText(PropLabel, label)
	p.Group = adr.Group
	if types := adr.Params.Types(); len(types) > 0 {
		p.Params.Set(ParamType, types...)
	}
	if pref, ok := adr.Params.Pref(); ok {
		p.Params.SetPref(pref)
	}
	return p
}

// Gender is the GENDER property.
type Gender struct {
	PropertyBase
	// Sex is one of "M", "F", "O", "N", "U" or empty.
	Sex      string
	Identity string
}

func (*Gender) Name() string { return PropGender }

// Equal compares group, parameters, sex and identity.
func (p *Gender) Equal(val any) bool {
	other, ok := val.(*Gender)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.Sex, other.Sex) && p.Identity == other.Identity && p.equalBase(&other.PropertyBase)
}

func (p *Gender) components() [][]string {
	if p.Identity == "" {
		return [][]string{single(p.Sex)}
	}
	return [][]string{single(p.Sex), {p.Identity}}
}

func (p *Gender) set(sex, identity string) {
	p.Sex = util.UCase(util.TrimSP(sex))
	p.Identity = identity
}

func newGenderCodec() *codec[*Gender] {
	return &codec[*Gender]{
		name:     PropGender,
		versions: versions40,
		newFn:    func() *Gender { return &Gender{} },
		defType:  constType(DataTypeText),
		writeText: func(p *Gender, _ *WriteContext) (string, error) {
			return JoinStructured(p.components()), nil
		},
		parseText: func(p *Gender, value string, _ DataType, _ *Params, _ *ParseContext) error {
			f := splitFields(value, 2)
			p.set(f[0], f[1])
			return nil
		},
		writeXML: func(p *Gender, _ *WriteContext) ([]*XElement, error) {
			els := []*XElement{NewXElement("sex", p.Sex)}
			if p.Identity != "" {
				els = append(els, NewXElement("identity", p.Identity))
			}
			return els, nil
		},
		parseXML: func(p *Gender, el *XElement, _ *Params, _ *ParseContext) error {
			var identity string
			if id := el.Child("identity"); id != nil {
				identity = id.Text
			}
			var sex string
			if s := el.Child("sex"); s != nil {
				sex = s.Text
			}
			p.set(sex, identity)
			return nil
		},
		writeJSON: func(p *Gender, _ *WriteContext) (*JValue, error) {
			if p.Identity == "" {
				return NewJValue(DataTypeText, p.Sex), nil
			}
			return NewJStructured(DataTypeText, p.components()), nil
		},
		parseJSON: func(p *Gender, val *JValue, _ *Params, _ *ParseContext) error {
			comps := val.Structured()
			p.set(StructuredField(comps, 0), StructuredField(comps, 1))
			return nil
		},
	}
}

// ClientPIDMap is the CLIENTPIDMAP property mapping a PID source identifier to a URI.
type ClientPIDMap struct {
	PropertyBase
	ID  int
	URI string
}

func (*ClientPIDMap) Name() string { return PropClientPIDMap }

// Equal compares group, parameters, identifier and URI.
func (p *ClientPIDMap) Equal(val any) bool {
	other, ok := val.(*ClientPIDMap)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.ID == other.ID && p.URI == other.URI && p.equalBase(&other.PropertyBase)
}

func (p *ClientPIDMap) set(id, uri string) error {
	n, err := strconv.Atoi(util.TrimSP(id))
	if err != nil || n <= 0 {
		return errtrace.Wrap(NewCannotParseError("invalid source identifier %q", id))
	}
	p.ID, p.URI = n, util.TrimSP(uri)
	return nil
}

func newClientPIDMapCodec() *codec[*ClientPIDMap] {
	return &codec[*ClientPIDMap]{
		name:     PropClientPIDMap,
		versions: versions40,
		newFn:    func() *ClientPIDMap { return &ClientPIDMap{} },
		defType:  constType(DataTypeText),
		writeText: func(p *ClientPIDMap, _ *WriteContext) (string, error) {
			return strconv.Itoa(p.ID) + ";" + p.URI, nil
		},
		parseText: func(p *ClientPIDMap, value string, _ DataType, _ *Params, _ *ParseContext) error {
			id, uri, _ := strings.Cut(value, ";")
			return errtrace.Wrap(p.set(id, uri))
		},
		writeXML: func(p *ClientPIDMap, _ *WriteContext) ([]*XElement, error) {
			return []*XElement{
				NewXElement("sourceid", strconv.Itoa(p.ID)),
				valueElement(DataTypeURI, p.URI),
			}, nil
		},
		parseXML: func(p *ClientPIDMap, el *XElement, _ *Params, _ *ParseContext) error {
			var id, uri string
			if e := el.Child("sourceid"); e != nil {
				id = e.Text
			}
			if e := el.Child(string(DataTypeURI)); e != nil {
				uri = e.Text
			}
			return errtrace.Wrap(p.set(id, uri))
		},
		writeJSON: func(p *ClientPIDMap, _ *WriteContext) (*JValue, error) {
			return NewJValue(DataTypeText, []any{p.ID, p.URI}), nil
		},
		parseJSON: func(p *ClientPIDMap, val *JValue, _ *Params, _ *ParseContext) error {
			comps := val.Structured()
			return errtrace.Wrap(p.set(StructuredField(comps, 0), StructuredField(comps, 1)))
		},
	}
}
