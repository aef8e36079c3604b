package vcard

import (
	"slices"

	"github.com/ghettovoice/vcard/internal/util"
)

// Card is a vCard: an ordered collection of properties.
//
// The version is not part of the card; it is chosen when the card is written.
// Framing properties (BEGIN, VERSION, END) are never stored.
type Card struct {
	props []Property
}

// New creates an empty card with given properties.
func New(props ...Property) *Card {
	c := &Card{}
	return c.Add(props...)
}

// Add appends properties to the card. Nil properties are ignored.
func (c *Card) Add(props ...Property) *Card {
	for _, p := range props {
		if p == nil || isStructural(p.Name()) {
			continue
		}
		c.props = append(c.props, p)
	}
	return c
}

// Set replaces all properties of the same name with p.
// The new property takes the position of the first replaced one.
func (c *Card) Set(p Property) *Card {
	if p == nil {
		return c
	}
	i := slices.IndexFunc(c.props, func(e Property) bool { return util.EqFold(e.Name(), p.Name()) })
	if i < 0 {
		return c.Add(p)
	}
	c.props[i] = p
	c.props = slices.DeleteFunc(c.props, func(e Property) bool { return e != p && util.EqFold(e.Name(), p.Name()) })
	return c
}

// Get returns all properties with the name, ignoring case, in card order.
func (c *Card) Get(name string) []Property {
	if c == nil {
		return nil
	}
	var res []Property
	for _, p := range c.props {
		if util.EqFold(p.Name(), name) {
			res = append(res, p)
		}
	}
	return res
}

// First returns the first property with the name or nil.
func (c *Card) First(name string) Property {
	if c == nil {
		return nil
	}
	for _, p := range c.props {
		if util.EqFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

// Has checks whether the card has a property with the name.
func (c *Card) Has(name string) bool { return c.First(name) != nil }

// Remove deletes all properties with the name.
func (c *Card) Remove(name string) *Card {
	c.props = slices.DeleteFunc(c.props, func(p Property) bool { return util.EqFold(p.Name(), name) })
	return c
}

// RemoveProperty deletes the given property instance.
func (c *Card) RemoveProperty(p Property) bool {
	n := len(c.props)
	c.props = slices.DeleteFunc(c.props, func(e Property) bool { return e == p })
	return len(c.props) != n
}

// Properties returns all properties in card order.
func (c *Card) Properties() []Property {
	if c == nil {
		return nil
	}
	return slices.Clone(c.props)
}

// Len returns the number of properties.
func (c *Card) Len() int {
	if c == nil {
		return 0
	}
	return len(c.props)
}

// Equal compares cards property by property.
// Properties of the same name must appear in the same relative order,
// the order across names is not significant.
func (c *Card) Equal(val any) bool {
	var other *Card
	switch v := val.(type) {
	case Card:
		other = &v
	case *Card:
		other = v
	default:
		return false
	}

	if c == other {
		return true
	} else if c == nil || other == nil {
		return false
	}
	if len(c.props) != len(other.props) {
		return false
	}

	a, b := c.byName(), other.byName()
	if len(a) != len(b) {
		return false
	}
	for name, ps := range a {
		if !slices.EqualFunc(ps, b[name], func(x, y Property) bool { return x.Equal(y) }) {
			return false
		}
	}
	return true
}

func (c *Card) byName() map[string][]Property {
	m := make(map[string][]Property)
	for _, p := range c.props {
		name := util.UCase(p.Name())
		m[name] = append(m[name], p)
	}
	return m
}

// All returns properties of type P in card order.
func All[P Property](c *Card) []P {
	if c == nil {
		return nil
	}
	var res []P
	for _, p := range c.props {
		if tp, ok := p.(P); ok {
			res = append(res, tp)
		}
	}
	return res
}

// FirstOf returns the first property of type P with the name.
func FirstOf[P Property](c *Card, name string) (P, bool) {
	for _, p := range c.Get(name) {
		if tp, ok := p.(P); ok {
			return tp, true
		}
	}
	var zero P
	return zero, false
}

// FormattedName returns the value of the first FN property.
func (c *Card) FormattedName() string {
	if p, ok := FirstOf[*Text](c, PropFN); ok {
		return p.Value
	}
	return ""
}

// SetFormattedName replaces FN properties with a single one.
func (c *Card) SetFormattedName(fn string) *Card { return c.Set(NewFormattedName(fn)) }

// StructuredName returns the first N property.
func (c *Card) StructuredName() *StructuredName {
	p, _ := FirstOf[*StructuredName](c, PropN)
	return p
}

// SetStructuredName replaces N properties with n.
func (c *Card) SetStructuredName(n *StructuredName) *Card { return c.Set(n) }

// UID returns the value of the UID property.
func (c *Card) UID() string {
	if p, ok := FirstOf[*Text](c, PropUID); ok {
		return p.Value
	}
	return ""
}

// SetUID replaces UID properties with a single one.
func (c *Card) SetUID(uid string) *Card { return c.Set(NewText(PropUID, uid)) }

// Kind returns the value of the KIND property in lower case.
func (c *Card) Kind() string {
	if p, ok := FirstOf[*Text](c, PropKind); ok {
		return util.LCase(p.Value)
	}
	return ""
}

// Telephones returns all TEL properties.
func (c *Card) Telephones() []*Telephone { return allNamed[*Telephone](c, PropTel) }

// Emails returns all EMAIL properties.
func (c *Card) Emails() []*Text { return allNamed[*Text](c, PropEmail) }

// Addresses returns all ADR properties.
func (c *Card) Addresses() []*Address { return allNamed[*Address](c, PropAdr) }

func allNamed[P Property](c *Card, name string) []P {
	var res []P
	for _, p := range c.Get(name) {
		if tp, ok := p.(P); ok {
			res = append(res, tp)
		}
	}
	return res
}
