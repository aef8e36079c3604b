package vcard

import (
	"encoding/xml"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// XElement is a simplified XML element tree used by xCard codecs.
type XElement struct {
	// Space is the namespace URL. Empty means the namespace of the parent.
	Space    string
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []*XElement
}

// NewXElement creates an element with a text content.
func NewXElement(name, text string) *XElement { return &XElement{Name: name, Text: text} }

// Append adds child elements.
func (e *XElement) Append(children ...*XElement) *XElement {
	e.Children = append(e.Children, children...)
	return e
}

// Child returns the first child with the local name, ignoring case.
func (e *XElement) Child(name string) *XElement {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if util.EqFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the local name, ignoring case.
func (e *XElement) ChildrenNamed(name string) []*XElement {
	if e == nil {
		return nil
	}
	var res []*XElement
	for _, c := range e.Children {
		if util.EqFold(c.Name, name) {
			res = append(res, c)
		}
	}
	return res
}

// Texts returns text contents of all children with the local name.
func (e *XElement) Texts(name string) []string {
	var res []string
	for _, c := range e.ChildrenNamed(name) {
		res = append(res, c.Text)
	}
	return res
}

// Attr returns the value of the attribute with the local name.
func (e *XElement) Attr(name string) string {
	if e == nil {
		return ""
	}
	for _, a := range e.Attrs {
		if util.EqFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}

// ValueOf returns the first child named after one of the data types.
// Without types, any child named after a known data type matches.
func (e *XElement) ValueOf(types ...DataType) (DataType, string, bool) {
	if e == nil {
		return "", "", false
	}
	for _, c := range e.Children {
		dt := ParseDataType(c.Name)
		if len(types) == 0 {
			if dt.IsKnown() {
				return dt, c.Text, true
			}
			continue
		}
		for _, t := range types {
			if dt == t {
				return dt, c.Text, true
			}
		}
	}
	return "", "", false
}

// DecodeXElement reads the element started by start and all its content.
// Namespace declarations are dropped from attributes, namespaces are kept in Space fields.
func DecodeXElement(d *xml.Decoder, start xml.StartElement) (*XElement, error) {
	e := &XElement{
		Space: start.Name.Space,
		Name:  start.Name.Local,
	}
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		e.Attrs = append(e.Attrs, a)
	}

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := DecodeXElement(d, t)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(e.Children) > 0 {
				e.Text = strings.TrimSpace(text.String())
			} else {
				e.Text = text.String()
			}
			return e, nil
		}
	}
}

// Encode writes the element tree to enc.
func (e *XElement) Encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Space: e.Space, Local: e.Name}, Attr: e.Attrs}
	if err := enc.EncodeToken(start); err != nil {
		return errtrace.Wrap(err)
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	for _, c := range e.Children {
		if err := c.Encode(enc); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(enc.EncodeToken(start.End()))
}

// String returns the element serialized as XML.
func (e *XElement) String() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	enc := xml.NewEncoder(&sb)
	if err := e.Encode(enc); err != nil {
		return ""
	}
	if err := enc.Flush(); err != nil {
		return ""
	}
	return sb.String()
}

// ParseXElement parses a serialized XML element.
func ParseXElement(s string) (*XElement, error) {
	d := xml.NewDecoder(strings.NewReader(s))
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, errtrace.Wrap(NewInvalidArgumentError(err))
		}
		if start, ok := tok.(xml.StartElement); ok {
			return errtrace.Wrap2(DecodeXElement(d, start))
		}
	}
}

// valueElement creates an element named after the data type.
func valueElement(dt DataType, text string) *XElement {
	return NewXElement(dt.Render(V40), text)
}
