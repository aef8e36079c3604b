package vcard

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ghettovoice/vcard/internal/util"
)

// HTMLElement is an HTML element of hCard markup.
type HTMLElement struct {
	node *html.Node
	base *url.URL
}

// NewHTMLElement wraps an element node. Relative URLs are resolved against base when it is set.
func NewHTMLElement(n *html.Node, base *url.URL) *HTMLElement {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &HTMLElement{node: n, base: base}
}

// Node returns the underlying node.
func (e *HTMLElement) Node() *html.Node { return e.node }

// TagName returns the lower-case tag name.
func (e *HTMLElement) TagName() string { return util.LCase(e.node.Data) }

// Attr returns the value of the attribute.
func (e *HTMLElement) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && util.EqFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// AbsURL returns the attribute value resolved against the base URL.
func (e *HTMLElement) AbsURL(name string) string {
	v := util.TrimSP(e.Attr(name))
	if v == "" || e.base == nil {
		return v
	}
	ref, err := url.Parse(v)
	if err != nil {
		return v
	}
	return e.base.ResolveReference(ref).String()
}

// Classes returns the lower-case class names of the element.
func (e *HTMLElement) Classes() []string {
	return strings.Fields(util.LCase(e.Attr("class")))
}

// HasClass checks whether the element has the class.
func (e *HTMLElement) HasClass(cls string) bool { return util.ContainsFold(e.Classes(), cls) }

// Text returns the text content of the element with whitespace collapsed.
// The content of <br> elements becomes a newline.
func (e *HTMLElement) Text() string {
	var sb strings.Builder
	collectText(e.node, &sb)
	lines := strings.Split(sb.String(), "\n")
	for i := range lines {
		lines[i] = strings.Join(strings.Fields(lines[i]), " ")
	}
	return util.TrimSP(strings.Join(lines, "\n"))
}

// htmlSpace maps source line breaks to spaces; only <br> breaks lines.
var htmlSpace = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func collectText(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(htmlSpace.Replace(c.Data))
		case html.ElementNode:
			switch c.DataAtom {
			case atom.Br:
				sb.WriteByte('\n')
			case atom.Script, atom.Style:
			default:
				collectText(c, sb)
			}
		}
	}
}

// Value returns the property value of the element following the microformat rules:
// the concatenated "value" sub-elements if any, otherwise a tag specific attribute,
// otherwise the text content.
func (e *HTMLElement) Value() string {
	if vals := e.AllByClass("value"); len(vals) > 0 {
		var sb strings.Builder
		for _, v := range vals {
			sb.WriteString(v.ownValue())
		}
		return sb.String()
	}
	return e.ownValue()
}

func (e *HTMLElement) ownValue() string {
	switch e.node.DataAtom {
	case atom.Abbr, atom.Acronym:
		if v := e.Attr("title"); v != "" {
			return v
		}
	case atom.Time, atom.Ins, atom.Del:
		if v := e.Attr("datetime"); v != "" {
			return v
		}
	case atom.Data, atom.Input:
		if v := e.Attr("value"); v != "" {
			return v
		}
	case atom.Img, atom.Area:
		if v := e.Attr("alt"); v != "" {
			return v
		}
	}
	return e.Text()
}

// URL returns the link target of the element: href for links, src for media, data for objects.
func (e *HTMLElement) URL() string {
	switch e.node.DataAtom {
	case atom.A, atom.Area, atom.Link:
		return e.AbsURL("href")
	case atom.Img, atom.Audio, atom.Video, atom.Source, atom.Embed:
		return e.AbsURL("src")
	case atom.Object:
		return e.AbsURL("data")
	default:
		return ""
	}
}

// FirstByClass returns the first descendant with the class, in document order.
func (e *HTMLElement) FirstByClass(cls string) *HTMLElement {
	var found *HTMLElement
	e.walk(func(c *HTMLElement) bool {
		if c.HasClass(cls) {
			found = c
			return false
		}
		return true
	})
	return found
}

// AllByClass returns all descendants with the class, in document order.
// Descendants of nested "vcard" elements are not visited.
func (e *HTMLElement) AllByClass(cls string) []*HTMLElement {
	var res []*HTMLElement
	e.walk(func(c *HTMLElement) bool {
		if c.HasClass(cls) {
			res = append(res, c)
		}
		return true
	})
	return res
}

// Types returns the lower-case values of "type" sub-elements.
func (e *HTMLElement) Types() []string {
	var res []string
	for _, t := range e.AllByClass("type") {
		if v := util.LCase(util.TrimSP(t.Value())); v != "" && !util.ContainsFold(res, v) {
			res = append(res, v)
		}
	}
	return res
}

// Walk visits descendant elements depth-first in document order until fn returns false.
// Elements with the "vcard" class are visited, their subtrees are not.
func (e *HTMLElement) Walk(fn func(*HTMLElement) bool) { e.walk(fn) }

// walk visits descendant elements depth-first until fn returns false.
// The subtree of a nested card is not entered.
func (e *HTMLElement) walk(fn func(*HTMLElement) bool) bool {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		ce := &HTMLElement{node: c, base: e.base}
		if !fn(ce) {
			return false
		}
		if ce.HasClass("vcard") {
			continue
		}
		if !ce.walk(fn) {
			return false
		}
	}
	return true
}
