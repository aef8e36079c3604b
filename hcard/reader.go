package hcard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/util"
	"github.com/ghettovoice/vcard/log"
)

// propertyClasses are the class names of hCard properties.
var propertyClasses = []string{
	"fn", "n", "nickname", "photo", "bday", "adr", "label", "tel", "email", "mailer",
	"tz", "geo", "title", "role", "logo", "agent", "org", "categories", "note", "rev",
	"sort-string", "sound", "uid", "url", "class", "key",
}

const (
	classVCard = "vcard"
	classAgent = "agent"
)

// Reader reads cards from an HTML page.
// The page is parsed entirely on the first read.
// A Reader can be reused sequentially but not concurrently.
type Reader struct {
	r        io.Reader
	opts     *ReaderOptions
	warnings vcard.Warnings
	loaded   bool
	cards    []*vcard.HTMLElement
}

// NewReader creates a new Reader.
// Options are optional, nil means defaults.
func NewReader(r io.Reader, opts *ReaderOptions) *Reader {
	return &Reader{r: r, opts: opts}
}

// Read reads the next card. It returns [io.EOF] when there are no more cards.
// Warnings of the previous read are discarded.
func (r *Reader) Read() (*vcard.Card, error) {
	r.warnings.Reset()
	return errtrace.Wrap2(r.next())
}

// ReadAll reads all remaining cards. Warnings of the previous read are discarded.
func (r *Reader) ReadAll() ([]*vcard.Card, error) {
	r.warnings.Reset()
	var cards []*vcard.Card
	for {
		c, err := r.next()
		if errors.Is(err, io.EOF) {
			return cards, nil
		} else if err != nil {
			return cards, errtrace.Wrap(err)
		}
		cards = append(cards, c)
	}
}

// Warnings returns the warnings of the last read.
func (r *Reader) Warnings() vcard.Warnings { return slices.Clone(r.warnings) }

// Unmarshal reads all cards of an HTML page.
func Unmarshal(data []byte, opts *ReaderOptions) ([]*vcard.Card, vcard.Warnings, error) {
	r := NewReader(bytes.NewReader(data), opts)
	cards, err := r.ReadAll()
	return cards, r.Warnings(), errtrace.Wrap(err)
}

func (r *Reader) next() (*vcard.Card, error) {
	if err := r.load(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(r.cards) == 0 {
		return nil, io.EOF //errtrace:skip
	}
	el := r.cards[0]
	r.cards = r.cards[1:]

	c, err := r.card(el, 0, &r.warnings)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	r.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "card read",
		slog.Any("card", c),
		slog.Any("warnings", r.warnings),
	)
	return c, nil
}

// load parses the page and collects top-level card elements.
func (r *Reader) load() error {
	if r.loaded {
		return nil
	}
	r.loaded = true

	doc, err := html.Parse(r.r)
	if err != nil {
		return errtrace.Wrap(vcard.NewMalformedInputError(err))
	}
	var root *html.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			root = n
			break
		}
	}
	if root == nil {
		return nil
	}

	el := vcard.NewHTMLElement(root, pageBase(root, r.opts.baseURL()))
	if el.HasClass(classVCard) {
		r.cards = append(r.cards, el)
		return nil
	}
	el.Walk(func(e *vcard.HTMLElement) bool {
		if e.HasClass(classVCard) {
			r.cards = append(r.cards, e)
		}
		return true
	})
	return nil
}

// pageBase returns the URL links of the page resolve against:
// the first <base href> resolved against base, or base itself.
func pageBase(root *html.Node, base *url.URL) *url.URL {
	var href string
	var find func(n *html.Node) bool
	find = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Base {
			for _, a := range n.Attr {
				if a.Namespace == "" && util.EqFold(a.Key, "href") {
					href = util.TrimSP(a.Val)
					return href != ""
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if find(c) {
				return true
			}
		}
		return false
	}
	if !find(root) {
		return base
	}
	u, err := url.Parse(href)
	if err != nil {
		return base
	}
	if base != nil {
		return base.ResolveReference(u)
	}
	return u
}

func (r *Reader) card(el *vcard.HTMLElement, depth int, warns *vcard.Warnings) (*vcard.Card, error) {
	c := vcard.New()
	ctx := &vcard.ParseContext{
		Version:  vcard.V40,
		Format:   vcard.FormatHTML,
		Warnings: warns,
		Strict:   r.opts.strict(),
		Depth:    depth,
	}
	reg := r.opts.registry()

	var err error
	el.Walk(func(e *vcard.HTMLElement) bool {
		if e.HasClass(classVCard) {
			if e.HasClass(classAgent) {
				err = r.agent(c, e, ctx)
			}
			return err == nil
		}
		for _, cls := range e.Classes() {
			if !slices.Contains(propertyClasses, cls) {
				continue
			}
			codec, ok := reg.Lookup(cls)
			if !ok {
				continue
			}
			if err = r.property(c, codec, e, ctx); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	impliedName(c)
	return c, nil
}

func (r *Reader) property(c *vcard.Card, codec vcard.Codec, el *vcard.HTMLElement, ctx *vcard.ParseContext) error {
	p, err := codec.ParseHTML(el, ctx)
	if err != nil {
		r.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "property not read",
			slog.String("property", codec.Name()),
			slog.String("element", el.TagName()),
			slog.Any("classes", log.CalcValue(func() any { return el.Classes() })),
			slog.Any("reason", err),
		)
		p, err = vcard.HandleParseError(codec, codec.Name(), el.Value(), nil, err, ctx)
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	c.Add(p)
	return nil
}

// agent reads a nested card element into an AGENT property.
func (r *Reader) agent(c *vcard.Card, el *vcard.HTMLElement, ctx *vcard.ParseContext) error {
	codec := r.opts.registry().Codec(vcard.PropAgent)
	if err := vcard.CheckDepth(ctx.Depth+1, r.opts.maxDepth()); err != nil {
		_, err = vcard.HandleParseError(codec, vcard.PropAgent, "", nil, err, ctx)
		return errtrace.Wrap(err)
	}
	holder, ok := codec.New().(vcard.CardHolder)
	if !ok {
		ctx.Warn(vcard.PropAgent, "property cannot hold an embedded card, card ignored")
		return nil
	}

	var warns vcard.Warnings
	nested, err := r.card(el, ctx.Depth+1, &warns)
	ctx.Warnings.Merge(vcard.PropAgent, warns)
	if err != nil {
		return errtrace.Wrap(err)
	}
	holder.SetEmbeddedCard(nested)
	c.Add(holder)
	return nil
}

// impliedName derives N from a two word FN, "Given Family" or "Family, Given",
// unless the card is an organization card whose FN repeats ORG.
func impliedName(c *vcard.Card) {
	if c.Has(vcard.PropN) {
		return
	}
	fn := c.FormattedName()
	if fn == "" {
		return
	}
	if org, ok := vcard.FirstOf[*vcard.TextList](c, vcard.PropOrg); ok && len(org.Values) > 0 && org.Values[0] == fn {
		return
	}

	words := strings.Fields(fn)
	if len(words) != 2 {
		return
	}
	given, family := words[0], words[1]
	if strings.HasSuffix(given, ",") {
		given, family = family, strings.TrimSuffix(given, ",")
	}
	c.Add(vcard.NewStructuredName(family, given))
}
