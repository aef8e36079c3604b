package xcard

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/util"
	"github.com/ghettovoice/vcard/log"
)

// Reader reads cards from an xCard document.
// A Reader can be reused sequentially but not concurrently.
type Reader struct {
	d        *xml.Decoder
	opts     *ReaderOptions
	warnings vcard.Warnings
}

// NewReader creates a new Reader.
// Options are optional, nil means defaults.
func NewReader(r io.Reader, opts *ReaderOptions) *Reader {
	return &Reader{d: xml.NewDecoder(r), opts: opts}
}

// Read reads the next <vcard> element. It returns [io.EOF] when there are no more cards.
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

// Unmarshal reads all cards of an xCard document.
func Unmarshal(data []byte, opts *ReaderOptions) ([]*vcard.Card, vcard.Warnings, error) {
	r := NewReader(bytes.NewReader(data), opts)
	cards, err := r.ReadAll()
	return cards, r.Warnings(), errtrace.Wrap(err)
}

func (r *Reader) next() (*vcard.Card, error) {
	for {
		tok, err := r.d.Token()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF //errtrace:skip
		} else if err != nil {
			return nil, errtrace.Wrap(vcard.NewMalformedInputError(err))
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case !isOwn(start.Name.Space):
		case start.Name.Local == elemVCards:
			// descend into the root
			continue
		case start.Name.Local == elemVCard:
			el, err := vcard.DecodeXElement(r.d, start)
			if err != nil {
				return nil, errtrace.Wrap(vcard.NewMalformedInputError(err))
			}
			return errtrace.Wrap2(r.card(el))
		}

		r.warnings.Add("unexpected element <%s>, ignored", start.Name.Local)
		if err := r.d.Skip(); err != nil {
			return nil, errtrace.Wrap(vcard.NewMalformedInputError(err))
		}
	}
}

// isOwn reports whether the namespace is the xCard one.
// Elements without a namespace are accepted as well.
func isOwn(space string) bool { return space == "" || space == vcard.XMLNamespace }

func (r *Reader) card(el *vcard.XElement) (*vcard.Card, error) {
	c := vcard.New()
	ctx := &vcard.ParseContext{
		Version:  vcard.V40,
		Format:   vcard.FormatXML,
		Warnings: &r.warnings,
		Strict:   r.opts.strict(),
	}
	for _, child := range el.Children {
		if isOwn(child.Space) && util.EqFold(child.Name, elemGroup) {
			group := child.Attr("name")
			for _, pe := range child.Children {
				if err := r.property(c, group, pe, ctx); err != nil {
					return nil, errtrace.Wrap(err)
				}
			}
			continue
		}
		if err := r.property(c, "", child, ctx); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	r.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "card read",
		slog.Any("card", c),
		slog.Any("version", vcard.V40),
		slog.Any("warnings", r.warnings),
	)
	return c, nil
}

func (r *Reader) property(c *vcard.Card, group string, el *vcard.XElement, ctx *vcard.ParseContext) error {
	var (
		codec  vcard.Codec
		params vcard.Params
		value  = el
	)
	if isOwn(el.Space) {
		name := util.UCase(el.Name)
		if name == vcard.PropVersion {
			return nil
		}
		codec = r.opts.registry().Codec(name)
		params = parseParamsElement(el.Child(elemParameters))
		value = withoutParams(el)
	} else {
		codec = r.opts.registry().Codec(vcard.PropXML)
	}

	p, err := codec.ParseXML(value, params, ctx)
	if err != nil {
		r.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "property not read",
			slog.String("property", codec.Name()),
			slog.Any("version", vcard.V40),
			slog.Any("reason", err),
			slog.Any("element", log.CalcValue(func() any { return util.Ellipsis(value.String(), 128) })),
		)
		raw, dt := rawValue(value)
		if dt != "" && !params.Has(vcard.ParamValue) {
			params = params.Clone()
			params.SetValue(dt)
		}
		p, err = vcard.HandleParseError(codec, codec.Name(), raw, params, err, ctx)
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	if p == nil {
		return nil
	}
	p.Base().Group = group
	c.Add(p)
	return nil
}

// withoutParams returns a shallow copy of the property element without the <parameters> child.
func withoutParams(el *vcard.XElement) *vcard.XElement {
	cp := *el
	cp.Children = util.Filter(el.Children, func(c *vcard.XElement) bool {
		return !util.EqFold(c.Name, elemParameters)
	})
	return &cp
}

// rawValue returns the text of the first value element and its data type.
func rawValue(el *vcard.XElement) (string, vcard.DataType) {
	if len(el.Children) == 0 {
		return el.Text, ""
	}
	c := el.Children[0]
	if dt := vcard.ParseDataType(c.Name); dt.IsKnown() && dt != vcard.DataTypeUnknown {
		return c.Text, dt
	}
	return c.Text, ""
}
