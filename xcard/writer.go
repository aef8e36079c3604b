package xcard

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
)

// Writer writes cards as xCard documents.
// A Writer can be reused sequentially but not concurrently.
type Writer struct {
	w        io.Writer
	opts     *WriterOptions
	warnings vcard.Warnings
}

// NewWriter creates a new Writer.
// Options are optional, nil means defaults.
func NewWriter(w io.Writer, opts *WriterOptions) *Writer {
	return &Writer{w: w, opts: opts}
}

// Write writes a document with a single card. Warnings of the previous write are discarded.
func (w *Writer) Write(c *vcard.Card) error {
	return errtrace.Wrap(w.WriteAll(c))
}

// WriteAll writes a document with all cards. Warnings of the previous write are discarded.
func (w *Writer) WriteAll(cards ...*vcard.Card) error {
	w.warnings.Reset()
	cw := ioutil.NewCountingWriter(w.w)
	if w.opts.header() {
		if _, err := cw.WriteString(xml.Header); err != nil {
			return errtrace.Wrap(err)
		}
	}

	enc := xml.NewEncoder(cw)
	if ind := w.opts.indent(); ind != "" {
		enc.Indent("", ind)
	}
	root := xml.StartElement{Name: xml.Name{Space: vcard.XMLNamespace, Local: elemVCards}}
	if err := enc.EncodeToken(root); err != nil {
		return errtrace.Wrap(err)
	}
	for _, c := range cards {
		if c == nil {
			return errtrace.Wrap(vcard.NewInvalidArgumentError("nil card"))
		}
		el, err := w.card(c)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := el.Encode(enc); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return errtrace.Wrap(err)
	}
	if err := enc.Flush(); err != nil {
		return errtrace.Wrap(err)
	}

	num, err := cw.Result()
	w.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "cards written",
		slog.Int("cards", len(cards)),
		slog.Int("bytes", num),
		slog.Any("version", vcard.V40),
		slog.Any("warnings", w.warnings),
	)
	return errtrace.Wrap(err)
}

// Warnings returns the warnings of the last write.
func (w *Writer) Warnings() vcard.Warnings { return slices.Clone(w.warnings) }

// Marshal renders a card as an xCard document.
func Marshal(c *vcard.Card, opts *WriterOptions) ([]byte, vcard.Warnings, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, opts)
	if err := w.Write(c); err != nil {
		return nil, w.Warnings(), errtrace.Wrap(err)
	}
	return buf.Bytes(), w.Warnings(), nil
}

func (w *Writer) card(c *vcard.Card) (*vcard.XElement, error) {
	ctx := &vcard.WriteContext{
		Version:  vcard.V40,
		Format:   vcard.FormatXML,
		Card:     c,
		Warnings: &w.warnings,
	}
	entries := vcard.PlanWrite(c, w.opts.registry(), w.opts.prodID(), ctx)

	el := &vcard.XElement{Name: elemVCard}
	groups := make(map[string]*vcard.XElement)
	for _, e := range entries {
		elems, err := w.property(e, ctx)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if len(elems) == 0 {
			continue
		}

		group := e.Property.Base().Group
		if group == "" {
			el.Append(elems...)
			continue
		}
		// properties of one group share the element created at the first occurrence
		ge, ok := groups[util.LCase(group)]
		if !ok {
			ge = &vcard.XElement{
				Name:  elemGroup,
				Attrs: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: group}},
			}
			groups[util.LCase(group)] = ge
			el.Append(ge)
		}
		ge.Append(elems...)
	}
	return el, nil
}

func (w *Writer) property(e vcard.WriteEntry, ctx *vcard.WriteContext) ([]*vcard.XElement, error) {
	p, name := e.Property, e.Property.Name()
	vals, err := e.Codec.WriteXML(p, ctx)
	if err != nil {
		w.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "property not written",
			slog.String("property", name),
			slog.Any("version", vcard.V40),
			slog.Any("reason", err),
		)
		return nil, errtrace.Wrap(vcard.HandleWriteError(name, err, ctx))
	}
	// XML properties are foreign elements written in place.
	if _, ok := p.(*vcard.XMLProperty); ok {
		return vals, nil
	}

	el := &vcard.XElement{Name: util.LCase(name)}
	if params := e.Codec.PrepareParams(p, ctx); params.Len() > 0 {
		el.Append(paramsElement(params))
	}
	el.Append(vals...)
	return []*vcard.XElement{el}, nil
}
