package jcard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
)

// Writer writes cards as jCard documents.
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

// Write writes a single card document. Warnings of the previous write are discarded.
func (w *Writer) Write(c *vcard.Card) error {
	w.warnings.Reset()
	if c == nil {
		return errtrace.Wrap(vcard.NewInvalidArgumentError("nil card"))
	}
	doc, err := w.card(c)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(w.encode(1, doc))
}

// WriteAll writes an array of cards. Warnings of the previous write are discarded.
func (w *Writer) WriteAll(cards ...*vcard.Card) error {
	w.warnings.Reset()
	doc := make([]any, 0, len(cards))
	for _, c := range cards {
		if c == nil {
			return errtrace.Wrap(vcard.NewInvalidArgumentError("nil card"))
		}
		card, err := w.card(c)
		if err != nil {
			return errtrace.Wrap(err)
		}
		doc = append(doc, card)
	}
	return errtrace.Wrap(w.encode(len(cards), doc))
}

func (w *Writer) encode(cards int, doc any) error {
	cw := ioutil.NewCountingWriter(w.w)
	enc := json.NewEncoder(cw)
	enc.SetEscapeHTML(false)
	if ind := w.opts.indent(); ind != "" {
		enc.SetIndent("", ind)
	}
	if err := enc.Encode(doc); err != nil {
		return errtrace.Wrap(err)
	}

	num, err := cw.Result()
	w.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "cards written",
		slog.Int("cards", cards),
		slog.Int("bytes", num),
		slog.Any("version", vcard.V40),
		slog.Any("warnings", w.warnings),
	)
	return errtrace.Wrap(err)
}

// Warnings returns the warnings of the last write.
func (w *Writer) Warnings() vcard.Warnings { return slices.Clone(w.warnings) }

// Marshal renders a card as a jCard document.
func Marshal(c *vcard.Card, opts *WriterOptions) ([]byte, vcard.Warnings, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, opts)
	if err := w.Write(c); err != nil {
		return nil, w.Warnings(), errtrace.Wrap(err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), w.Warnings(), nil
}

func (w *Writer) card(c *vcard.Card) ([]any, error) {
	ctx := &vcard.WriteContext{
		Version:  vcard.V40,
		Format:   vcard.FormatJSON,
		Card:     c,
		Warnings: &w.warnings,
	}
	entries := vcard.PlanWrite(c, w.opts.registry(), w.opts.prodID(), ctx)

	props := make([]any, 0, len(entries)+1)
	props = append(props, []any{"version", jsonParams{}, vcard.DataTypeText, vcard.V40.String()})
	for _, e := range entries {
		prop, err := w.property(e, ctx)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if prop != nil {
			props = append(props, prop)
		}
	}
	return []any{"vcard", props}, nil
}

func (w *Writer) property(e vcard.WriteEntry, ctx *vcard.WriteContext) ([]any, error) {
	p, name := e.Property, e.Property.Name()
	val, err := e.Codec.WriteJSON(p, ctx)
	if err == nil && val == nil {
		err = errtrace.Wrap(vcard.NewSkipPropertyError("no value"))
	}
	if err != nil {
		w.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "property not written",
			slog.String("property", name),
			slog.Any("version", vcard.V40),
			slog.Any("reason", err),
		)
		return nil, errtrace.Wrap(vcard.HandleWriteError(name, err, ctx))
	}

	prop := []any{
		util.LCase(name),
		jsonParams{group: p.Base().Group, params: e.Codec.PrepareParams(p, ctx)},
		util.Coalesce(val.DataType, vcard.DataTypeUnknown),
	}
	if len(val.Values) == 0 {
		return append(prop, ""), nil
	}
	return append(prop, val.Values...), nil
}
