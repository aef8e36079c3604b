package text

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
)

// Writer writes cards in the text format.
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

// Write writes a card. Warnings of the previous write are discarded.
func (w *Writer) Write(c *vcard.Card) error {
	return errtrace.Wrap(w.WriteAll(c))
}

// WriteAll writes a sequence of cards. Warnings of the previous write are discarded.
func (w *Writer) WriteAll(cards ...*vcard.Card) error {
	w.warnings.Reset()
	fw := ioutil.NewFoldWriter(w.w, w.opts.foldLineLength(), " ", w.opts.newline())
	for _, c := range cards {
		if c == nil {
			return errtrace.Wrap(vcard.NewInvalidArgumentError("nil card"))
		}
		cw := &cardWriter{
			fw:       fw,
			opts:     w.opts,
			version:  w.opts.version(),
			prodID:   w.opts.prodID(),
			warnings: &w.warnings,
			log:      w.opts.log(),
		}
		if err := cw.write(c); err != nil {
			return errtrace.Wrap(err)
		}
	}
	num, err := fw.Result()
	w.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "cards written",
		slog.Int("cards", len(cards)),
		slog.Int("bytes", num),
		slog.Any("version", w.opts.version()),
		slog.Any("warnings", w.warnings),
	)
	return errtrace.Wrap(err)
}

// Warnings returns the warnings of the last write.
func (w *Writer) Warnings() vcard.Warnings { return slices.Clone(w.warnings) }

// Marshal renders a card in the text format.
func Marshal(c *vcard.Card, opts *WriterOptions) ([]byte, vcard.Warnings, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, opts)
	if err := w.Write(c); err != nil {
		return nil, w.Warnings(), errtrace.Wrap(err)
	}
	return buf.Bytes(), w.Warnings(), nil
}

// cardWriter writes a single card and its embedded cards.
type cardWriter struct {
	fw       *ioutil.FoldWriter
	opts     *WriterOptions
	version  vcard.Version
	prodID   string
	warnings *vcard.Warnings
	depth    int
	log      *slog.Logger
}

func (cw *cardWriter) write(c *vcard.Card) error {
	ctx := &vcard.WriteContext{
		Version:  cw.version,
		Compat:   cw.opts.compat(),
		Format:   vcard.FormatText,
		Card:     c,
		Warnings: cw.warnings,
		Depth:    cw.depth,
	}
	entries := vcard.PlanWrite(c, cw.opts.registry(), cw.prodID, ctx)

	cw.fw.WriteLine("BEGIN:VCARD")
	cw.fw.WriteLine("VERSION:" + cw.version.String())
	for _, e := range entries {
		if err := cw.writeEntry(e, ctx); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(cw.fw.WriteLine("END:VCARD"))
}

func (cw *cardWriter) writeEntry(e vcard.WriteEntry, ctx *vcard.WriteContext) error {
	p, name := e.Property, e.Property.Name()
	if err := checkNames(p); err != nil {
		cw.logSkip(name, err)
		return errtrace.Wrap(vcard.HandleWriteError(name, err, ctx))
	}
	params := e.Codec.PrepareParams(p, ctx)
	if cw.version == vcard.V21 {
		var dropped vcard.Params
		params, dropped = dropLegacyUnsafe(params)
		for _, dp := range dropped {
			for _, v := range dp.Values {
				ctx.Warn(name, "%s parameter value %q cannot be written in vCard 2.1, value skipped", util.UCase(dp.Name), v)
			}
		}
	}

	if h, ok := p.(vcard.CardHolder); ok && h.EmbeddedCard() != nil && cw.version == vcard.V21 {
		return errtrace.Wrap(cw.writeInline(p, params, h.EmbeddedCard(), ctx))
	}

	ctx.EmbedCard = func(c *vcard.Card) (string, error) { return errtrace.Wrap2(cw.embed(name, c)) }
	value, err := e.Codec.WriteText(p, ctx)
	ctx.EmbedCard = nil
	if err != nil {
		cw.logSkip(name, err)
		return errtrace.Wrap(vcard.HandleWriteError(name, err, ctx))
	}

	if cw.version != vcard.V21 {
		if params.IsQuotedPrintable() {
			params.Del(vcard.ParamEncoding)
		}
		params.Del(vcard.ParamCharset)
	}

	if cw.version == vcard.V21 && params.IsQuotedPrintable() {
		return errtrace.Wrap(cw.writeQuotedPrintable(p, params, value, ctx))
	}
	if err := cw.fw.WriteLine(cw.head(p, params) + value); err != nil {
		return errtrace.Wrap(err)
	}
	if cw.version == vcard.V21 && ctx.Compat == vcard.CompatOutlook && params.IsBase64() {
		// Outlook expects an empty line after base64 data.
		return errtrace.Wrap(cw.fw.WriteRaw(cw.fw.Newline()))
	}
	return nil
}

// head renders the group, the name and the parameters of a content line up to the ':'.
func (cw *cardWriter) head(p vcard.Property, params vcard.Params) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if g := p.Base().Group; g != "" {
		sb.WriteString(g)
		sb.WriteByte('.')
	}
	sb.WriteString(p.Name())
	renderParams(sb, params, cw.version)
	sb.WriteByte(':')
	return sb.String()
}

func (cw *cardWriter) writeQuotedPrintable(p vcard.Property, params vcard.Params, value string, ctx *vcard.WriteContext) error {
	if params.Charset() == "" {
		params.SetCharset(defaultCharset)
	}
	toks, err := encodeQuotedPrintable(value, params.Charset())
	if err != nil {
		ctx.Warn(p.Name(), "%s, value written as UTF-8", err)
		params.SetCharset(defaultCharset)
		toks = util.Must2(encodeQuotedPrintable(value, defaultCharset))
	}
	for _, line := range foldQuotedPrintable(cw.head(p, params), toks, cw.opts.foldLineLength()) {
		cw.fw.WriteRaw(line)
		cw.fw.WriteRaw(cw.fw.Newline())
	}
	_, err = cw.fw.Result()
	return errtrace.Wrap(err)
}

// writeInline writes a vCard 2.1 embedded card as a bare BEGIN/END block after the property line.
func (cw *cardWriter) writeInline(p vcard.Property, params vcard.Params, c *vcard.Card, ctx *vcard.WriteContext) error {
	name := p.Name()
	if err := vcard.CheckDepth(cw.depth+1, cw.opts.maxDepth()); err != nil {
		cw.logSkip(name, err)
		return errtrace.Wrap(vcard.HandleWriteError(name, err, ctx))
	}
	if err := cw.fw.WriteLine(cw.head(p, params)); err != nil {
		return errtrace.Wrap(err)
	}

	var warns vcard.Warnings
	nested := cw.nested(cw.fw, &warns)
	err := nested.write(c)
	cw.warnings.Merge(name, warns)
	return errtrace.Wrap(err)
}

// embed renders an embedded card as a single value: LF line breaks, no folding, no product identifier.
func (cw *cardWriter) embed(name string, c *vcard.Card) (string, error) {
	if err := vcard.CheckDepth(cw.depth+1, cw.opts.maxDepth()); err != nil {
		return "", errtrace.Wrap(err)
	}

	var (
		sb    strings.Builder
		warns vcard.Warnings
	)
	fw := ioutil.NewFoldWriter(&sb, 0, " ", "\n")
	nested := cw.nested(fw, &warns)
	err := nested.write(c)
	cw.warnings.Merge(name, warns)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if _, err := fw.Result(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

func (cw *cardWriter) nested(fw *ioutil.FoldWriter, warns *vcard.Warnings) *cardWriter {
	return &cardWriter{
		fw:       fw,
		opts:     cw.opts,
		version:  cw.version,
		warnings: warns,
		depth:    cw.depth + 1,
		log:      cw.log,
	}
}

func (cw *cardWriter) logSkip(name string, err error) {
	cw.log.LogAttrs(context.Background(), slog.LevelDebug, "property not written",
		slog.String("property", name),
		slog.Any("version", cw.version),
		slog.Any("reason", err),
		slog.Int("depth", cw.depth),
	)
}
