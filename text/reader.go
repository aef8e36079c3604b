package text

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
	"github.com/ghettovoice/vcard/log"
)

// Reader reads cards in the text format.
// A Reader can be reused sequentially but not concurrently.
type Reader struct {
	lr       *ioutil.LineReader
	opts     *ReaderOptions
	warnings vcard.Warnings
}

// NewReader creates a new Reader.
// Options are optional, nil means defaults.
func NewReader(r io.Reader, opts *ReaderOptions) *Reader {
	return &Reader{lr: ioutil.NewLineReader(r), opts: opts}
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

func (r *Reader) next() (*vcard.Card, error) {
	cr := newCardReader(r.lr, r.opts, &r.warnings, 0, stateOutside)
	c, err := cr.read()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	r.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "card read",
		slog.Any("card", c),
		slog.Any("version", cr.version),
		slog.Any("warnings", r.warnings),
	)
	return c, nil
}

// Unmarshal reads all cards of data.
func Unmarshal(data []byte, opts *ReaderOptions) ([]*vcard.Card, vcard.Warnings, error) {
	r := NewReader(bytes.NewReader(data), opts)
	cards, err := r.ReadAll()
	return cards, r.Warnings(), errtrace.Wrap(err)
}

type cardState string

const (
	stateOutside cardState = "outside"
	stateInCard  cardState = "in_card"
)

type cardTrigger string

const (
	triggerBegin    cardTrigger = "begin"
	triggerEnd      cardTrigger = "end"
	triggerProperty cardTrigger = "property"
	triggerEOF      cardTrigger = "eof"
)

// cardReader reads a single card and its embedded cards.
// The structure of the input is tracked by a state machine:
// BEGIN:VCARD enters a card, END:VCARD and the end of input leave it.
type cardReader struct {
	lr       *ioutil.LineReader
	opts     *ReaderOptions
	warnings *vcard.Warnings
	depth    int
	version  vcard.Version
	sm       *stateless.StateMachine
	card     *vcard.Card
	done     bool
	// pending is a vCard 2.1 property with an empty value that may be followed by an inline card.
	pending *contentLine
	log     *slog.Logger
}

func newCardReader(lr *ioutil.LineReader, opts *ReaderOptions, warns *vcard.Warnings, depth int, initial cardState) *cardReader {
	cr := &cardReader{
		lr:       lr,
		opts:     opts,
		warnings: warns,
		depth:    depth,
		version:  opts.version(),
		log:      opts.log(),
	}
	if initial == stateInCard {
		cr.card = vcard.New()
	}

	cr.sm = stateless.NewStateMachine(initial)
	cr.sm.Configure(stateOutside).
		Permit(triggerBegin, stateInCard).
		OnEntryFrom(triggerEnd, cr.endCard).
		OnEntryFrom(triggerEOF, cr.unterminatedCard).
		InternalTransition(triggerEnd, cr.strayEnd).
		InternalTransition(triggerProperty, cr.strayProperty).
		Ignore(triggerEOF)
	cr.sm.Configure(stateInCard).
		OnEntryFrom(triggerBegin, cr.beginCard).
		InternalTransition(triggerBegin, cr.nestedCard).
		InternalTransition(triggerProperty, cr.property).
		Permit(triggerEnd, stateOutside).
		Permit(triggerEOF, stateOutside)
	return cr
}

// read consumes lines until a card is complete.
func (cr *cardReader) read() (*vcard.Card, error) {
	for !cr.done {
		line, ok := cr.lr.Next()
		if !ok {
			if err := cr.lr.Err(); err != nil {
				return nil, errtrace.Wrap(vcard.NewMalformedInputError(err))
			}
			if err := cr.sm.Fire(triggerEOF); err != nil {
				return nil, errtrace.Wrap(err)
			}
			if !cr.done {
				return nil, io.EOF //errtrace:skip
			}
			break
		}
		if err := cr.sm.Fire(classifyLine(line), line); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return cr.card, nil
}

func classifyLine(line string) cardTrigger {
	name, value, ok := strings.Cut(line, ":")
	if !ok || !util.EqFold(util.TrimSP(value), "VCARD") {
		return triggerProperty
	}
	switch util.UCase(util.TrimSP(name)) {
	case vcard.PropBegin:
		return triggerBegin
	case vcard.PropEnd:
		return triggerEnd
	default:
		return triggerProperty
	}
}

func (cr *cardReader) beginCard(context.Context, ...any) error {
	cr.card = vcard.New()
	return nil
}

func (cr *cardReader) endCard(context.Context, ...any) error {
	cr.done = true
	return errtrace.Wrap(cr.flushPending())
}

func (cr *cardReader) unterminatedCard(context.Context, ...any) error {
	cr.done = true
	cr.warnings.Add("line %d: card is not terminated by END:VCARD", cr.lr.LineNum())
	return errtrace.Wrap(cr.flushPending())
}

func (cr *cardReader) strayEnd(context.Context, ...any) error {
	cr.warnings.Add("line %d: END:VCARD without BEGIN:VCARD, ignored", cr.lr.LineNum())
	return nil
}

func (cr *cardReader) strayProperty(_ context.Context, args ...any) error {
	cr.warnings.Add("line %d: line %q outside of a card, ignored", cr.lr.LineNum(), util.Ellipsis(args[0].(string), 64))
	return nil
}

// nestedCard handles BEGIN:VCARD inside a card, a vCard 2.1 inline embedded card.
func (cr *cardReader) nestedCard(context.Context, ...any) error {
	pending := cr.pending
	cr.pending = nil

	name := vcard.PropAgent
	if pending != nil {
		name = pending.name
	}
	if err := vcard.CheckDepth(cr.depth+1, cr.opts.maxDepth()); err != nil {
		cr.skipInline()
		_, err = cr.handleError(vcard.RawCodec(name), name, "", nil, err)
		return errtrace.Wrap(err)
	}

	var warns vcard.Warnings
	nested := newCardReader(cr.lr, cr.opts, &warns, cr.depth+1, stateInCard)
	nested.version = cr.version
	c, err := nested.read()
	cr.warnings.Merge(name, warns)
	if err != nil {
		return errtrace.Wrap(err)
	}

	if pending == nil {
		cr.warnings.Add("line %d: embedded card without an owning property, ignored", cr.lr.LineNum())
		return nil
	}
	p := cr.opts.registry().Codec(name).New()
	h, ok := p.(vcard.CardHolder)
	if !ok {
		cr.warnings.Add("%s: property cannot hold an embedded card, card ignored", name)
		return nil
	}
	h.SetEmbeddedCard(c)
	params := pending.params.Clone()
	params.Del(vcard.ParamValue)
	p.Base().Group, p.Base().Params = pending.group, params
	cr.card.Add(p)
	return nil
}

// skipInline consumes an inline card without reading it.
func (cr *cardReader) skipInline() {
	for level := 1; level > 0; {
		line, ok := cr.lr.Next()
		if !ok {
			return
		}
		switch classifyLine(line) {
		case triggerBegin:
			level++
		case triggerEnd:
			level--
		}
	}
}

func (cr *cardReader) property(_ context.Context, args ...any) error {
	if err := cr.flushPending(); err != nil {
		return errtrace.Wrap(err)
	}

	line := args[0].(string)
	cl, ok := parseContentLine(line, cr.version)
	if !ok {
		if cr.opts.strict() {
			return errtrace.Wrap(vcard.NewMalformedInputError("line %d: malformed content line %q", cr.lr.LineNum(), util.Ellipsis(line, 64)))
		}
		cr.warnings.Add("line %d: malformed content line %q, ignored", cr.lr.LineNum(), util.Ellipsis(line, 64))
		return nil
	}

	switch cl.name {
	case vcard.PropVersion:
		v, err := vcard.ParseVersion(util.TrimSP(cl.value))
		if err != nil {
			cr.warnings.Add("%s: %s, card read as vCard %s", vcard.PropVersion, vcard.ErrorReason(err), cr.version)
			return nil
		}
		cr.version = v
		return nil
	case vcard.PropBegin, vcard.PropEnd:
		cr.warnings.Add("line %d: unexpected %s:%s, ignored", cr.lr.LineNum(), cl.name, util.Ellipsis(cl.value, 64))
		return nil
	}

	if cr.version == vcard.V21 && util.TrimSP(cl.value) == "" {
		if _, ok := cr.opts.registry().Codec(cl.name).New().(vcard.CardHolder); ok {
			cr.pending = &cl
			return nil
		}
	}
	if cl.params.IsQuotedPrintable() {
		cl.value = cr.quotedPrintable(cl)
	}
	return errtrace.Wrap(cr.parseProperty(cl))
}

// flushPending parses a pending vCard 2.1 property that got no inline card.
func (cr *cardReader) flushPending() error {
	if cr.pending == nil {
		return nil
	}
	cl := *cr.pending
	cr.pending = nil
	return errtrace.Wrap(cr.parseProperty(cl))
}

// quotedPrintable joins soft line breaks of a quoted-printable value and decodes it.
// Values that cannot be decoded are kept as read.
func (cr *cardReader) quotedPrintable(cl contentLine) string {
	value := cl.value
	for strings.HasSuffix(value, "=") {
		next, ok := cr.lr.Next()
		if !ok {
			break
		}
		value += "\r\n" + next
	}
	s, err := decodeQuotedPrintable(value, cl.params.Charset())
	if err != nil {
		cr.warnings.Add("%s: cannot decode quoted-printable value: %s, value kept as is", cl.name, err)
		return strings.ReplaceAll(value, "=\r\n", "")
	}
	return s
}

func (cr *cardReader) parseProperty(cl contentLine) error {
	codec := cr.opts.registry().Codec(cl.name)
	ctx := &vcard.ParseContext{
		Version:       cr.version,
		Compat:        cr.opts.compat(),
		Format:        vcard.FormatText,
		Warnings:      cr.warnings,
		Strict:        cr.opts.strict(),
		Depth:         cr.depth,
		ParseEmbedded: cr.embedded(cl.name),
	}
	if !slices.Contains(codec.Versions(), cr.version) {
		ctx.Warn(cl.name, "property is not defined by vCard %s", cr.version)
	}

	p, err := codec.ParseText(cl.value, cl.params.Value(), cl.params, ctx)
	if err != nil {
		if p, err = cr.handleError(codec, cl.name, cl.value, cl.params, err); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if p == nil {
		return nil
	}
	p.Base().Group = cl.group
	cr.card.Add(p)
	return nil
}

func (cr *cardReader) handleError(codec vcard.Codec, name, raw string, params vcard.Params, err error) (vcard.Property, error) {
	cr.log.LogAttrs(context.Background(), slog.LevelDebug, "property not read",
		slog.String("property", name),
		slog.Any("version", cr.version),
		slog.Any("reason", err),
		slog.Any("value", log.StringValue(util.Ellipsis(raw, 64))),
		slog.Int("line", cr.lr.LineNum()),
	)
	ctx := &vcard.ParseContext{
		Version:  cr.version,
		Format:   vcard.FormatText,
		Warnings: cr.warnings,
		Strict:   cr.opts.strict(),
		Depth:    cr.depth,
	}
	return errtrace.Wrap2(vcard.HandleParseError(codec, name, raw, params, err, ctx))
}

// embedded returns the reader of vCard 3.0 and 4.0 embedded cards of the property.
func (cr *cardReader) embedded(name string) func(s string) (*vcard.Card, error) {
	return func(s string) (*vcard.Card, error) {
		if err := vcard.CheckDepth(cr.depth+1, cr.opts.maxDepth()); err != nil {
			return nil, errtrace.Wrap(err)
		}

		var warns vcard.Warnings
		nested := newCardReader(ioutil.NewLineReader(strings.NewReader(s)), cr.opts, &warns, cr.depth+1, stateOutside)
		nested.version = cr.version
		c, err := nested.read()
		cr.warnings.Merge(name, warns)
		if errors.Is(err, io.EOF) {
			return nil, errtrace.Wrap(vcard.NewCannotParseError("no embedded card"))
		} else if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return c, nil
	}
}
