package jcard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/util"
	"github.com/ghettovoice/vcard/log"
)

// Reader reads cards from a stream of jCard documents.
// A Reader can be reused sequentially but not concurrently.
type Reader struct {
	d        *json.Decoder
	opts     *ReaderOptions
	warnings vcard.Warnings
	// pending holds cards of an array document not returned yet
	pending []json.RawMessage
}

// NewReader creates a new Reader.
// Options are optional, nil means defaults.
func NewReader(r io.Reader, opts *ReaderOptions) *Reader {
	return &Reader{d: json.NewDecoder(r), opts: opts}
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

// Unmarshal reads all cards of jCard data.
func Unmarshal(data []byte, opts *ReaderOptions) ([]*vcard.Card, vcard.Warnings, error) {
	r := NewReader(bytes.NewReader(data), opts)
	cards, err := r.ReadAll()
	return cards, r.Warnings(), errtrace.Wrap(err)
}

func (r *Reader) next() (*vcard.Card, error) {
	for len(r.pending) == 0 {
		var raw json.RawMessage
		if err := r.d.Decode(&raw); errors.Is(err, io.EOF) {
			return nil, io.EOF //errtrace:skip
		} else if err != nil {
			return nil, errtrace.Wrap(vcard.NewMalformedInputError(err))
		}

		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, errtrace.Wrap(vcard.NewMalformedInputError("document is not an array"))
		}
		if isCard(arr) {
			r.pending = append(r.pending, raw)
		} else {
			r.pending = append(r.pending, arr...)
		}
	}

	raw := r.pending[0]
	r.pending = r.pending[1:]
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil || !isCard(arr) {
		return nil, errtrace.Wrap(vcard.NewMalformedInputError("value is not a card"))
	}
	return errtrace.Wrap2(r.card(arr))
}

// isCard reports whether the array is a card: the "vcard" string and the properties array.
func isCard(arr []json.RawMessage) bool {
	if len(arr) != 2 {
		return false
	}
	var tag string
	if err := json.Unmarshal(arr[0], &tag); err != nil {
		return false
	}
	return util.EqFold(tag, "vcard")
}

func (r *Reader) card(arr []json.RawMessage) (*vcard.Card, error) {
	var props []json.RawMessage
	if err := json.Unmarshal(arr[1], &props); err != nil {
		return nil, errtrace.Wrap(vcard.NewMalformedInputError("properties are not an array"))
	}

	c := vcard.New()
	ctx := &vcard.ParseContext{
		Version:  vcard.V40,
		Format:   vcard.FormatJSON,
		Warnings: &r.warnings,
		Strict:   r.opts.strict(),
	}
	for i, raw := range props {
		if err := r.property(c, i, raw, ctx); err != nil {
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

// jsonProperty is a decoded property array.
type jsonProperty struct {
	name   string
	group  string
	params vcard.Params
	value  *vcard.JValue
}

func decodeProperty(raw json.RawMessage) (*jsonProperty, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(parts) < 4 {
		return nil, errtrace.Wrap(errorutil.Errorf("%d elements instead of at least 4", len(parts)))
	}

	var (
		prop jsonProperty
		dt   string
		err  error
	)
	if err = json.Unmarshal(parts[0], &prop.name); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if prop.params, prop.group, err = decodeParams(parts[1]); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err = json.Unmarshal(parts[2], &dt); err != nil {
		return nil, errtrace.Wrap(err)
	}

	vals := make([]any, len(parts)-3)
	for i, p := range parts[3:] {
		d := json.NewDecoder(bytes.NewReader(p))
		d.UseNumber()
		if err := d.Decode(&vals[i]); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	prop.name = util.UCase(prop.name)
	prop.value = vcard.NewJValue(vcard.ParseDataType(dt), vals...)
	return &prop, nil
}

func (r *Reader) property(c *vcard.Card, i int, raw json.RawMessage, ctx *vcard.ParseContext) error {
	prop, err := decodeProperty(raw)
	if err != nil {
		r.warnings.Add("property #%d: malformed property: %s, ignored", i+1, err)
		return nil
	}
	if prop.name == vcard.PropVersion {
		if v := prop.value.String(); v != vcard.V40.String() {
			ctx.Warn(prop.name, "unexpected version %q, card read as vCard %s", v, vcard.V40)
		}
		return nil
	}

	codec := r.opts.registry().Codec(prop.name)
	p, err := codec.ParseJSON(prop.value, prop.params, ctx)
	if err != nil {
		r.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "property not read",
			slog.String("property", prop.name),
			slog.Any("version", vcard.V40),
			slog.Any("reason", err),
			slog.Any("params", log.FmtValue(prop.params, false)),
		)
		params := prop.params
		if dt := prop.value.DataType; dt != "" && dt != vcard.DataTypeUnknown && !params.Has(vcard.ParamValue) {
			params = params.Clone()
			params.SetValue(dt)
		}
		p, err = vcard.HandleParseError(codec, prop.name, rawValue(prop.value), params, err, ctx)
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	if p == nil {
		return nil
	}
	p.Base().Group = prop.group
	c.Add(p)
	return nil
}

// rawValue joins the values the way the text format joins list values.
func rawValue(val *vcard.JValue) string {
	if len(val.Values) == 1 {
		if _, ok := val.Values[0].([]any); !ok {
			return val.String()
		}
	}
	comps := val.Structured()
	parts := make([]string, len(comps))
	for i, comp := range comps {
		parts[i] = strings.Join(comp, ",")
	}
	return strings.Join(parts, ";")
}
