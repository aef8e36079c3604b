package vcard

import (
	"errors"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// WriteEntry is a property scheduled for writing with the codec that writes it.
type WriteEntry struct {
	Property Property
	Codec    Codec
}

// PlanWrite validates the card against the version of ctx and returns its properties
// in emission order: declared properties in registry order, then extended properties
// in card order, then the product identifier.
//
// Properties that cannot be written in the version are left out with a warning.
// A non-empty prodID replaces PRODID properties of the card with a generated one,
// written as X-PRODID in vCard 2.1.
func PlanWrite(c *Card, reg *Registry, prodID string, ctx *WriteContext) []WriteEntry {
	if reg == nil {
		reg = DefaultRegistry()
	}
	v := ctx.version()
	validateRequired(c, ctx)

	var declared, extended []WriteEntry
	for _, p := range c.Properties() {
		name := p.Name()
		if isStructural(name) || (prodID != "" && util.EqFold(name, PropProdID)) {
			continue
		}
		codec := reg.CodecFor(p)
		if codec == nil {
			ctx.Warn(name, "no codec for property type %T, property skipped", p)
			continue
		}
		if !supportsVersion(codec.Versions(), v) {
			ctx.Warn(name, "property is not supported by vCard %s, property skipped", v)
			continue
		}
		if util.EqFold(name, PropMember) && c.Kind() != "group" {
			ctx.Warn(name, "property requires KIND:group, property skipped")
			continue
		}
		if _, ok := p.(*RawProperty); ok && reg.Order(name) < 0 {
			extended = append(extended, WriteEntry{p, codec})
			continue
		}
		declared = append(declared, WriteEntry{p, codec})
	}

	slices.SortStableFunc(declared, func(a, b WriteEntry) int {
		return reg.Order(a.Property.Name()) - reg.Order(b.Property.Name())
	})

	entries := make([]WriteEntry, 0, len(declared)+len(extended)+1)
	for _, e := range declared {
		entries = append(entries, e)
		if adr, ok := e.Property.(*Address); ok && v != V40 {
			if label := syntheticLabel(adr); label != nil {
				entries = append(entries, WriteEntry{label, reg.Codec(PropLabel)})
			}
		}
	}
	entries = append(entries, extended...)

	if prodID != "" {
		if v == V21 {
			entries = append(entries, WriteEntry{NewRawProperty(PropXProdID, EscapeText(prodID)), RawCodec(PropXProdID)})
		} else {
			entries = append(entries, WriteEntry{NewText(PropProdID, prodID), reg.Codec(PropProdID)})
		}
	}
	return entries
}

// validateRequired warns about properties the version requires:
// N in vCard 2.1 and 3.0, FN in vCard 3.0 and 4.0.
func validateRequired(c *Card, ctx *WriteContext) {
	v := ctx.version()
	if (v == V21 || v == V30) && !c.Has(PropN) {
		ctx.Warnings.Add("%s property is required by vCard %s", PropN, v)
	}
	if (v == V30 || v == V40) && !c.Has(PropFN) {
		ctx.Warnings.Add("%s property is required by vCard %s", PropFN, v)
	}
}

// HandleWriteError converts a codec write error into a warning when the property
// can just be left out. Other errors are returned.
func HandleWriteError(name string, err error, ctx *WriteContext) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrSkipProperty):
		ctx.Warn(name, "property skipped: %s", ErrorReason(err))
		return nil
	case errors.Is(err, ErrNestingTooDeep):
		ctx.Warn(name, "property skipped: %s", err)
		return nil
	default:
		return errtrace.Wrap(err)
	}
}

// HandleParseError resolves a codec parse error of the property with the raw value.
//
// A skipped property yields a nil property with a warning. An unparseable property
// yields the substitute of a [Recoverer] codec, or a [RawProperty] keeping the raw value,
// and a warning. In strict mode unparseable properties are returned as errors.
func HandleParseError(c Codec, name, raw string, params Params, err error, ctx *ParseContext) (Property, error) {
	switch {
	case err == nil:
		return nil, nil
	case errors.Is(err, ErrSkipProperty):
		ctx.Warn(name, "property skipped: %s", ErrorReason(err))
		return nil, nil
	case errors.Is(err, ErrNestingTooDeep):
		if ctx != nil && ctx.Strict {
			return nil, errtrace.Wrap(err)
		}
		ctx.Warn(name, "property skipped: %s", err)
		return nil, nil
	case errors.Is(err, ErrCannotParse):
		if ctx != nil && ctx.Strict {
			return nil, errtrace.Wrap(err)
		}
		if r, ok := c.(Recoverer); ok {
			if p, ok := r.Recover(raw, params, ctx); ok {
				ctx.Warn(name, "cannot parse value %q: %s, recovered", util.Ellipsis(raw, 64), ErrorReason(err))
				return p, nil
			}
		}
		ctx.Warn(name, "cannot parse value %q: %s, kept as raw value", util.Ellipsis(raw, 64), ErrorReason(err))
		p := NewRawProperty(name, raw)
		p.Params = params.Clone()
		if dt := params.Value(); dt != "" {
			p.DataType = dt
			p.Params.Del(ParamValue)
			if p.Params.Len() == 0 {
				p.Params = nil
			}
		}
		return p, nil
	default:
		return nil, errtrace.Wrap(err)
	}
}

// CheckDepth fails with [ErrNestingTooDeep] when an embedded card at depth exceeds maxDepth.
func CheckDepth(depth, maxDepth int) error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth > maxDepth {
		return errtrace.Wrap(NewNestingTooDeepError("embedded card depth %d exceeds %d", depth, maxDepth))
	}
	return nil
}
