package vcard

import (
	"fmt"
	"slices"

	"braces.dev/errtrace"
)

// Codec converts properties of one type to and from every wire encoding.
//
// Write methods return an error matching [ErrSkipProperty] when the property has
// nothing to write for the version of the context. Parse methods return an error
// matching [ErrCannotParse] when the input is unusable, or [ErrSkipProperty]
// when the value is valid but not allowed in the version of the context.
type Codec interface {
	// Name returns the upper-case property name.
	Name() string
	// Versions returns the versions that define the property.
	Versions() []Version
	// New creates an empty property.
	New() Property
	// DataType returns the data type of the property value in the version.
	DataType(p Property, v Version) DataType
	// PrepareParams returns the parameters to write with the property.
	PrepareParams(p Property, ctx *WriteContext) Params

	WriteText(p Property, ctx *WriteContext) (string, error)
	WriteXML(p Property, ctx *WriteContext) ([]*XElement, error)
	WriteJSON(p Property, ctx *WriteContext) (*JValue, error)

	// ParseText parses an escaped text value. The data type is taken from the VALUE parameter.
	ParseText(value string, dt DataType, params Params, ctx *ParseContext) (Property, error)
	// ParseXML parses the children of a property element.
	ParseXML(el *XElement, params Params, ctx *ParseContext) (Property, error)
	// ParseJSON parses a jCard property value.
	ParseJSON(val *JValue, params Params, ctx *ParseContext) (Property, error)
	// ParseHTML parses an hCard property element.
	ParseHTML(el *HTMLElement, ctx *ParseContext) (Property, error)
}

// Recoverer is implemented by codecs that can build a substitute property
// from a value that failed to parse.
type Recoverer interface {
	Recover(value string, params Params, ctx *ParseContext) (Property, bool)
}

// codec is a generic [Codec] implementation driven by per-type functions.
// Unset functions fall back to the plain value conversions.
type codec[P Property] struct {
	name     string
	versions []Version
	newFn    func() P

	// defType returns the default data type in the version, the one that needs no VALUE parameter.
	defType func(v Version) DataType
	// valueType returns the data type of the current value. Defaults to defType.
	valueType func(p P, v Version) DataType
	// prefAware enables PREF and TYPE=pref translation between versions.
	prefAware bool
	prepare   func(p P, params *Params, ctx *WriteContext)

	// plain returns the unescaped value for the default write paths.
	plain func(p P, ctx *WriteContext) (string, error)
	// setPlain sets the unescaped value for the default parse paths.
	setPlain func(p P, s string, dt DataType, params *Params, ctx *ParseContext) error
	// rawText disables text escaping in the default text paths.
	rawText bool

	writeText func(p P, ctx *WriteContext) (string, error)
	writeXML  func(p P, ctx *WriteContext) ([]*XElement, error)
	writeJSON func(p P, ctx *WriteContext) (*JValue, error)
	parseText func(p P, value string, dt DataType, params *Params, ctx *ParseContext) error
	parseXML  func(p P, el *XElement, params *Params, ctx *ParseContext) error
	parseJSON func(p P, val *JValue, params *Params, ctx *ParseContext) error
	parseHTML func(p P, el *HTMLElement, params *Params, ctx *ParseContext) error
	recover   func(value string, params *Params, ctx *ParseContext) (P, bool)
}

func (c *codec[P]) Name() string { return c.name }

func (c *codec[P]) Versions() []Version { return c.versions }

func (c *codec[P]) New() Property { return c.newFn() }

func (c *codec[P]) cast(p Property) (P, error) {
	tp, ok := p.(P)
	if !ok {
		var zero P
		return zero, errtrace.Wrap(NewInvalidArgumentError("codec %s cannot handle %T", c.name, p))
	}
	return tp, nil
}

func (c *codec[P]) defaultType(v Version) DataType {
	if c.defType == nil {
		return DataTypeText
	}
	return c.defType(v)
}

func (c *codec[P]) DataType(p Property, v Version) DataType {
	tp, err := c.cast(p)
	if err != nil || c.valueType == nil {
		return c.defaultType(v)
	}
	return c.valueType(tp, v)
}

func (c *codec[P]) PrepareParams(p Property, ctx *WriteContext) Params {
	tp, err := c.cast(p)
	if err != nil {
		return nil
	}

	params := tp.Base().Params.Clone()
	params.Del(ParamValue)
	v := ctx.version()
	if ctx == nil || ctx.Format == FormatText {
		if dt := c.DataType(tp, v); needsValueParam(dt, c.defaultType(v), v) {
			params.Set(ParamValue, dt.Render(v))
		}
	}
	if c.prefAware {
		preparePref(tp, &params, ctx)
	}
	if c.prepare != nil {
		c.prepare(tp, &params, ctx)
	}
	if params.Len() == 0 {
		return nil
	}
	return params
}

func needsValueParam(dt, def DataType, v Version) bool {
	if dt == "" || dt == def {
		return false
	}
	if def == DataTypeDateAndOrTime && dt.IsDateLike() {
		return false
	}
	// 2.1 VALUE parameter knows only a few types.
	if v == V21 && dt.IsDateLike() {
		return false
	}
	return true
}

// preparePref translates between PREF and TYPE=pref.
//
// In 4.0 a legacy TYPE=pref becomes PREF=1. In 2.1 and 3.0 PREF is never written;
// TYPE=pref is put on the sibling with the lowest PREF, the first one on ties.
func preparePref(p Property, params *Params, ctx *WriteContext) {
	if ctx.version() == V40 {
		if params.HasType(TypePref) {
			params.RemoveType(TypePref)
			if _, ok := params.Pref(); !ok {
				params.SetPref(1)
			}
		}
		return
	}

	params.Del(ParamPref)
	if params.HasType(TypePref) {
		return
	}
	if mostPreferred(ctx.Card, p) == p {
		params.AddType(TypePref)
	}
}

// mostPreferred returns the sibling of p with the lowest PREF value or nil when no sibling has PREF.
func mostPreferred(c *Card, p Property) Property {
	siblings := c.Get(p.Name())
	if !slices.Contains(siblings, p) {
		siblings = append(siblings, p)
	}

	var (
		best     Property
		bestPref int
	)
	for _, s := range siblings {
		pref, ok := s.Base().Params.Pref()
		if !ok {
			continue
		}
		if best == nil || pref < bestPref {
			best, bestPref = s, pref
		}
	}
	return best
}

func (c *codec[P]) plainValue(p P, ctx *WriteContext) (string, error) {
	if c.plain == nil {
		return "", errtrace.Wrap(NewSkipPropertyError("no value"))
	}
	return errtrace.Wrap2(c.plain(p, ctx))
}

func (c *codec[P]) setPlainValue(p P, s string, dt DataType, params *Params, ctx *ParseContext) error {
	if c.setPlain == nil {
		return errtrace.Wrap(NewCannotParseError("no value"))
	}
	return errtrace.Wrap(c.setPlain(p, s, dt, params, ctx))
}

func (c *codec[P]) WriteText(p Property, ctx *WriteContext) (string, error) {
	tp, err := c.cast(p)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if c.writeText != nil {
		return errtrace.Wrap2(c.writeText(tp, ctx))
	}
	s, err := c.plainValue(tp, ctx)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if c.rawText {
		return s, nil
	}
	return EscapeText(s), nil
}

func (c *codec[P]) WriteXML(p Property, ctx *WriteContext) ([]*XElement, error) {
	tp, err := c.cast(p)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c.writeXML != nil {
		return errtrace.Wrap2(c.writeXML(tp, ctx))
	}
	s, err := c.plainValue(tp, ctx)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []*XElement{valueElement(c.DataType(tp, V40), s)}, nil
}

func (c *codec[P]) WriteJSON(p Property, ctx *WriteContext) (*JValue, error) {
	tp, err := c.cast(p)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c.writeJSON != nil {
		return errtrace.Wrap2(c.writeJSON(tp, ctx))
	}
	s, err := c.plainValue(tp, ctx)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return NewJValue(c.DataType(tp, V40), s), nil
}

func (c *codec[P]) ParseText(value string, dt DataType, params Params, ctx *ParseContext) (Property, error) {
	p := c.newFn()
	ps := params.Clone()
	var err error
	if c.parseText != nil {
		err = c.parseText(p, value, dt, &ps, ctx)
	} else {
		if !c.rawText {
			value = UnescapeText(value)
		}
		err = c.setPlainValue(p, value, dt, &ps, ctx)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c.finish(p, ps), nil
}

func (c *codec[P]) ParseXML(el *XElement, params Params, ctx *ParseContext) (Property, error) {
	p := c.newFn()
	ps := params.Clone()
	var err error
	if c.parseXML != nil {
		err = c.parseXML(p, el, &ps, ctx)
	} else {
		dt, s, ok := el.ValueOf()
		if !ok {
			return nil, errtrace.Wrap(NewCannotParseError("no value element"))
		}
		err = c.setPlainValue(p, s, dt, &ps, ctx)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c.finish(p, ps), nil
}

func (c *codec[P]) ParseJSON(val *JValue, params Params, ctx *ParseContext) (Property, error) {
	if val == nil {
		return nil, errtrace.Wrap(NewCannotParseError("no value"))
	}
	p := c.newFn()
	ps := params.Clone()
	var err error
	if c.parseJSON != nil {
		err = c.parseJSON(p, val, &ps, ctx)
	} else {
		err = c.setPlainValue(p, val.String(), val.DataType, &ps, ctx)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c.finish(p, ps), nil
}

func (c *codec[P]) ParseHTML(el *HTMLElement, ctx *ParseContext) (Property, error) {
	if el == nil {
		return nil, errtrace.Wrap(NewCannotParseError("no element"))
	}
	p := c.newFn()
	var (
		ps  Params
		err error
	)
	if c.parseHTML != nil {
		err = c.parseHTML(p, el, &ps, ctx)
	} else {
		err = c.setPlainValue(p, el.Value(), "", &ps, ctx)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c.finish(p, ps), nil
}

func (c *codec[P]) finish(p P, params Params) P {
	params.Del(ParamValue)
	if params.Len() == 0 {
		params = nil
	}
	p.Base().Params = params
	return p
}

// Recover implements [Recoverer] for codecs with a recovery function.
func (c *codec[P]) Recover(value string, params Params, ctx *ParseContext) (Property, bool) {
	if c.recover == nil {
		return nil, false
	}
	ps := params.Clone()
	p, ok := c.recover(value, &ps, ctx)
	if !ok {
		return nil, false
	}
	return c.finish(p, ps), true
}

func (c *codec[P]) String() string { return fmt.Sprintf("vcard.Codec(%s)", c.name) }

// htmlTypes copies "type" sub-element values into the TYPE parameter.
func htmlTypes(el *HTMLElement, params *Params) {
	if types := el.Types(); len(types) > 0 {
		params.AddType(types...)
	}
}
