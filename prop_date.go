package vcard

import (
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// DateOrTime is a date valued property: BDAY, ANNIVERSARY or DEATHDATE.
//
// It holds exactly one of a full date (optionally with time), a partial date or a text.
// Partial dates and texts are only representable in vCard 4.0.
type DateOrTime struct {
	PropertyBase
	name    string
	date    time.Time
	hasTime bool
	partial PartialDate
	text    string
}

// NewDateOrTime creates an empty date property with the name.
func NewDateOrTime(name string) *DateOrTime { return &DateOrTime{name: util.UCase(name)} }

// NewBirthday creates a BDAY property with a full date.
func NewBirthday(date time.Time, hasTime bool) *DateOrTime {
	return NewDateOrTime(PropBday).SetDate(date, hasTime)
}

func (p *DateOrTime) Name() string { return p.name }

// Date returns the full date value.
func (p *DateOrTime) Date() (t time.Time, hasTime, ok bool) {
	return p.date, p.hasTime, !p.date.IsZero()
}

// Partial returns the partial date value.
func (p *DateOrTime) Partial() (PartialDate, bool) { return p.partial, !p.partial.IsZero() }

// Text returns the text value.
func (p *DateOrTime) Text() (string, bool) { return p.text, p.text != "" }

// SetDate sets a full date value. hasTime tells whether the time of day is significant.
func (p *DateOrTime) SetDate(t time.Time, hasTime bool) *DateOrTime {
	p.clear()
	p.date, p.hasTime = t, hasTime
	return p
}

// SetPartial sets a partial date value.
func (p *DateOrTime) SetPartial(d PartialDate) *DateOrTime {
	p.clear()
	p.partial = d
	return p
}

// SetText sets a text value.
func (p *DateOrTime) SetText(s string) *DateOrTime {
	p.clear()
	p.text = s
	return p
}

func (p *DateOrTime) clear() {
	p.date, p.hasTime, p.partial, p.text = time.Time{}, false, PartialDate{}, ""
}

// IsEmpty reports whether no value is set.
func (p *DateOrTime) IsEmpty() bool {
	return p.date.IsZero() && p.partial.IsZero() && p.text == ""
}

// Equal compares name, group, parameters and the value.
func (p *DateOrTime) Equal(val any) bool {
	other, ok := val.(*DateOrTime)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) &&
		p.date.Equal(other.date) && p.hasTime == other.hasTime &&
		p.partial.Equal(other.partial) && p.text == other.text &&
		p.equalBase(&other.PropertyBase)
}

func (p *DateOrTime) valueType() DataType {
	switch {
	case p.text != "":
		return DataTypeText
	case !p.partial.IsZero():
		switch {
		case p.partial.HasDate() && p.partial.HasTime():
			return DataTypeDateTime
		case p.partial.HasTime():
			return DataTypeTime
		default:
			return DataTypeDate
		}
	case p.hasTime:
		return DataTypeDateTime
	default:
		return DataTypeDate
	}
}

// format renders the date value, failing with SkipProperty for values the version cannot hold.
func (p *DateOrTime) format(v Version, extended bool) (string, error) {
	switch {
	case p.IsEmpty():
		return "", errtrace.Wrap(NewSkipPropertyError("empty date"))
	case p.text != "":
		if v != V40 {
			return "", errtrace.Wrap(NewSkipPropertyError("text dates require vCard 4.0"))
		}
		return p.text, nil
	case !p.partial.IsZero():
		if v != V40 {
			return "", errtrace.Wrap(NewSkipPropertyError("partial dates require vCard 4.0"))
		}
		return p.partial.Format(extended), nil
	default:
		return FormatDateTime(p.date, p.hasTime, extended), nil
	}
}

// parse sets the value trying a full date, then a partial date and then a text, in this order.
// Only vCard 4.0 allows the last two.
func (p *DateOrTime) parse(s string, dt DataType, ctx *ParseContext) error {
	v := ctx.version()
	s = util.TrimSP(s)
	if dt == DataTypeText && v == V40 {
		p.SetText(s)
		return nil
	}
	if t, hasTime, err := ParseDateTime(s); err == nil {
		p.SetDate(t, hasTime)
		return nil
	}
	if v != V40 {
		if _, err := ParsePartialDate(s); err == nil {
			return errtrace.Wrap(NewSkipPropertyError("partial date %q requires vCard 4.0", s))
		}
		return errtrace.Wrap(NewCannotParseError("invalid date %q", s))
	}
	if pd, err := ParsePartialDate(s); err == nil {
		p.SetPartial(pd)
		return nil
	}
	ctx.Warn(p.name, "cannot parse date %q, keeping it as text", s)
	p.SetText(s)
	return nil
}

var dateXMLTypes = []DataType{DataTypeDate, DataTypeDateTime, DataTypeTime, DataTypeDateAndOrTime, DataTypeText}

func newDateOrTimeCodec(name string, versions []Version) *codec[*DateOrTime] {
	return &codec[*DateOrTime]{
		name:     name,
		versions: versions,
		newFn:    func() *DateOrTime { return NewDateOrTime(name) },
		defType: func(v Version) DataType {
			if v == V40 {
				return DataTypeDateAndOrTime
			}
			return DataTypeDate
		},
		valueType: func(p *DateOrTime, _ Version) DataType { return p.valueType() },
		prepare: func(_ *DateOrTime, params *Params, ctx *WriteContext) {
			if ctx.version() != V40 {
				params.Del(ParamCalscale)
			}
		},
		writeText: func(p *DateOrTime, ctx *WriteContext) (string, error) {
			s, err := p.format(ctx.version(), ctx.Compat == CompatOutlook)
			if err != nil {
				return "", errtrace.Wrap(err)
			}
			if p.text != "" {
				return EscapeText(s), nil
			}
			return s, nil
		},
		parseText: func(p *DateOrTime, value string, dt DataType, _ *Params, ctx *ParseContext) error {
			if dt == DataTypeText {
				value = UnescapeText(value)
			}
			return errtrace.Wrap(p.parse(value, dt, ctx))
		},
		writeXML: func(p *DateOrTime, _ *WriteContext) ([]*XElement, error) {
			s, err := p.format(V40, false)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			return []*XElement{valueElement(p.valueType(), s)}, nil
		},
		parseXML: func(p *DateOrTime, el *XElement, _ *Params, ctx *ParseContext) error {
			dt, s, ok := el.ValueOf(dateXMLTypes...)
			if !ok {
				return errtrace.Wrap(NewCannotParseError("no date element"))
			}
			return errtrace.Wrap(p.parse(s, dt, ctx))
		},
		writeJSON: func(p *DateOrTime, _ *WriteContext) (*JValue, error) {
			s, err := p.format(V40, true)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			return NewJValue(p.valueType(), s), nil
		},
		parseJSON: func(p *DateOrTime, val *JValue, _ *Params, ctx *ParseContext) error {
			return errtrace.Wrap(p.parse(val.String(), val.DataType, ctx))
		},
		parseHTML: func(p *DateOrTime, el *HTMLElement, _ *Params, ctx *ParseContext) error {
			return errtrace.Wrap(p.parse(el.Value(), "", ctx))
		},
	}
}

// Timestamp is the REV property.
type Timestamp struct {
	PropertyBase
	name  string
	Value time.Time
}

// NewTimestamp creates a timestamp property with the name.
func NewTimestamp(name string, t time.Time) *Timestamp {
	return &Timestamp{name: util.UCase(name), Value: t}
}

// NewRevision creates a REV property.
func NewRevision(t time.Time) *Timestamp { return NewTimestamp(PropRev, t) }

func (p *Timestamp) Name() string { return p.name }

// Equal compares name, group, parameters and the instant.
func (p *Timestamp) Equal(val any) bool {
	other, ok := val.(*Timestamp)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && p.Value.Equal(other.Value) && p.equalBase(&other.PropertyBase)
}

func newTimestampCodec(name string, versions []Version) *codec[*Timestamp] {
	return &codec[*Timestamp]{
		name:     name,
		versions: versions,
		newFn:    func() *Timestamp { return NewTimestamp(name, time.Time{}) },
		defType: func(v Version) DataType {
			if v == V40 {
				return DataTypeTimestamp
			}
			return DataTypeDateTime
		},
		rawText: true,
		plain: func(p *Timestamp, ctx *WriteContext) (string, error) {
			if p.Value.IsZero() {
				return "", errtrace.Wrap(NewSkipPropertyError("empty timestamp"))
			}
			return FormatTimestamp(p.Value, ctx.Format == FormatJSON), nil
		},
		setPlain: func(p *Timestamp, s string, _ DataType, _ *Params, _ *ParseContext) error {
			t, _, err := ParseDateTime(util.TrimSP(s))
			if err != nil {
				return errtrace.Wrap(NewCannotParseError(err))
			}
			p.Value = t
			return nil
		},
	}
}
