package vcard

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// Geo is the GEO property holding a geographical position.
type Geo struct {
	PropertyBase
	Lat, Lon float64
}

// NewGeo creates a GEO property.
func NewGeo(lat, lon float64) *Geo { return &Geo{Lat: lat, Lon: lon} }

func (*Geo) Name() string { return PropGeo }

// Equal compares group, parameters and coordinates.
func (p *Geo) Equal(val any) bool {
	other, ok := val.(*Geo)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.Lat == other.Lat && p.Lon == other.Lon && p.equalBase(&other.PropertyBase)
}

// URI returns the position as a "geo" URI (RFC 5870).
func (p *Geo) URI() string { return "geo:" + fmtCoord(p.Lat) + "," + fmtCoord(p.Lon) }

func fmtCoord(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// parse accepts "geo:lat,lon[;params]", "lat;lon" and "lat,lon".
func (p *Geo) parse(s string) error {
	s = util.TrimSP(s)
	if len(s) > 4 && util.EqFold(s[:4], "geo:") {
		s, _, _ = strings.Cut(s[4:], ";")
	}
	sep := ";"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	lat, lon, ok := strings.Cut(s, sep)
	if !ok {
		return errtrace.Wrap(NewCannotParseError("invalid position %q", s))
	}
	if i := strings.IndexByte(lon, ','); i >= 0 {
		lon = lon[:i]
	}
	var err error
	if p.Lat, err = strconv.ParseFloat(util.TrimSP(lat), 64); err != nil {
		return errtrace.Wrap(NewCannotParseError("invalid latitude %q", lat))
	}
	if p.Lon, err = strconv.ParseFloat(util.TrimSP(lon), 64); err != nil {
		return errtrace.Wrap(NewCannotParseError("invalid longitude %q", lon))
	}
	return nil
}

func newGeoCodec() *codec[*Geo] {
	return &codec[*Geo]{
		name:     PropGeo,
		versions: allVersions,
		newFn:    func() *Geo { return &Geo{} },
		defType: func(v Version) DataType {
			if v == V40 {
				return DataTypeURI
			}
			return DataTypeFloat
		},
		rawText: true,
		plain: func(p *Geo, ctx *WriteContext) (string, error) {
			if ctx.Format == FormatText && ctx.version() != V40 {
				return fmtCoord(p.Lat) + ";" + fmtCoord(p.Lon), nil
			}
			return p.URI(), nil
		},
		setPlain: func(p *Geo, s string, _ DataType, _ *Params, _ *ParseContext) error {
			return errtrace.Wrap(p.parse(s))
		},
		writeXML: func(p *Geo, _ *WriteContext) ([]*XElement, error) {
			return []*XElement{valueElement(DataTypeURI, p.URI())}, nil
		},
		writeJSON: func(p *Geo, _ *WriteContext) (*JValue, error) {
			return NewJValue(DataTypeURI, p.URI()), nil
		},
		parseHTML: func(p *Geo, el *HTMLElement, _ *Params, _ *ParseContext) error {
			lat, lon := el.FirstByClass("latitude"), el.FirstByClass("longitude")
			if lat != nil && lon != nil {
				return errtrace.Wrap(p.parse(lat.Value() + ";" + lon.Value()))
			}
			return errtrace.Wrap(p.parse(el.Value()))
		},
	}
}

// Timezone is the TZ property: a UTC offset or a text such as a time zone name.
type Timezone struct {
	PropertyBase
	offset    UTCOffset
	hasOffset bool
	text      string
}

// NewTimezoneOffset creates a TZ property with a UTC offset.
func NewTimezoneOffset(o UTCOffset) *Timezone { return (&Timezone{}).SetOffset(o) }

// NewTimezoneText creates a TZ property with a text value.
func NewTimezoneText(s string) *Timezone { return (&Timezone{}).SetText(s) }

func (*Timezone) Name() string { return PropTZ }

// Offset returns the UTC offset.
func (p *Timezone) Offset() (UTCOffset, bool) { return p.offset, p.hasOffset }

// Text returns the text value.
func (p *Timezone) Text() string { return p.text }

// SetOffset sets the UTC offset and clears the text.
func (p *Timezone) SetOffset(o UTCOffset) *Timezone {
	p.offset, p.hasOffset, p.text = o, true, ""
	return p
}

// SetText sets the text and clears the offset.
func (p *Timezone) SetText(s string) *Timezone {
	p.offset, p.hasOffset, p.text = 0, false, s
	return p
}

// Equal compares group, parameters and the value.
func (p *Timezone) Equal(val any) bool {
	other, ok := val.(*Timezone)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.offset == other.offset && p.hasOffset == other.hasOffset && p.text == other.text &&
		p.equalBase(&other.PropertyBase)
}

func (p *Timezone) parse(s string, dt DataType, v Version) error {
	s = util.TrimSP(s)
	if dt == DataTypeText {
		p.SetText(s)
		return nil
	}
	if o, err := ParseUTCOffset(s); err == nil {
		p.SetOffset(o)
		return nil
	}
	if v == V21 || dt == DataTypeUTCOffset {
		return errtrace.Wrap(NewCannotParseError("invalid UTC offset %q", s))
	}
	p.SetText(s)
	return nil
}

func newTimezoneCodec() *codec[*Timezone] {
	return &codec[*Timezone]{
		name:     PropTZ,
		versions: allVersions,
		newFn:    func() *Timezone { return &Timezone{} },
		defType: func(v Version) DataType {
			if v == V40 {
				return DataTypeText
			}
			return DataTypeUTCOffset
		},
		valueType: func(p *Timezone, _ Version) DataType {
			if p.hasOffset {
				return DataTypeUTCOffset
			}
			return DataTypeText
		},
		writeText: func(p *Timezone, ctx *WriteContext) (string, error) {
			v := ctx.version()
			switch {
			case p.hasOffset:
				return p.offset.Format(v != V40), nil
			case p.text == "":
				return "", errtrace.Wrap(NewSkipPropertyError("empty time zone"))
			case v == V21:
				return "", errtrace.Wrap(NewSkipPropertyError("vCard 2.1 allows only UTC offsets"))
			default:
				return EscapeText(p.text), nil
			}
		},
		parseText: func(p *Timezone, value string, dt DataType, _ *Params, ctx *ParseContext) error {
			return errtrace.Wrap(p.parse(UnescapeText(value), dt, ctx.version()))
		},
		plain: func(p *Timezone, ctx *WriteContext) (string, error) {
			switch {
			case p.hasOffset:
				return p.offset.Format(ctx.Format == FormatJSON), nil
			case p.text == "":
				return "", errtrace.Wrap(NewSkipPropertyError("empty time zone"))
			default:
				return p.text, nil
			}
		},
		setPlain: func(p *Timezone, s string, dt DataType, _ *Params, _ *ParseContext) error {
			return errtrace.Wrap(p.parse(s, dt, V40))
		},
	}
}
