package vcard

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ghettovoice/vcard/internal/util"
)

// Well-known parameter names.
const (
	ParamValue     = "VALUE"
	ParamType      = "TYPE"
	ParamPref      = "PREF"
	ParamMediaType = "MEDIATYPE"
	ParamCalscale  = "CALSCALE"
	ParamAltID     = "ALTID"
	ParamEncoding  = "ENCODING"
	ParamCharset   = "CHARSET"
	ParamLanguage  = "LANGUAGE"
	ParamLabel     = "LABEL"
	ParamSortAs    = "SORT-AS"
	ParamPID       = "PID"
	ParamGeo       = "GEO"
	ParamTZ        = "TZ"
	ParamIndex     = "INDEX"
	ParamLevel     = "LEVEL"
	ParamGroup     = "GROUP"
)

// Values of the ENCODING parameter.
const (
	EncodingBase64          = "BASE64"
	EncodingB               = "b"
	EncodingQuotedPrintable = "QUOTED-PRINTABLE"
	Encoding8Bit            = "8BIT"
	Encoding7Bit            = "7BIT"
)

// TypePref is the legacy TYPE value marking a preferred property instance.
const TypePref = "pref"

// Param is a single named parameter with its values.
type Param struct {
	Name   string
	Values []string
}

// Params is an ordered, case-insensitive multimap of property parameters.
//
// Name lookups ignore case, while the spelling used on first insertion is kept.
// The order of names is the insertion order. Values of one name form a set:
// appending a value that is already present (ignoring case) is a no-op.
type Params []Param

func (ps Params) index(name string) int {
	for i := range ps {
		if util.EqFold(ps[i].Name, name) {
			return i
		}
	}
	return -1
}

// Get returns values associated with the given name.
// If there are no values associated with the name, Get returns nil.
func (ps Params) Get(name string) []string {
	if i := ps.index(name); i >= 0 {
		return ps[i].Values
	}
	return nil
}

// First returns the first value of the given name.
func (ps Params) First(name string) (string, bool) {
	vals := ps.Get(name)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Has checks whether a given name is present.
func (ps Params) Has(name string) bool { return ps.index(name) >= 0 }

// Len returns the number of parameter names.
func (ps Params) Len() int { return len(ps) }

// Names returns parameter names in insertion order.
func (ps Params) Names() []string {
	names := make([]string, len(ps))
	for i := range ps {
		names[i] = ps[i].Name
	}
	return names
}

// Set replaces values of the name. Calling Set without values is equivalent to [Params.Del].
func (ps *Params) Set(name string, vals ...string) *Params {
	if len(vals) == 0 {
		return ps.Del(name)
	}
	if i := ps.index(name); i >= 0 {
		(*ps)[i].Values = dedupFold(nil, vals)
		return ps
	}
	*ps = append(*ps, Param{Name: name, Values: dedupFold(nil, vals)})
	return ps
}

// Append adds values to the name skipping those already present.
func (ps *Params) Append(name string, vals ...string) *Params {
	if i := ps.index(name); i >= 0 {
		(*ps)[i].Values = dedupFold((*ps)[i].Values, vals)
		return ps
	}
	*ps = append(*ps, Param{Name: name, Values: dedupFold(nil, vals)})
	return ps
}

// Del deletes the name with all its values.
func (ps *Params) Del(name string) *Params {
	if i := ps.index(name); i >= 0 {
		*ps = slices.Delete(*ps, i, i+1)
	}
	if len(*ps) == 0 {
		*ps = nil
	}
	return ps
}

// Remove deletes a single value of the name, ignoring case.
// The name is deleted when no values remain.
func (ps *Params) Remove(name, val string) *Params {
	i := ps.index(name)
	if i < 0 {
		return ps
	}
	vals := slices.DeleteFunc(slices.Clone((*ps)[i].Values), func(v string) bool { return util.EqFold(v, val) })
	if len(vals) == 0 {
		return ps.Del(name)
	}
	(*ps)[i].Values = vals
	return ps
}

// Clone returns a deep copy of the parameters.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	ps2 := make(Params, len(ps))
	for i := range ps {
		ps2[i] = Param{Name: ps[i].Name, Values: slices.Clone(ps[i].Values)}
	}
	return ps2
}

// Equal compares parameters ignoring the order of names, the case of names
// and the case and order of values.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return len(ps) == 0
		}
		other = *v
	default:
		return false
	}

	if len(ps) != len(other) {
		return false
	}
	for _, p := range ps {
		ovals := other.Get(p.Name)
		if ovals == nil || len(ovals) != len(p.Values) {
			return false
		}
		for _, v := range p.Values {
			if !util.ContainsFold(ovals, v) {
				return false
			}
		}
	}
	return true
}

func dedupFold(dst, vals []string) []string {
	for _, v := range vals {
		if !util.ContainsFold(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Value returns the data type given in the VALUE parameter.
func (ps Params) Value() DataType {
	v, _ := ps.First(ParamValue)
	return ParseDataType(v)
}

// SetValue sets the VALUE parameter. An empty data type removes it.
func (ps *Params) SetValue(dt DataType) *Params {
	if dt == "" {
		return ps.Del(ParamValue)
	}
	return ps.Set(ParamValue, string(dt))
}

// Types returns values of the TYPE parameter.
func (ps Params) Types() []string { return ps.Get(ParamType) }

// HasType checks whether the TYPE parameter contains t, ignoring case.
func (ps Params) HasType(t string) bool { return util.ContainsFold(ps.Types(), t) }

// AddType appends values to the TYPE parameter.
func (ps *Params) AddType(types ...string) *Params { return ps.Append(ParamType, types...) }

// RemoveType deletes a value of the TYPE parameter.
func (ps *Params) RemoveType(t string) *Params { return ps.Remove(ParamType, t) }

// Pref returns the value of the PREF parameter.
// The second result is false when the parameter is absent or malformed.
func (ps Params) Pref() (int, bool) {
	v, ok := ps.First(ParamPref)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(util.TrimSP(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetPref sets the PREF parameter. A non-positive value removes it.
func (ps *Params) SetPref(n int) *Params {
	if n <= 0 {
		return ps.Del(ParamPref)
	}
	return ps.Set(ParamPref, strconv.Itoa(n))
}

// MediaType returns the MEDIATYPE parameter.
func (ps Params) MediaType() string { return ps.single(ParamMediaType) }

// SetMediaType sets the MEDIATYPE parameter.
func (ps *Params) SetMediaType(mt string) *Params { return ps.setSingle(ParamMediaType, mt) }

// Calscale returns the CALSCALE parameter.
func (ps Params) Calscale() string { return ps.single(ParamCalscale) }

// SetCalscale sets the CALSCALE parameter.
func (ps *Params) SetCalscale(cs string) *Params { return ps.setSingle(ParamCalscale, cs) }

// AltID returns the ALTID parameter.
func (ps Params) AltID() string { return ps.single(ParamAltID) }

// SetAltID sets the ALTID parameter.
func (ps *Params) SetAltID(id string) *Params { return ps.setSingle(ParamAltID, id) }

// Encoding returns the ENCODING parameter.
func (ps Params) Encoding() string { return ps.single(ParamEncoding) }

// SetEncoding sets the ENCODING parameter.
func (ps *Params) SetEncoding(enc string) *Params { return ps.setSingle(ParamEncoding, enc) }

// IsBase64 reports whether the ENCODING parameter denotes base64 content.
func (ps Params) IsBase64() bool {
	enc := ps.Encoding()
	return util.EqFold(enc, EncodingBase64) || util.EqFold(enc, EncodingB)
}

// IsQuotedPrintable reports whether the ENCODING parameter is QUOTED-PRINTABLE.
func (ps Params) IsQuotedPrintable() bool {
	return util.EqFold(ps.Encoding(), EncodingQuotedPrintable)
}

// Charset returns the CHARSET parameter.
func (ps Params) Charset() string { return ps.single(ParamCharset) }

// SetCharset sets the CHARSET parameter.
func (ps *Params) SetCharset(cs string) *Params { return ps.setSingle(ParamCharset, cs) }

// Language returns the LANGUAGE parameter.
func (ps Params) Language() string { return ps.single(ParamLanguage) }

// SetLanguage sets the LANGUAGE parameter.
func (ps *Params) SetLanguage(lang string) *Params { return ps.setSingle(ParamLanguage, lang) }

// Label returns the LABEL parameter.
func (ps Params) Label() string { return ps.single(ParamLabel) }

// SetLabel sets the LABEL parameter.
func (ps *Params) SetLabel(label string) *Params { return ps.setSingle(ParamLabel, label) }

// SortAs returns values of the SORT-AS parameter.
func (ps Params) SortAs() []string { return ps.Get(ParamSortAs) }

// SetSortAs sets the SORT-AS parameter.
func (ps *Params) SetSortAs(vals ...string) *Params { return ps.Set(ParamSortAs, vals...) }

// PIDs returns values of the PID parameter.
func (ps Params) PIDs() []string { return ps.Get(ParamPID) }

// AddPID appends values to the PID parameter.
func (ps *Params) AddPID(pids ...string) *Params { return ps.Append(ParamPID, pids...) }

// Geo returns the GEO parameter.
func (ps Params) Geo() string { return ps.single(ParamGeo) }

// SetGeo sets the GEO parameter.
func (ps *Params) SetGeo(uri string) *Params { return ps.setSingle(ParamGeo, uri) }

// TZ returns the TZ parameter.
func (ps Params) TZ() string { return ps.single(ParamTZ) }

// SetTZ sets the TZ parameter.
func (ps *Params) SetTZ(tz string) *Params { return ps.setSingle(ParamTZ, tz) }

func (ps Params) single(name string) string {
	v, _ := ps.First(name)
	return v
}

func (ps *Params) setSingle(name, val string) *Params {
	if val == "" {
		return ps.Del(name)
	}
	return ps.Set(name, val)
}

// String returns a debug representation of the parameters.
func (ps Params) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, p := range ps {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(p.Name)
		if len(p.Values) > 0 {
			sb.WriteByte('=')
			sb.WriteString(strings.Join(p.Values, ","))
		}
	}
	return sb.String()
}
