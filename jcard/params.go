package jcard

import (
	"bytes"
	"encoding/json"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/util"
)

const paramGroup = "group"

// jsonParams marshals parameters as an object keeping the order of names.
// A parameter with a single value is a string, with several values an array.
type jsonParams struct {
	group  string
	params vcard.Params
}

func (p jsonParams) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	put := func(name string, val any) error {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		k, err := json.Marshal(name)
		if err != nil {
			return errtrace.Wrap(err)
		}
		v, err := json.Marshal(val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if p.group != "" {
		if err := put(paramGroup, p.group); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	for _, prm := range p.params {
		var val any = prm.Values
		if len(prm.Values) == 1 {
			val = prm.Values[0]
		}
		if err := put(util.LCase(prm.Name), val); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeParams reads a parameters object in document order.
// The group parameter is returned apart.
func decodeParams(raw json.RawMessage) (vcard.Params, string, error) {
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	tok, err := d.Token()
	if err != nil {
		return nil, "", errtrace.Wrap(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, "", errtrace.Wrap(errorutil.Errorf("parameters are not an object"))
	}

	var (
		params vcard.Params
		group  string
	)
	for d.More() {
		tok, err := d.Token()
		if err != nil {
			return nil, "", errtrace.Wrap(err)
		}
		name, _ := tok.(string)
		var val any
		if err := d.Decode(&val); err != nil {
			return nil, "", errtrace.Wrap(err)
		}
		items := []any{val}
		if arr, ok := val.([]any); ok {
			items = arr
		}
		vals := vcard.NewJValue("", items...).Strings()
		if len(vals) == 0 {
			continue
		}
		if util.EqFold(name, paramGroup) {
			group = vals[0]
			continue
		}
		params.Append(util.UCase(name), vals...)
	}
	return params, group, nil
}
