package vcard

import (
	"encoding/json"
	"strconv"
	"strings"
)

// JValue is the value part of a jCard property.
//
// Each element of Values is one of string, [json.Number], float64, bool, nil
// or []any for structured values.
type JValue struct {
	DataType DataType
	Values   []any
}

// NewJValue creates a value of the data type.
func NewJValue(dt DataType, vals ...any) *JValue { return &JValue{DataType: dt, Values: vals} }

// NewJStructured creates a single structured value from components.
// Components with more than one value become nested arrays.
func NewJStructured(dt DataType, comps [][]string) *JValue {
	arr := make([]any, len(comps))
	for i, c := range comps {
		switch len(c) {
		case 0:
			arr[i] = ""
		case 1:
			arr[i] = c[0]
		default:
			sub := make([]any, len(c))
			for j := range c {
				sub[j] = c[j]
			}
			arr[i] = sub
		}
	}
	return &JValue{DataType: dt, Values: []any{arr}}
}

// String returns the first value as a string.
func (v *JValue) String() string {
	if v == nil || len(v.Values) == 0 {
		return ""
	}
	return jsonString(v.Values[0])
}

// Strings returns every value as a string.
func (v *JValue) Strings() []string {
	if v == nil {
		return nil
	}
	res := make([]string, len(v.Values))
	for i, x := range v.Values {
		res[i] = jsonString(x)
	}
	return res
}

// Structured returns components of a structured value.
// A value being a single array yields its elements as components,
// otherwise each value is a component.
func (v *JValue) Structured() [][]string {
	if v == nil || len(v.Values) == 0 {
		return nil
	}
	items := v.Values
	if arr, ok := v.Values[0].([]any); ok && len(v.Values) == 1 {
		items = arr
	}
	res := make([][]string, len(items))
	for i, x := range items {
		switch t := x.(type) {
		case []any:
			for _, y := range t {
				res[i] = append(res[i], jsonString(y))
			}
		default:
			if s := jsonString(t); s != "" {
				res[i] = []string{s}
			}
		}
	}
	return res
}

func jsonString(x any) string {
	switch t := x.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, len(t))
		for i := range t {
			parts[i] = jsonString(t[i])
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
