package text

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/util"
)

// renderParams writes parameters in the syntax of the version, each preceded by ';'.
//
// vCard 2.1 TYPE values are written bare and other values are repeated per name.
// vCard 3.0 and 4.0 join values with ',' and quote values with special characters.
// vCard 4.0 values are caret encoded.
func renderParams(sb *strings.Builder, params vcard.Params, v vcard.Version) {
	for _, p := range params {
		name := util.UCase(p.Name)
		if len(p.Values) == 0 {
			sb.WriteByte(';')
			sb.WriteString(name)
			continue
		}
		if v == vcard.V21 {
			for _, val := range p.Values {
				sb.WriteByte(';')
				lv, _ := legacyParamValue(val)
				if name == vcard.ParamType {
					sb.WriteString(util.UCase(lv))
					continue
				}
				sb.WriteString(name)
				sb.WriteByte('=')
				sb.WriteString(lv)
			}
			continue
		}

		sb.WriteByte(';')
		sb.WriteString(name)
		sb.WriteByte('=')
		for i, val := range p.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeParamValue(sb, val, v)
		}
	}
}

var legacyValueReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", `"`, "")

// legacyParamValue strips line breaks and quotes from a vCard 2.1 parameter value
// and escapes semicolons. It reports false when the value still holds characters
// that would end the parameter list or split the value, such as ':' and ','.
func legacyParamValue(val string) (string, bool) {
	val = legacyValueReplacer.Replace(val)
	ok := grammar.IsSafeParamValue(strings.ReplaceAll(val, ";", ""))
	return strings.ReplaceAll(val, ";", `\;`), ok
}

// dropLegacyUnsafe removes the parameter values vCard 2.1 cannot carry.
// It returns the kept parameters and the removed values.
func dropLegacyUnsafe(params vcard.Params) (kept, dropped vcard.Params) {
	kept = make(vcard.Params, 0, len(params))
	for _, p := range params {
		vals := make([]string, 0, len(p.Values))
		var bad []string
		for _, v := range p.Values {
			if _, ok := legacyParamValue(v); ok {
				vals = append(vals, v)
			} else {
				bad = append(bad, v)
			}
		}
		if len(bad) > 0 {
			dropped = append(dropped, vcard.Param{Name: p.Name, Values: bad})
		}
		if len(vals) > 0 || len(p.Values) == 0 {
			kept = append(kept, vcard.Param{Name: p.Name, Values: vals})
		}
	}
	return kept, dropped
}

func writeParamValue(sb *strings.Builder, val string, v vcard.Version) {
	if v == vcard.V40 {
		val = caretEncode(val)
	} else {
		val = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", `"`, "'").Replace(val)
	}
	if !grammar.IsSafeParamValue(val) {
		sb.WriteByte('"')
		sb.WriteString(val)
		sb.WriteByte('"')
		return
	}
	sb.WriteString(val)
}

var caretEncoder = strings.NewReplacer("^", "^^", "\r\n", "^n", "\n", "^n", "\r", "^n", `"`, "^'")

// caretEncode applies RFC 6868 parameter value encoding.
func caretEncode(s string) string { return caretEncoder.Replace(s) }

// caretDecode reverses RFC 6868 parameter value encoding.
// Unknown sequences are kept as is.
func caretDecode(s string) string {
	if !strings.Contains(s, "^") {
		return s
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		if s[i] != '^' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '^':
			sb.WriteByte('^')
		case 'n', 'N':
			sb.WriteByte('\n')
		case '\'':
			sb.WriteByte('"')
		default:
			sb.WriteByte('^')
			sb.WriteByte(s[i+1])
		}
		i++
	}
	return sb.String()
}

// parseParams parses the parameter part of a content line, the text after the
// property name without the leading ';'.
func parseParams(s string, v vcard.Version) vcard.Params {
	var params vcard.Params
	for _, raw := range splitUnquoted(s, ';', v == vcard.V21) {
		raw = util.TrimSP(raw)
		if raw == "" {
			continue
		}
		name, vals, ok := strings.Cut(raw, "=")
		if !ok {
			params.Append(namelessParam(raw), raw)
			continue
		}
		name = util.TrimSP(name)
		values := make([]string, 0, 1)
		for _, val := range splitUnquoted(vals, ',', false) {
			val = util.TrimSP(val)
			if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
				val = val[1 : len(val)-1]
			}
			if v == vcard.V40 {
				val = caretDecode(val)
			}
			values = append(values, val)
		}
		if len(values) == 0 {
			values = append(values, "")
		}
		params.Append(name, values...)
	}
	return params
}

// namelessParam guesses the name of a vCard 2.1 parameter written without one.
func namelessParam(val string) string {
	switch util.UCase(val) {
	case vcard.EncodingBase64, "B", vcard.EncodingQuotedPrintable, vcard.Encoding8Bit, vcard.Encoding7Bit:
		return vcard.ParamEncoding
	case "URL", "URI", "CONTENT-ID", "CID", "INLINE":
		return vcard.ParamValue
	default:
		return vcard.ParamType
	}
}

// splitUnquoted splits s on sep outside of double quotes.
// With backslash set, a backslash escapes sep.
func splitUnquoted(s string, sep byte, backslash bool) []string {
	var (
		parts  []string
		quoted bool
		start  int
	)
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			quoted = !quoted
		case backslash && c == '\\' && i+1 < len(s) && s[i+1] == sep:
			sb.WriteString(s[start:i])
			start = i + 1
			i++
			continue
		case c == sep && !quoted:
			sb.WriteString(s[start:i])
			parts = append(parts, sb.String())
			sb.Reset()
			start = i + 1
		}
	}
	sb.WriteString(s[start:])
	return append(parts, sb.String())
}

// checkNames validates the name and the group of a property against RFC 6350 Section 3.3.
func checkNames(p vcard.Property) error {
	if name := p.Name(); !grammar.IsName(name) {
		return errtrace.Wrap(vcard.NewSkipPropertyError("invalid name %q", util.Ellipsis(name, 64)))
	}
	if g := p.Base().Group; g != "" && !grammar.IsGroup(g) {
		return errtrace.Wrap(vcard.NewSkipPropertyError("invalid group %q", util.Ellipsis(g, 64)))
	}
	return nil
}

// contentLine is a parsed logical line.
type contentLine struct {
	group  string
	name   string
	params vcard.Params
	value  string
}

// parseContentLine splits a logical line into its parts.
// It reports false when the line has no value separator,
// or its name or group do not match RFC 6350 Section 3.3.
func parseContentLine(line string, v vcard.Version) (contentLine, bool) {
	var (
		cl     contentLine
		quoted bool
		colon  = -1
	)
	for i := 0; i < len(line); i++ {
		if line[i] == '"' && v != vcard.V21 {
			quoted = !quoted
		} else if line[i] == ':' && !quoted {
			colon = i
			break
		}
	}
	if colon < 0 {
		return cl, false
	}

	head := line[:colon]
	cl.value = line[colon+1:]

	nameEnd := strings.IndexByte(head, ';')
	if nameEnd < 0 {
		nameEnd = len(head)
	} else {
		cl.params = parseParams(head[nameEnd+1:], v)
	}
	name := util.TrimSP(head[:nameEnd])
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		cl.group, name = name[:dot], name[dot+1:]
	}
	if !grammar.IsName(name) || (cl.group != "" && !grammar.IsGroup(cl.group)) {
		return cl, false
	}
	cl.name = util.UCase(name)
	return cl, true
}
