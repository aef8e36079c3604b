package vcard

import (
	"strings"

	"github.com/ghettovoice/vcard/internal/util"
)

// EscapeText escapes backslash, comma, semicolon and newline characters of a text value.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "\\,;\r\n") {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', ',', ';':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			sb.WriteString(`\n`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// UnescapeText reverses [EscapeText].
// Unknown escape sequences are kept as is.
func UnescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch n := s[i]; n {
		case 'n', 'N':
			sb.WriteByte('\n')
		case '\\', ',', ';':
			sb.WriteByte(n)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(n)
		}
	}
	return sb.String()
}

// SplitEscaped splits an escaped value on every unescaped sep character.
// Components are returned still escaped.
func SplitEscaped(s string, sep byte) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// SplitList splits an escaped list value on sep and unescapes the components.
func SplitList(s string, sep byte) []string {
	parts := SplitEscaped(s, sep)
	for i := range parts {
		parts[i] = UnescapeText(parts[i])
	}
	return parts
}

// JoinList escapes every value and joins them with sep.
func JoinList(vals []string, sep byte) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, v := range vals {
		if i > 0 {
			sb.WriteByte(sep)
		}
		sb.WriteString(EscapeText(v))
	}
	return sb.String()
}

// SplitStructured splits a structured value into semicolon separated components,
// each being a comma separated list of unescaped values.
func SplitStructured(s string) [][]string {
	comps := SplitEscaped(s, ';')
	res := make([][]string, len(comps))
	for i, c := range comps {
		if c == "" {
			continue
		}
		res[i] = SplitList(c, ',')
	}
	return res
}

// JoinStructured reverses [SplitStructured].
func JoinStructured(comps [][]string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, c := range comps {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(JoinList(c, ','))
	}
	return sb.String()
}

// StructuredField returns the i-th component of a split structured value joined by commas.
func StructuredField(comps [][]string, i int) string {
	if i >= len(comps) {
		return ""
	}
	return strings.Join(comps[i], ",")
}

// structuredFields converts single string fields into structured components.
// Commas inside fields are escaped instead of being treated as list separators.
func structuredFields(fields ...string) [][]string {
	comps := make([][]string, len(fields))
	for i, f := range fields {
		if f != "" {
			comps[i] = []string{f}
		}
	}
	return comps
}

func joinFields(fields ...string) string { return JoinStructured(structuredFields(fields...)) }

// splitFields is the reverse of joinFields: components are unescaped as a whole.
func splitFields(s string, n int) []string {
	parts := SplitEscaped(s, ';')
	res := make([]string, n)
	for i := 0; i < n && i < len(parts); i++ {
		res[i] = UnescapeText(parts[i])
	}
	return res
}
