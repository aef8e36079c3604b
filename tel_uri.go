package vcard

import (
	"fmt"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/util"
)

// TelURI implements "tel" URI for Telephone Numbers (RFC 3966).
type TelURI struct {
	// Telephone number. Required.
	Number string
	// URI parameters such as "ext", "isub" and "phone-context".
	Params Params
}

// ParseTelURI parses a "tel" URI.
func ParseTelURI(s string) (*TelURI, error) {
	node, err := grammar.ParseTelURI(s)
	if err != nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid tel URI %q: %s", s, errorutil.Reason(err, ErrInvalidArgument)))
	}

	u := &TelURI{}
	if n, ok := node.GetNode("global-number"); ok {
		u.Number = grammar.MustGetNode(n, "global-number-digits").String()
	} else {
		u.Number = grammar.MustGetNode(node, "local-number-digits").String()
	}

	ns := node.GetNodes("par")
	if n, ok := node.GetNode("context"); ok {
		ns = append(abnf.Nodes{n}, ns...)
	}
	for _, n := range ns {
		name, val := telURIParam(n)
		// RFC 3966 Section 3: each parameter name must not appear more than once.
		if u.Params.Has(name) {
			return nil, errtrace.Wrap(NewInvalidArgumentError("invalid tel URI %q: duplicate %q parameter", s, name))
		}
		u.Params.Append(name, val)
	}
	if !u.IsValid() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid tel URI: %q", s))
	}
	return u, nil
}

func telURIParam(n *abnf.Node) (name, val string) {
	if n.Key == "context" {
		return "phone-context", grammar.Unescape(n.Children[1].String())
	}

	sn := n.Children[0]
	switch sn.Key {
	case "extension":
		return "ext", sn.Children[1].String()
	case "isdn-subaddress":
		return "isub", grammar.Unescape(sn.Children[1].String())
	}
	if vn, ok := sn.GetNode("pvalue"); ok {
		val = grammar.Unescape(vn.String())
	}
	return util.LCase(grammar.MustGetNode(sn, "pname").String()), val
}

// Ext returns the extension parameter.
func (u *TelURI) Ext() string {
	if u == nil {
		return ""
	}
	return u.Params.single("ext")
}

// SetExt sets the extension parameter.
func (u *TelURI) SetExt(ext string) *TelURI {
	u.Params.setSingle("ext", ext)
	return u
}

// IsGlobal checks whether the telephone number is global, i.e., starts with a "+".
// RFC 3966 Section 5.1.4.
func (u *TelURI) IsGlobal() bool { return u != nil && grammar.IsGlobTelNum(u.Number) }

// IsValid checks whether the u is a syntactically valid tel URI.
// Local numbers must have a "phone-context" parameter.
func (u *TelURI) IsValid() bool {
	if u == nil || !grammar.IsTelNum(u.Number) {
		return false
	}
	if !u.IsGlobal() {
		if ctx, ok := u.Params.First("phone-context"); !ok || grammar.CleanTelNum(ctx) == "" {
			return false
		}
	}
	for _, p := range u.Params {
		if !grammar.IsTelURIParamName(p.Name) || len(p.Values) > 1 {
			return false
		}
		var v string
		if len(p.Values) > 0 {
			v = p.Values[0]
		}
		switch util.LCase(p.Name) {
		case "ext":
			if !grammar.IsTelExt(v) {
				return false
			}
		case "isub":
			if !grammar.IsTelSubaddr(escapeTelParam(v)) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the URI.
func (u *TelURI) Clone() *TelURI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Params = u.Params.Clone()
	return &u2
}

// String renders the URI.
//
// RFC 3966 Section 3: the "isub" or "ext" parameter appears first,
// followed by "phone-context", followed by any other parameters in lexicographical order.
func (u *TelURI) String() string {
	if u == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString("tel:")
	sb.WriteString(u.Number)

	kvs := make([][2]string, 0, len(u.Params))
	for _, p := range u.Params {
		var v string
		if len(p.Values) > 0 {
			v = p.Values[len(p.Values)-1]
		}
		kvs = append(kvs, [2]string{util.LCase(p.Name), v})
	}
	slices.SortFunc(kvs, func(a, b [2]string) int {
		if ra, rb := telParamRank(a[0]), telParamRank(b[0]); ra != rb {
			return ra - rb
		}
		return strings.Compare(a[0], b[0])
	})
	for _, kv := range kvs {
		sb.WriteByte(';')
		sb.WriteString(kv[0])
		if kv[1] != "" {
			sb.WriteByte('=')
			sb.WriteString(escapeTelParam(kv[1]))
		}
	}
	return sb.String()
}

func telParamRank(name string) int {
	switch name {
	case "isub", "ext":
		return 0
	case "phone-context":
		return 1
	default:
		return 2
	}
}

// Format implements [fmt.Formatter].
func (u *TelURI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprintf(f, "%q", u.String())
	default:
		fmt.Fprintf(f, "%%!%c(*vcard.TelURI=%s)", verb, u.String())
	}
}

// Equal compares URIs according to RFC 3966 Section 4:
// numbers are compared after removing visual separators, parameters regardless of their order.
func (u *TelURI) Equal(val any) bool {
	var other *TelURI
	switch v := val.(type) {
	case TelURI:
		other = &v
	case *TelURI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	if !util.EqFold(grammar.CleanTelNum(u.Number), grammar.CleanTelNum(other.Number)) ||
		len(u.Params) != len(other.Params) {
		return false
	}
	for _, p := range u.Params {
		v1, _ := u.Params.First(p.Name)
		v2, ok := other.Params.First(p.Name)
		if !ok {
			return false
		}
		if grammar.IsTelNum(v1) {
			v1 = grammar.CleanTelNum(v1)
		}
		if grammar.IsTelNum(v2) {
			v2 = grammar.CleanTelNum(v2)
		}
		if !util.EqFold(v1, v2) {
			return false
		}
	}
	return true
}

func escapeTelParam(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isTelParamChar(c) {
			sb.WriteByte(c)
			continue
		}
		fmt.Fprintf(sb, "%%%02X", c)
	}
	return sb.String()
}

func isTelParamChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()[]/:&+$", c) >= 0
}
