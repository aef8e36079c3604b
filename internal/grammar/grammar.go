// Package grammar matches input against the ABNF rules of RFC 3966 and RFC 6350.
package grammar

//go:generate go tool errtrace -w .
//go:generate go tool abnf generate ./rfc3966/abnf.yml
//go:generate go tool abnf generate ./rfc6350/abnf.yml

import (
	"bytes"
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/vcard/internal/constraints"
	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar/rfc3966"
	"github.com/ghettovoice/vcard/internal/grammar/rfc6350"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

const ErrNodeNotFound errorutil.Error = "node not found"

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// matchAll reports whether rule matches the whole s.
func matchAll[T constraints.Byteseq](rule abnf.Rule, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsTelNum reports whether s is a global or a local telephone number.
func IsTelNum[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '+' {
		return matchAll(rfc3966.Rules().GlobalNumberDigits, s)
	}
	return matchAll(rfc3966.Rules().LocalNumberDigits, s)
}

func IsGlobTelNum[T constraints.Byteseq](s T) bool {
	return IsTelNum(s) && s[0] == '+'
}

var telVisSepRpl = strings.NewReplacer("-", "", ".", "", "(", "", ")", "")

// CleanTelNum removes all visual separators.
func CleanTelNum[T constraints.Byteseq](s T) T { return T(telVisSepRpl.Replace(string(s))) }

func IsTelURIParamName[T constraints.Byteseq](s T) bool {
	return matchAll(rfc3966.Rules().Pname, s)
}

// IsTelExt reports whether s is a valid "ext" parameter value.
func IsTelExt[T constraints.Byteseq](s T) bool {
	return len(s) > 0 && matchAll(rfc3966.Rules().Extension, ";ext="+string(s))
}

// IsTelSubaddr reports whether s is a valid "isub" parameter value.
func IsTelSubaddr[T constraints.Byteseq](s T) bool {
	return len(s) > 0 && matchAll(rfc3966.Rules().IsdnSubaddress, ";isub="+string(s))
}

// ParseTelURI matches s against the telephone-uri rule.
func ParseTelURI[T constraints.Byteseq](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty input"))
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3966.Rules().TelephoneUri([]byte(s), ns); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unexpected input at position %d", nl))
	}
	return n, nil
}

// IsName reports whether s is a property name, an IANA token or an "X-" name.
func IsName[T constraints.Byteseq](s T) bool {
	return matchAll(rfc6350.Rules().Name, s)
}

func IsGroup[T constraints.Byteseq](s T) bool {
	return matchAll(rfc6350.Rules().Group, s)
}

func IsParamName[T constraints.Byteseq](s T) bool {
	return matchAll(rfc6350.Rules().ParamName, s)
}

// IsSafeParamValue reports whether s can be written as a parameter value without quotes.
// An empty value is safe.
func IsSafeParamValue[T constraints.Byteseq](s T) bool {
	return len(s) == 0 || bytes.IndexByte([]byte(s), '"') < 0 && matchAll(rfc6350.Rules().ParamValue, s)
}

// IsQuotableParamValue reports whether s can be written as a quoted parameter value.
func IsQuotableParamValue[T constraints.Byteseq](s T) bool {
	return len(s) == 0 || matchAll(rfc6350.Rules().ParamValue, `"`+string(s)+`"`)
}

// Unescape converts each "%" HEXDIG HEXDIG triplet of s into the decoded byte.
func Unescape[T constraints.Byteseq](s T) T {
	if bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
