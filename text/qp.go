package text

import (
	"io"
	"mime/quotedprintable"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ghettovoice/vcard"
)

const defaultCharset = "UTF-8"

func lookupCharset(name string) (encoding.Encoding, error) {
	if name == "" {
		name = defaultCharset
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errtrace.Wrap(vcard.NewInvalidArgumentError("unknown charset %q: %w", name, err))
	}
	return enc, nil
}

// decodeQuotedPrintable decodes a quoted-printable value in the charset.
// Soft line breaks must be kept as "=\r\n" sequences.
func decodeQuotedPrintable(s, charset string) (string, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	b, err := io.ReadAll(enc.NewDecoder().Reader(quotedprintable.NewReader(strings.NewReader(s))))
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b), nil
}

const hexUpper = "0123456789ABCDEF"

// encodeQuotedPrintable encodes s in the charset and returns the quoted-printable
// tokens: either a single literal character or an "=XX" triplet.
func encodeQuotedPrintable(s, charset string) ([]string, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	b, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, errtrace.Wrap(vcard.NewInvalidArgumentError("cannot encode value in charset %q: %w", charset, err))
	}

	toks := make([]string, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case (c == ' ' || c == '\t') && i < len(b)-1:
			toks = append(toks, b[i:i+1])
		case c >= 33 && c <= 126 && c != '=':
			toks = append(toks, b[i:i+1])
		default:
			toks = append(toks, string([]byte{'=', hexUpper[c>>4], hexUpper[c&0x0f]}))
		}
	}
	return toks, nil
}

// foldQuotedPrintable splits the head of a content line followed by the tokens
// into physical lines no longer than lineLen, joined with soft line breaks.
// Continuation lines never start with whitespace, so they cannot be taken for folded lines.
func foldQuotedPrintable(head string, toks []string, lineLen int) []string {
	if lineLen <= 1 {
		return []string{head + strings.Join(toks, "")}
	}

	var (
		lines []string
		sb    strings.Builder
	)
	sb.WriteString(head)
	for _, tok := range toks {
		if sb.Len() == 0 && (tok == " " || tok == "\t") {
			tok = string([]byte{'=', hexUpper[tok[0]>>4], hexUpper[tok[0]&0x0f]})
		}
		if sb.Len() > 0 && sb.Len()+len(tok) > lineLen-1 {
			sb.WriteByte('=')
			lines = append(lines, sb.String())
			sb.Reset()
			if tok == " " || tok == "\t" {
				tok = string([]byte{'=', hexUpper[tok[0]>>4], hexUpper[tok[0]&0x0f]})
			}
		}
		sb.WriteString(tok)
	}
	return append(lines, sb.String())
}
