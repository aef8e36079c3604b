package vcard

import (
	"encoding/base64"
	"net/url"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// DataURI is a "data" URI (RFC 2397) carrying inline binary content.
type DataURI struct {
	MediaType string
	Data      []byte
}

// ParseDataURI parses a "data" URI. Both base64 and percent encoded payloads are accepted.
func ParseDataURI(s string) (*DataURI, error) {
	if len(s) < 5 || !util.EqFold(s[:5], "data:") {
		return nil, errtrace.Wrap(NewInvalidArgumentError("not a data URI: %q", s))
	}
	meta, payload, ok := strings.Cut(s[5:], ",")
	if !ok {
		return nil, errtrace.Wrap(NewInvalidArgumentError("data URI without payload: %q", s))
	}

	var (
		mt    string
		isB64 bool
	)
	for i, part := range strings.Split(meta, ";") {
		switch {
		case i == 0:
			mt = part
		case util.EqFold(part, "base64"):
			isB64 = true
		}
	}

	u := &DataURI{MediaType: mt}
	if isB64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errtrace.Wrap(NewInvalidArgumentError(err))
		}
		u.Data = data
		return u, nil
	}
	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError(err))
	}
	u.Data = []byte(data)
	return u, nil
}

// String renders the URI with a base64 payload.
func (u *DataURI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString("data:")
	sb.WriteString(u.MediaType)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(u.Data))
	return sb.String()
}

// IsDataURI reports whether s looks like a "data" URI.
func IsDataURI(s string) bool { return len(s) >= 5 && util.EqFold(s[:5], "data:") }
