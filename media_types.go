package vcard

import (
	"strings"

	"github.com/ghettovoice/vcard/internal/util"
)

// MediaType describes a well-known media type of binary property content.
type MediaType struct {
	// Legacy TYPE parameter value used by vCard 2.1 and 3.0, e.g. "JPEG".
	Type string
	// MIME type, e.g. "image/jpeg".
	MIME string
	// File extension without the dot.
	Ext string
}

var mediaTypes = []MediaType{
	{"JPEG", "image/jpeg", "jpg"},
	{"GIF", "image/gif", "gif"},
	{"PNG", "image/png", "png"},
	{"BMP", "image/bmp", "bmp"},
	{"TIFF", "image/tiff", "tiff"},
	{"SVG", "image/svg+xml", "svg"},
	{"WAV", "audio/wav", "wav"},
	{"MP3", "audio/mp3", "mp3"},
	{"OGG", "audio/ogg", "ogg"},
	{"AAC", "audio/aac", "aac"},
	{"PGP", "application/pgp-keys", "pgp"},
	{"X509", "application/x509", "cer"},
	{"GPG", "application/gpg", "gpg"},
}

// LookupMediaType finds a well-known media type by its legacy TYPE value,
// MIME type or file extension, ignoring case.
func LookupMediaType(s string) (MediaType, bool) {
	s = util.TrimSP(s)
	if s == "" {
		return MediaType{}, false
	}
	for _, mt := range mediaTypes {
		if util.EqFold(mt.Type, s) || util.EqFold(mt.MIME, s) || util.EqFold(mt.Ext, s) {
			return mt, true
		}
	}
	return MediaType{}, false
}

// legacyMediaType converts a MIME type to the TYPE value used by vCard 2.1 and 3.0.
func legacyMediaType(mime string) string {
	if mt, ok := LookupMediaType(mime); ok {
		return mt.Type
	}
	if _, sub, ok := strings.Cut(mime, "/"); ok {
		return util.UCase(sub)
	}
	return mime
}

// modernMediaType converts a legacy TYPE value to a MIME type.
func modernMediaType(typ string) string {
	if strings.Contains(typ, "/") {
		return typ
	}
	if mt, ok := LookupMediaType(typ); ok {
		return mt.MIME
	}
	return ""
}
