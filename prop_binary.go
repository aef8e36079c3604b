package vcard

import (
	"bytes"
	"encoding/base64"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// BinaryValue is the content of binary properties: either inline data or a URL
// referencing it, with an optional media type.
type BinaryValue struct {
	data      []byte
	url       string
	mediaType string
}

// Data returns the inline data.
func (b *BinaryValue) Data() []byte { return b.data }

// URL returns the URL referencing the data.
func (b *BinaryValue) URL() string { return b.url }

// MediaType returns the MIME type of the content.
func (b *BinaryValue) MediaType() string { return b.mediaType }

// SetData sets inline data and clears the URL.
func (b *BinaryValue) SetData(data []byte, mediaType string) {
	b.data, b.url, b.mediaType = data, "", mediaType
}

// SetURL sets the URL and clears inline data.
func (b *BinaryValue) SetURL(url, mediaType string) {
	b.data, b.url, b.mediaType = nil, url, mediaType
}

// IsEmpty reports whether neither data nor URL is set.
func (b *BinaryValue) IsEmpty() bool { return len(b.data) == 0 && b.url == "" }

func (b *BinaryValue) equal(other *BinaryValue) bool {
	return bytes.Equal(b.data, other.data) && b.url == other.url && util.EqFold(b.mediaType, other.mediaType)
}

func (b *BinaryValue) clear() { b.data, b.url, b.mediaType = nil, "", "" }

func (b *BinaryValue) valueType(v Version) DataType {
	if b.url != "" || v == V40 {
		return DataTypeURI
	}
	return DataTypeBinary
}

// prepareParams sets the encoding and media type parameters for the version.
func (b *BinaryValue) prepareParams(params *Params, v Version) {
	params.Del(ParamEncoding)
	params.Del(ParamMediaType)
	if b.mediaType != "" {
		params.Remove(ParamType, legacyMediaType(b.mediaType))
	}

	switch {
	case v == V40:
		if b.url != "" && b.mediaType != "" {
			params.SetMediaType(b.mediaType)
		}
	case len(b.data) > 0:
		if v == V21 {
			params.SetEncoding(EncodingBase64)
		} else {
			params.SetEncoding(EncodingB)
		}
		fallthrough
	default:
		if b.mediaType != "" {
			params.AddType(legacyMediaType(b.mediaType))
		}
	}
}

// format renders the value: a data URI in 4.0, base64 data or the URL otherwise.
func (b *BinaryValue) format(v Version) (string, error) {
	switch {
	case b.url != "":
		return b.url, nil
	case len(b.data) == 0:
		return "", errtrace.Wrap(NewSkipPropertyError("no data or URL"))
	case v == V40:
		return (&DataURI{MediaType: util.Coalesce(b.mediaType, "application/octet-stream"), Data: b.data}).String(), nil
	default:
		return base64.StdEncoding.EncodeToString(b.data), nil
	}
}

// setURI sets the value from a URI; data URIs are decoded.
func (b *BinaryValue) setURI(s, mediaType string) {
	s = util.TrimSP(s)
	if IsDataURI(s) {
		if du, err := ParseDataURI(s); err == nil {
			b.SetData(du.Data, util.Coalesce(du.MediaType, mediaType))
			return
		}
	}
	b.SetURL(s, mediaType)
}

// parseText sets the value from a text value in the version.
func (b *BinaryValue) parseText(value string, dt DataType, params *Params, v Version) error {
	mediaType := takeMediaType(params)
	switch {
	case params.IsBase64():
		data, err := decodeBase64(value)
		if err != nil {
			return errtrace.Wrap(NewCannotParseError(err))
		}
		params.Del(ParamEncoding)
		b.SetData(data, mediaType)
		return nil
	case dt == DataTypeURI || dt == DataTypeContentID || strings.Contains(value, ":"):
		b.setURI(value, mediaType)
		return nil
	case dt == "" && v == V40:
		b.setURI(value, mediaType)
		return nil
	default:
		return errtrace.Wrap(NewCannotParseError("value is neither base64 data nor a URL"))
	}
}

// takeMediaType extracts the media type from MEDIATYPE or legacy TYPE values.
func takeMediaType(params *Params) string {
	if mt := params.MediaType(); mt != "" {
		params.Del(ParamMediaType)
		return mt
	}
	for _, t := range params.Types() {
		if mt := modernMediaType(t); mt != "" {
			params.RemoveType(t)
			return mt
		}
	}
	return ""
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		default:
			return r
		}
	}, s)
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	}
	return data, errtrace.Wrap(err)
}

func (b *BinaryValue) parseHTML(el *HTMLElement) error {
	u := el.URL()
	if u == "" {
		return errtrace.Wrap(NewSkipPropertyError("<%s> element has no link", el.TagName()))
	}
	var mt string
	if el.TagName() == "a" || el.TagName() == "object" {
		mt = el.Attr("type")
	}
	b.setURI(u, mt)
	return nil
}

// Binary is a binary property: PHOTO, LOGO or SOUND.
type Binary struct {
	PropertyBase
	BinaryValue
	name string
}

// NewBinary creates a binary property with the name.
func NewBinary(name string) *Binary { return &Binary{name: util.UCase(name)} }

// NewPhotoURL creates a PHOTO property referencing an image.
func NewPhotoURL(url, mediaType string) *Binary {
	p := NewBinary(PropPhoto)
	p.SetURL(url, mediaType)
	return p
}

// NewPhotoData creates a PHOTO property with inline image data.
func NewPhotoData(data []byte, mediaType string) *Binary {
	p := NewBinary(PropPhoto)
	p.SetData(data, mediaType)
	return p
}

func (p *Binary) Name() string { return p.name }

// Equal compares name, group, parameters and content.
func (p *Binary) Equal(val any) bool {
	other, ok := val.(*Binary)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return util.EqFold(p.name, other.name) && p.BinaryValue.equal(&other.BinaryValue) &&
		p.equalBase(&other.PropertyBase)
}

func newBinaryCodec(name string) *codec[*Binary] {
	return &codec[*Binary]{
		name:     name,
		versions: allVersions,
		newFn:    func() *Binary { return NewBinary(name) },
		defType: func(v Version) DataType {
			if v == V40 {
				return DataTypeURI
			}
			return DataTypeBinary
		},
		valueType: func(p *Binary, v Version) DataType { return p.valueType(v) },
		prepare: func(p *Binary, params *Params, ctx *WriteContext) {
			p.prepareParams(params, ctx.version())
		},
		rawText: true,
		plain: func(p *Binary, ctx *WriteContext) (string, error) {
			v := ctx.version()
			if ctx.Format != FormatText {
				v = V40
			}
			return errtrace.Wrap2(p.format(v))
		},
		parseText: func(p *Binary, value string, dt DataType, params *Params, ctx *ParseContext) error {
			return errtrace.Wrap(p.parseText(value, dt, params, ctx.version()))
		},
		setPlain: func(p *Binary, s string, _ DataType, params *Params, _ *ParseContext) error {
			p.setURI(s, takeMediaType(params))
			return nil
		},
		parseHTML: func(p *Binary, el *HTMLElement, _ *Params, _ *ParseContext) error {
			return errtrace.Wrap(p.BinaryValue.parseHTML(el))
		},
	}
}

// Key is the KEY property: binary content, a URL or a plain text key.
type Key struct {
	PropertyBase
	BinaryValue
	text string
}

// NewTextKey creates a KEY property with a text key.
func NewTextKey(text, mediaType string) *Key {
	p := &Key{}
	p.SetText(text, mediaType)
	return p
}

func (*Key) Name() string { return PropKey }

// Text returns the text key.
func (p *Key) Text() string { return p.text }

// SetText sets a text key and clears binary content.
func (p *Key) SetText(text, mediaType string) {
	p.BinaryValue.clear()
	p.text, p.mediaType = text, mediaType
}

// SetData sets inline data and clears the text key.
func (p *Key) SetData(data []byte, mediaType string) {
	p.text = ""
	p.BinaryValue.SetData(data, mediaType)
}

// SetURL sets the URL and clears the text key.
func (p *Key) SetURL(url, mediaType string) {
	p.text = ""
	p.BinaryValue.SetURL(url, mediaType)
}

// Equal compares group, parameters and content.
func (p *Key) Equal(val any) bool {
	other, ok := val.(*Key)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.text == other.text && p.BinaryValue.equal(&other.BinaryValue) && p.equalBase(&other.PropertyBase)
}

func newKeyCodec() *codec[*Key] {
	return &codec[*Key]{
		name:     PropKey,
		versions: allVersions,
		newFn:    func() *Key { return &Key{} },
		defType: func(v Version) DataType {
			if v == V40 {
				return DataTypeURI
			}
			return DataTypeBinary
		},
		valueType: func(p *Key, v Version) DataType {
			if p.text != "" {
				return DataTypeText
			}
			return p.valueType(v)
		},
		prepare: func(p *Key, params *Params, ctx *WriteContext) {
			v := ctx.version()
			if p.text == "" {
				p.prepareParams(params, v)
				return
			}
			params.Del(ParamEncoding)
			params.Del(ParamMediaType)
			if p.mediaType == "" {
				return
			}
			if v == V40 {
				params.SetMediaType(p.mediaType)
			} else {
				params.AddType(legacyMediaType(p.mediaType))
			}
		},
		writeText: func(p *Key, ctx *WriteContext) (string, error) {
			if p.text != "" {
				return EscapeText(p.text), nil
			}
			if p.url != "" && ctx.version() != V40 {
				ctx.Warn(PropKey, "vCard %s does not allow URLs in KEY", ctx.version())
			}
			return errtrace.Wrap2(p.format(ctx.version()))
		},
		parseText: func(p *Key, value string, dt DataType, params *Params, ctx *ParseContext) error {
			if dt == DataTypeText {
				p.SetText(UnescapeText(value), takeMediaType(params))
				return nil
			}
			return errtrace.Wrap(p.parseText(value, dt, params, ctx.version()))
		},
		plain: func(p *Key, _ *WriteContext) (string, error) {
			if p.text != "" {
				return p.text, nil
			}
			return errtrace.Wrap2(p.format(V40))
		},
		setPlain: func(p *Key, s string, dt DataType, params *Params, _ *ParseContext) error {
			if dt == DataTypeText {
				p.SetText(s, takeMediaType(params))
				return nil
			}
			p.setURI(s, takeMediaType(params))
			return nil
		},
		parseHTML: func(p *Key, el *HTMLElement, _ *Params, _ *ParseContext) error {
			if el.URL() == "" {
				p.SetText(el.Value(), "")
				return nil
			}
			return errtrace.Wrap(p.BinaryValue.parseHTML(el))
		},
		recover: func(value string, params *Params, _ *ParseContext) (*Key, bool) {
			p := &Key{}
			p.SetText(UnescapeText(value), takeMediaType(params))
			params.Del(ParamEncoding)
			return p, true
		},
	}
}
