package vcard

import (
	"braces.dev/errtrace"
)

// Version is a vCard format version.
type Version uint8

// Supported vCard versions.
const (
	V21 Version = iota + 1
	V30
	V40
)

// AllVersions lists every supported version in ascending order.
var AllVersions = []Version{V21, V30, V40}

// XMLNamespace is the XML namespace of xCard documents.
const XMLNamespace = "urn:ietf:params:xml:ns:vcard-4.0"

// String returns the version as it appears in the VERSION property.
func (v Version) String() string {
	switch v {
	case V21:
		return "2.1"
	case V30:
		return "3.0"
	case V40:
		return "4.0"
	default:
		return "unknown"
	}
}

// IsValid checks whether the version is one of the supported versions.
func (v Version) IsValid() bool { return v >= V21 && v <= V40 }

// XMLNamespace returns the XML namespace used for the version.
// Only version 4.0 defines an XML representation.
func (v Version) XMLNamespace() string {
	if v == V40 {
		return XMLNamespace
	}
	return ""
}

// ParseVersion parses a VERSION property value.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "2.1":
		return V21, nil
	case "3.0":
		return V30, nil
	case "4.0":
		return V40, nil
	default:
		return 0, errtrace.Wrap(NewInvalidArgumentError("unsupported version %q", s))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid version %d", uint8(v)))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(data []byte) error {
	ver, err := ParseVersion(string(data))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*v = ver
	return nil
}

func supportsVersion(vs []Version, v Version) bool {
	for _, sv := range vs {
		if sv == v {
			return true
		}
	}
	return false
}

// CompatibilityMode tweaks marshalling for consumers that deviate from the RFCs.
type CompatibilityMode uint8

const (
	// CompatRFC follows the specifications.
	CompatRFC CompatibilityMode = iota
	// CompatOutlook produces output readable by Microsoft Outlook:
	// 2.1 base64 values are followed by an empty line and dates use the extended format.
	CompatOutlook
)

func (m CompatibilityMode) String() string {
	switch m {
	case CompatRFC:
		return "rfc"
	case CompatOutlook:
		return "outlook"
	default:
		return "unknown"
	}
}

// Format identifies the wire encoding a codec operation works with.
type Format uint8

const (
	FormatText Format = iota
	FormatXML
	FormatJSON
	FormatHTML
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatXML:
		return "xml"
	case FormatJSON:
		return "json"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}
