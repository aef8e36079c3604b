package vcard

import "github.com/ghettovoice/vcard/internal/util"

// DataType is a property value data type, as used by the VALUE parameter,
// xCard element names and jCard type strings.
type DataType string

// Standard data types.
const (
	DataTypeText          DataType = "text"
	DataTypeURI           DataType = "uri"
	DataTypeDate          DataType = "date"
	DataTypeTime          DataType = "time"
	DataTypeDateTime      DataType = "date-time"
	DataTypeDateAndOrTime DataType = "date-and-or-time"
	DataTypeTimestamp     DataType = "timestamp"
	DataTypeBoolean       DataType = "boolean"
	DataTypeInteger       DataType = "integer"
	DataTypeFloat         DataType = "float"
	DataTypeUTCOffset     DataType = "utc-offset"
	DataTypeLanguageTag   DataType = "language-tag"
	DataTypeBinary        DataType = "binary"
	DataTypeContentID     DataType = "content-id"
	DataTypeUnknown       DataType = "unknown"
)

// ParseDataType converts a VALUE parameter value to a [DataType].
// Version specific spellings ("url", "cid") are normalized.
func ParseDataType(s string) DataType {
	s = util.LCase(util.TrimSP(s))
	switch s {
	case "":
		return ""
	case "url":
		return DataTypeURI
	case "cid":
		return DataTypeContentID
	default:
		return DataType(s)
	}
}

// Render returns the spelling of the data type for the given version.
func (dt DataType) Render(v Version) string {
	switch {
	case dt == DataTypeURI && v == V21:
		return "url"
	case dt == DataTypeContentID && v == V21:
		return "content-id"
	case dt == DataTypeContentID:
		return "cid"
	default:
		return string(dt)
	}
}

// IsDateLike reports whether the data type holds a date and/or time.
func (dt DataType) IsDateLike() bool {
	switch dt {
	case DataTypeDate, DataTypeTime, DataTypeDateTime, DataTypeDateAndOrTime, DataTypeTimestamp:
		return true
	default:
		return false
	}
}

// IsKnown reports whether the data type is one of the vCard 4.0 value types,
// the ones that name value elements of xCard and value types of jCard.
func (dt DataType) IsKnown() bool {
	switch dt {
	case DataTypeText, DataTypeURI, DataTypeDate, DataTypeTime, DataTypeDateTime, DataTypeDateAndOrTime,
		DataTypeTimestamp, DataTypeBoolean, DataTypeInteger, DataTypeFloat, DataTypeUTCOffset,
		DataTypeLanguageTag, DataTypeUnknown:
		return true
	default:
		return false
	}
}
