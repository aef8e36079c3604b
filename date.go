package vcard

import (
	"time"

	"braces.dev/errtrace"
)

// Layouts of full dates and date-times accepted on input, basic format first.
var (
	dateLayouts = []string{
		"20060102",
		"2006-01-02",
	}
	dateTimeLayouts = []string{
		"20060102T150405Z0700",
		"20060102T150405Z07:00",
		"20060102T150405Z07",
		"20060102T150405",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04:05Z07",
		"2006-01-02T15:04:05",
		"20060102T1504Z0700",
		"20060102T1504",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04",
	}
)

// ParseDateTime parses a full date or date-time value in basic or extended ISO 8601 format.
// The second result reports whether the value has a time component.
// Values without a UTC offset are interpreted in UTC.
func ParseDateTime(s string) (time.Time, bool, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, false, nil
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, errtrace.Wrap(NewInvalidArgumentError("invalid date %q", s))
}

// FormatDateTime renders a full date or date-time value.
// The extended form uses "-" and ":" separators.
func FormatDateTime(t time.Time, hasTime, extended bool) string {
	switch {
	case !hasTime && extended:
		return t.Format("2006-01-02")
	case !hasTime:
		return t.Format("20060102")
	case extended:
		return t.Format("2006-01-02T15:04:05Z07:00")
	default:
		return t.Format("20060102T150405Z0700")
	}
}

// ParseTimestamp parses a timestamp value, that is a complete date-time.
func ParseTimestamp(s string) (time.Time, error) {
	t, hasTime, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, errtrace.Wrap(err)
	}
	if !hasTime {
		return time.Time{}, errtrace.Wrap(NewInvalidArgumentError("timestamp %q has no time", s))
	}
	return t, nil
}

// FormatTimestamp renders a timestamp in UTC.
func FormatTimestamp(t time.Time, extended bool) string {
	return FormatDateTime(t.UTC(), true, extended)
}
