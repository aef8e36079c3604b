package vcard

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// UTCOffset is an offset from UTC in minutes.
type UTCOffset int

// NewUTCOffset creates an offset from hours and minutes.
// The sign of hours applies to minutes.
func NewUTCOffset(hours, minutes int) UTCOffset {
	if hours < 0 {
		return UTCOffset(hours*60 - minutes)
	}
	return UTCOffset(hours*60 + minutes)
}

// Hours returns the hour part of the offset.
func (o UTCOffset) Hours() int { return int(o) / 60 }

// Minutes returns the absolute minute part of the offset.
func (o UTCOffset) Minutes() int {
	m := int(o) % 60
	if m < 0 {
		m = -m
	}
	return m
}

// Format renders the offset as "+hhmm" or, in extended form, "+hh:mm".
func (o UTCOffset) Format(extended bool) string {
	sign := '+'
	if o < 0 {
		sign = '-'
	}
	h := o.Hours()
	if h < 0 {
		h = -h
	}
	if extended {
		return fmt.Sprintf("%c%02d:%02d", sign, h, o.Minutes())
	}
	return fmt.Sprintf("%c%02d%02d", sign, h, o.Minutes())
}

// String returns the offset in basic format.
func (o UTCOffset) String() string { return o.Format(false) }

// ParseUTCOffset parses "Z", "+hh", "+hhmm" and "+hh:mm" forms.
func ParseUTCOffset(s string) (UTCOffset, error) {
	if s == "Z" || s == "z" {
		return 0, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, errtrace.Wrap(NewInvalidArgumentError("invalid UTC offset %q", s))
	}

	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	rest := strings.ReplaceAll(s[1:], ":", "")
	if len(rest) != 2 && len(rest) != 4 {
		return 0, errtrace.Wrap(NewInvalidArgumentError("invalid UTC offset %q", s))
	}
	h, err := strconv.Atoi(rest[:2])
	if err != nil || h > 23 {
		return 0, errtrace.Wrap(NewInvalidArgumentError("invalid UTC offset %q", s))
	}
	var m int
	if len(rest) == 4 {
		m, err = strconv.Atoi(rest[2:])
		if err != nil || m > 59 {
			return 0, errtrace.Wrap(NewInvalidArgumentError("invalid UTC offset %q", s))
		}
	}
	return UTCOffset(sign * (h*60 + m)), nil
}
