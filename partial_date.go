package vcard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

type partialFlags uint8

const (
	pdYear partialFlags = 1 << iota
	pdMonth
	pdDay
	pdHour
	pdMinute
	pdSecond
	pdOffset
)

// PartialDate is a date and/or time of reduced accuracy, as permitted by vCard 4.0.
// Any subset of its components may be present.
//
// The zero value has no components and is not valid.
type PartialDate struct {
	year, month, day     int
	hour, minute, second int
	offset               UTCOffset
	flags                partialFlags
}

// Year returns the year component.
func (d PartialDate) Year() (int, bool) { return d.year, d.flags&pdYear != 0 }

// Month returns the month component.
func (d PartialDate) Month() (int, bool) { return d.month, d.flags&pdMonth != 0 }

// Day returns the day of month component.
func (d PartialDate) Day() (int, bool) { return d.day, d.flags&pdDay != 0 }

// Hour returns the hour component.
func (d PartialDate) Hour() (int, bool) { return d.hour, d.flags&pdHour != 0 }

// Minute returns the minute component.
func (d PartialDate) Minute() (int, bool) { return d.minute, d.flags&pdMinute != 0 }

// Second returns the second component.
func (d PartialDate) Second() (int, bool) { return d.second, d.flags&pdSecond != 0 }

// Offset returns the UTC offset component.
func (d PartialDate) Offset() (UTCOffset, bool) { return d.offset, d.flags&pdOffset != 0 }

func (d PartialDate) WithYear(y int) PartialDate {
	d.year, d.flags = y, d.flags|pdYear
	return d
}

func (d PartialDate) WithMonth(m int) PartialDate {
	d.month, d.flags = m, d.flags|pdMonth
	return d
}

func (d PartialDate) WithDay(day int) PartialDate {
	d.day, d.flags = day, d.flags|pdDay
	return d
}

func (d PartialDate) WithHour(h int) PartialDate {
	d.hour, d.flags = h, d.flags|pdHour
	return d
}

func (d PartialDate) WithMinute(m int) PartialDate {
	d.minute, d.flags = m, d.flags|pdMinute
	return d
}

func (d PartialDate) WithSecond(s int) PartialDate {
	d.second, d.flags = s, d.flags|pdSecond
	return d
}

func (d PartialDate) WithOffset(o UTCOffset) PartialDate {
	d.offset, d.flags = o, d.flags|pdOffset
	return d
}

// IsZero reports whether no component is present.
func (d PartialDate) IsZero() bool { return d.flags&^pdOffset == 0 }

// HasDate reports whether any date component is present.
func (d PartialDate) HasDate() bool { return d.flags&(pdYear|pdMonth|pdDay) != 0 }

// HasTime reports whether any time component is present.
func (d PartialDate) HasTime() bool { return d.flags&(pdHour|pdMinute|pdSecond) != 0 }

// IsValid checks that at least one component is present and all components are in range.
// A year with a day but no month, or an hour with a second but no minute, is invalid.
func (d PartialDate) IsValid() bool {
	if d.IsZero() {
		return false
	}
	if d.flags&(pdYear|pdMonth|pdDay) == pdYear|pdDay {
		return false
	}
	if d.flags&(pdHour|pdMinute|pdSecond) == pdHour|pdSecond {
		return false
	}
	if d.flags&pdOffset != 0 && !d.HasTime() {
		return false
	}
	return inRange(d, pdMonth, d.month, 1, 12) &&
		inRange(d, pdDay, d.day, 1, 31) &&
		inRange(d, pdHour, d.hour, 0, 23) &&
		inRange(d, pdMinute, d.minute, 0, 59) &&
		inRange(d, pdSecond, d.second, 0, 60) &&
		inRange(d, pdYear, d.year, 0, 9999)
}

func inRange(d PartialDate, f partialFlags, v, lo, hi int) bool {
	return d.flags&f == 0 || (v >= lo && v <= hi)
}

// Equal compares two partial dates component by component.
func (d PartialDate) Equal(val any) bool {
	var other PartialDate
	switch v := val.(type) {
	case PartialDate:
		other = v
	case *PartialDate:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return d == other
}

// Format renders the partial date in basic or extended ISO 8601 format
// as used by the date-and-or-time value type.
func (d PartialDate) Format(extended bool) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	switch d.flags & (pdYear | pdMonth | pdDay) {
	case pdYear, pdYear | pdDay:
		fmt.Fprintf(sb, "%04d", d.year)
	case pdYear | pdMonth:
		fmt.Fprintf(sb, "%04d-%02d", d.year, d.month)
	case pdYear | pdMonth | pdDay:
		if extended {
			fmt.Fprintf(sb, "%04d-%02d-%02d", d.year, d.month, d.day)
		} else {
			fmt.Fprintf(sb, "%04d%02d%02d", d.year, d.month, d.day)
		}
	case pdMonth:
		fmt.Fprintf(sb, "--%02d", d.month)
	case pdMonth | pdDay:
		if extended {
			fmt.Fprintf(sb, "--%02d-%02d", d.month, d.day)
		} else {
			fmt.Fprintf(sb, "--%02d%02d", d.month, d.day)
		}
	case pdDay:
		fmt.Fprintf(sb, "---%02d", d.day)
	}

	if !d.HasTime() {
		return sb.String()
	}

	sep := ""
	if extended {
		sep = ":"
	}
	sb.WriteByte('T')
	switch d.flags & (pdHour | pdMinute | pdSecond) {
	case pdHour, pdHour | pdSecond:
		fmt.Fprintf(sb, "%02d", d.hour)
	case pdHour | pdMinute:
		fmt.Fprintf(sb, "%02d%s%02d", d.hour, sep, d.minute)
	case pdHour | pdMinute | pdSecond:
		fmt.Fprintf(sb, "%02d%s%02d%s%02d", d.hour, sep, d.minute, sep, d.second)
	case pdMinute:
		fmt.Fprintf(sb, "-%02d", d.minute)
	case pdMinute | pdSecond:
		fmt.Fprintf(sb, "-%02d%s%02d", d.minute, sep, d.second)
	case pdSecond:
		fmt.Fprintf(sb, "--%02d", d.second)
	}

	if d.flags&pdOffset != 0 {
		if d.offset == 0 {
			sb.WriteByte('Z')
		} else {
			sb.WriteString(d.offset.Format(extended))
		}
	}
	return sb.String()
}

// String returns the partial date in basic format.
func (d PartialDate) String() string { return d.Format(false) }

const zoneRe = `(Z|[+-]\d{2}(?::?\d{2})?)?`

var (
	pdDateRes = []struct {
		re    *regexp.Regexp
		flags []partialFlags
	}{
		{regexp.MustCompile(`^(\d{4})$`), []partialFlags{pdYear}},
		{regexp.MustCompile(`^(\d{4})-(\d{2})$`), []partialFlags{pdYear, pdMonth}},
		{regexp.MustCompile(`^(\d{4})-?(\d{2})-?(\d{2})$`), []partialFlags{pdYear, pdMonth, pdDay}},
		{regexp.MustCompile(`^--(\d{2})$`), []partialFlags{pdMonth}},
		{regexp.MustCompile(`^--(\d{2})-?(\d{2})$`), []partialFlags{pdMonth, pdDay}},
		{regexp.MustCompile(`^---(\d{2})$`), []partialFlags{pdDay}},
	}
	pdTimeRes = []struct {
		re    *regexp.Regexp
		flags []partialFlags
	}{
		{regexp.MustCompile(`^(\d{2})(?::?(\d{2})(?::?(\d{2}))?)?` + zoneRe + `$`), []partialFlags{pdHour, pdMinute, pdSecond}},
		{regexp.MustCompile(`^-(\d{2})(?::?(\d{2}))?` + zoneRe + `$`), []partialFlags{pdMinute, pdSecond}},
		{regexp.MustCompile(`^--(\d{2})` + zoneRe + `$`), []partialFlags{pdSecond}},
	}
)

// ParsePartialDate parses a date-and-or-time value with any subset of components,
// for example "1980", "1980-06", "--0612", "---12", "T10", "T1022Z" or "--0612T10:22".
func ParsePartialDate(s string) (PartialDate, error) {
	var d PartialDate
	datePart, timePart, hasT := strings.Cut(s, "T")
	if datePart != "" {
		if !d.parseDate(datePart) {
			return PartialDate{}, errtrace.Wrap(NewInvalidArgumentError("invalid partial date %q", s))
		}
	}
	if hasT {
		if timePart == "" || !d.parseTime(timePart) {
			return PartialDate{}, errtrace.Wrap(NewInvalidArgumentError("invalid partial date %q", s))
		}
	}
	if !d.IsValid() {
		return PartialDate{}, errtrace.Wrap(NewInvalidArgumentError("invalid partial date %q", s))
	}
	return d, nil
}

func (d *PartialDate) parseDate(s string) bool {
	for _, r := range pdDateRes {
		m := r.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		for i, f := range r.flags {
			d.set(f, m[i+1])
		}
		return true
	}
	return false
}

func (d *PartialDate) parseTime(s string) bool {
	for _, r := range pdTimeRes {
		m := r.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		for i, f := range r.flags {
			d.set(f, m[i+1])
		}
		if zone := m[len(m)-1]; zone != "" {
			off, err := ParseUTCOffset(zone)
			if err != nil {
				return false
			}
			d.offset, d.flags = off, d.flags|pdOffset
		}
		return true
	}
	return false
}

func (d *PartialDate) set(f partialFlags, s string) {
	if s == "" {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	switch f {
	case pdYear:
		d.year = n
	case pdMonth:
		d.month = n
	case pdDay:
		d.day = n
	case pdHour:
		d.hour = n
	case pdMinute:
		d.minute = n
	case pdSecond:
		d.second = n
	}
	d.flags |= f
}
