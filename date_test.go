package vcard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/vcard"
)

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		want     time.Time
		wantTime bool
		wantErr  error
	}{
		{"19800615", time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), false, nil},
		{"1980-06-15", time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), false, nil},
		{"19800615T103000Z", time.Date(1980, 6, 15, 10, 30, 0, 0, time.UTC), true, nil},
		{"1980-06-15T10:30:00Z", time.Date(1980, 6, 15, 10, 30, 0, 0, time.UTC), true, nil},
		{"19800615T103000", time.Date(1980, 6, 15, 10, 30, 0, 0, time.UTC), true, nil},
		{"1980-06-15T10:30", time.Date(1980, 6, 15, 10, 30, 0, 0, time.UTC), true, nil},
		{"19800615T103000+0200", time.Date(1980, 6, 15, 8, 30, 0, 0, time.UTC), true, nil},
		{"1980-06", time.Time{}, false, vcard.ErrInvalidArgument},
		{"invalid", time.Time{}, false, vcard.ErrInvalidArgument},
	}
	for _, c := range cases {
		got, gotTime, err := vcard.ParseDateTime(c.in)
		if c.wantErr != nil {
			if !errors.Is(err, c.wantErr) {
				t.Errorf("vcard.ParseDateTime(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("vcard.ParseDateTime(%q) error = %v, want nil", c.in, err)
			continue
		}
		if !got.Equal(c.want) || gotTime != c.wantTime {
			t.Errorf("vcard.ParseDateTime(%q) = %v, %v, want %v, %v", c.in, got, gotTime, c.want, c.wantTime)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	tm := time.Date(1980, 6, 15, 10, 30, 5, 0, time.UTC)
	cases := []struct {
		hasTime, extended bool
		want              string
	}{
		{false, false, "19800615"},
		{false, true, "1980-06-15"},
		{true, false, "19800615T103005Z"},
		{true, true, "1980-06-15T10:30:05Z"},
	}
	for _, c := range cases {
		if got := vcard.FormatDateTime(tm, c.hasTime, c.extended); got != c.want {
			t.Errorf("vcard.FormatDateTime(%v, %v, %v) = %q, want %q", tm, c.hasTime, c.extended, got, c.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	got, err := vcard.ParseTimestamp("2024-01-02T03:04:05+01:00")
	if err != nil {
		t.Fatalf("vcard.ParseTimestamp(s) error = %v, want nil", err)
	}
	if want := "20240102T020405Z"; vcard.FormatTimestamp(got, false) != want {
		t.Errorf("vcard.FormatTimestamp(%v, false) = %q, want %q", got, vcard.FormatTimestamp(got, false), want)
	}
	if _, err := vcard.ParseTimestamp("20240102"); !errors.Is(err, vcard.ErrInvalidArgument) {
		t.Errorf("vcard.ParseTimestamp(date) error = %v, want %v", err, vcard.ErrInvalidArgument)
	}
}

func TestParsePartialDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		want     vcard.PartialDate
		basic    string
		extended string
	}{
		{"1980", vcard.PartialDate{}.WithYear(1980), "1980", "1980"},
		{"1980-06", vcard.PartialDate{}.WithYear(1980).WithMonth(6), "1980-06", "1980-06"},
		{"19800615", vcard.PartialDate{}.WithYear(1980).WithMonth(6).WithDay(15), "19800615", "1980-06-15"},
		{"--0612", vcard.PartialDate{}.WithMonth(6).WithDay(12), "--0612", "--06-12"},
		{"---12", vcard.PartialDate{}.WithDay(12), "---12", "---12"},
		{"T10", vcard.PartialDate{}.WithHour(10), "T10", "T10"},
		{"T1022Z", vcard.PartialDate{}.WithHour(10).WithMinute(22).WithOffset(0), "T1022Z", "T10:22Z"},
		{"T-22", vcard.PartialDate{}.WithMinute(22), "T-22", "T-22"},
		{
			"--0612T10:22:30-05:00",
			vcard.PartialDate{}.WithMonth(6).WithDay(12).WithHour(10).WithMinute(22).WithSecond(30).
				WithOffset(vcard.NewUTCOffset(-5, 0)),
			"--0612T102230-0500",
			"--06-12T10:22:30-05:00",
		},
	}
	for _, c := range cases {
		got, err := vcard.ParsePartialDate(c.in)
		if err != nil {
			t.Errorf("vcard.ParsePartialDate(%q) error = %v, want nil", c.in, err)
			continue
		}
		if diff := cmp.Diff(got, c.want); diff != "" {
			t.Errorf("vcard.ParsePartialDate(%q) = %v, want %v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
		}
		if s := got.Format(false); s != c.basic {
			t.Errorf("PartialDate.Format(false) = %q, want %q", s, c.basic)
		}
		if s := got.Format(true); s != c.extended {
			t.Errorf("PartialDate.Format(true) = %q, want %q", s, c.extended)
		}
	}
}

func TestParsePartialDate_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "invalid", "1980-13", "--1340", "T", "T25", "1980Z", "198006"} {
		if _, err := vcard.ParsePartialDate(in); !errors.Is(err, vcard.ErrInvalidArgument) {
			t.Errorf("vcard.ParsePartialDate(%q) error = %v, want %v", in, err, vcard.ErrInvalidArgument)
		}
	}
}

func TestPartialDate_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    vcard.PartialDate
		want bool
	}{
		{vcard.PartialDate{}, false},
		{vcard.PartialDate{}.WithYear(1980).WithDay(15), false},
		{vcard.PartialDate{}.WithHour(10).WithSecond(5), false},
		{vcard.PartialDate{}.WithYear(1980).WithOffset(60), false},
		{vcard.PartialDate{}.WithMonth(2).WithDay(29), true},
		{vcard.PartialDate{}.WithHour(23).WithMinute(59).WithSecond(60), true},
	}
	for _, c := range cases {
		if got := c.d.IsValid(); got != c.want {
			t.Errorf("PartialDate(%v).IsValid() = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestUTCOffset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		want     vcard.UTCOffset
		basic    string
		extended string
	}{
		{"Z", 0, "+0000", "+00:00"},
		{"+02", 120, "+0200", "+02:00"},
		{"-0530", -330, "-0530", "-05:30"},
		{"+05:45", 345, "+0545", "+05:45"},
		{"-00:30", -30, "-0030", "-00:30"},
	}
	for _, c := range cases {
		got, err := vcard.ParseUTCOffset(c.in)
		if err != nil {
			t.Errorf("vcard.ParseUTCOffset(%q) error = %v, want nil", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("vcard.ParseUTCOffset(%q) = %d, want %d", c.in, got, c.want)
		}
		if s := got.Format(false); s != c.basic {
			t.Errorf("UTCOffset(%d).Format(false) = %q, want %q", got, s, c.basic)
		}
		if s := got.Format(true); s != c.extended {
			t.Errorf("UTCOffset(%d).Format(true) = %q, want %q", got, s, c.extended)
		}
	}

	for _, in := range []string{"", "0200", "+2", "+123", "+24:00", "+01:60"} {
		if _, err := vcard.ParseUTCOffset(in); !errors.Is(err, vcard.ErrInvalidArgument) {
			t.Errorf("vcard.ParseUTCOffset(%q) error = %v, want %v", in, err, vcard.ErrInvalidArgument)
		}
	}

	if o := vcard.NewUTCOffset(-5, 30); o != -330 || o.Hours() != -5 || o.Minutes() != 30 {
		t.Errorf("vcard.NewUTCOffset(-5, 30) = %d (%d h %d m), want -330", o, o.Hours(), o.Minutes())
	}
}
