package log_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ghettovoice/vcard/log"
)

func TestSetDefault(t *testing.T) {
	if got := log.Default(); got != log.Noop {
		t.Fatalf("log.Default() = %p, want log.Noop", got)
	}
	t.Cleanup(func() { log.SetDefault(nil) })

	log.SetDefault(log.Dev)
	if got := log.Default(); got != log.Dev {
		t.Errorf("log.Default() = %p, want log.Dev", got)
	}
	log.SetDefault(nil)
	if got := log.Default(); got != log.Noop {
		t.Errorf("log.Default() = %p, want log.Noop", got)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("log.Noop.Enabled(ctx, slog.LevelError) = true, want false")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		val  slog.LogValuer
		want string
	}{
		{"fmt", log.FmtValue(struct{ A int }{1}, false), "{A:1}"},
		{"fmt go syntax", log.FmtValue([]string{"a"}, true), `[]string{"a"}`},
		{"calc", log.CalcValue(func() any { return "calc" }), "calc"},
		{"string", log.StringValue([]byte("bytes")), "bytes"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.val.LogValue().String(); got != c.want {
				t.Errorf("LogValue() = %q, want %q", got, c.want)
			}
		})
	}
}
