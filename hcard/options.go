package hcard

import (
	"log/slog"
	"net/url"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/log"
)

// ReaderOptions are the options of a [Reader].
type ReaderOptions struct {
	// BaseURL is the URL of the page. Relative links are resolved against it,
	// or against the <base> element of the page when there is one.
	BaseURL *url.URL
	// Registry is the codec registry.
	// If nil, the [vcard.DefaultRegistry] is used.
	Registry *vcard.Registry
	// Strict turns unparseable properties into errors.
	Strict bool
	// MaxDepth limits nesting of embedded cards.
	// If zero, the [vcard.DefaultMaxDepth] is used.
	MaxDepth int
	// Log is the logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *ReaderOptions) baseURL() *url.URL {
	if o == nil {
		return nil
	}
	return o.BaseURL
}

func (o *ReaderOptions) registry() *vcard.Registry {
	if o == nil || o.Registry == nil {
		return vcard.DefaultRegistry()
	}
	return o.Registry
}

func (o *ReaderOptions) strict() bool { return o != nil && o.Strict }

func (o *ReaderOptions) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return vcard.DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *ReaderOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}
