package text

import (
	"log/slog"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/log"
)

// DefaultFoldLineLength is the default maximum length of a physical line in octets,
// not including the line break.
const DefaultFoldLineLength = 75

// WriterOptions are the options of a [Writer].
type WriterOptions struct {
	// Version is the version cards are written in.
	// If zero, [vcard.V30] is used.
	Version vcard.Version
	// Compat is the compatibility mode.
	Compat vcard.CompatibilityMode
	// Newline is the line break sequence.
	// If empty, "\r\n" is used.
	Newline string
	// FoldLineLength is the maximum length of a physical line.
	// If zero, [DefaultFoldLineLength] is used.
	FoldLineLength int
	// NoFold disables line folding.
	NoFold bool
	// AddProdID adds a product identifier property to every card.
	AddProdID bool
	// ProdID is the product identifier written when AddProdID is set.
	// If empty, [DefaultProdID] is used.
	ProdID string
	// Registry is the codec registry.
	// If nil, the [vcard.DefaultRegistry] is used.
	Registry *vcard.Registry
	// MaxDepth limits the nesting of embedded cards.
	// If zero, [vcard.DefaultMaxDepth] is used.
	MaxDepth int
	// Log is the logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

// DefaultProdID is the default product identifier.
const DefaultProdID = "-//ghettovoice//vcard//EN"

func (o *WriterOptions) version() vcard.Version {
	if o == nil || !o.Version.IsValid() {
		return vcard.V30
	}
	return o.Version
}

func (o *WriterOptions) compat() vcard.CompatibilityMode {
	if o == nil {
		return vcard.CompatRFC
	}
	return o.Compat
}

func (o *WriterOptions) newline() string {
	if o == nil || o.Newline == "" {
		return "\r\n"
	}
	return o.Newline
}

func (o *WriterOptions) foldLineLength() int {
	switch {
	case o == nil:
		return DefaultFoldLineLength
	case o.NoFold:
		return 0
	case o.FoldLineLength <= 0:
		return DefaultFoldLineLength
	default:
		return o.FoldLineLength
	}
}

func (o *WriterOptions) prodID() string {
	switch {
	case o == nil || !o.AddProdID:
		return ""
	case o.ProdID == "":
		return DefaultProdID
	default:
		return o.ProdID
	}
}

func (o *WriterOptions) registry() *vcard.Registry {
	if o == nil || o.Registry == nil {
		return vcard.DefaultRegistry()
	}
	return o.Registry
}

func (o *WriterOptions) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return vcard.DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *WriterOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// ReaderOptions are the options of a [Reader].
type ReaderOptions struct {
	// Version is assumed for cards without a VERSION property.
	// If zero, [vcard.V21] is used.
	Version vcard.Version
	// Compat is the compatibility mode.
	Compat vcard.CompatibilityMode
	// Registry is the codec registry.
	// If nil, the [vcard.DefaultRegistry] is used.
	Registry *vcard.Registry
	// Strict turns unparseable properties and malformed lines into errors.
	Strict bool
	// MaxDepth limits the nesting of embedded cards.
	// If zero, [vcard.DefaultMaxDepth] is used.
	MaxDepth int
	// Log is the logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *ReaderOptions) version() vcard.Version {
	if o == nil || !o.Version.IsValid() {
		return vcard.V21
	}
	return o.Version
}

func (o *ReaderOptions) compat() vcard.CompatibilityMode {
	if o == nil {
		return vcard.CompatRFC
	}
	return o.Compat
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
