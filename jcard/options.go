package jcard

import (
	"log/slog"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/log"
)

// DefaultProdID is the default product identifier.
const DefaultProdID = "-//ghettovoice//vcard//EN"

// WriterOptions are the options of a [Writer].
type WriterOptions struct {
	// Indent is the indentation string of nested arrays. Empty means compact output.
	Indent string
	// AddProdID adds a PRODID property to every card.
	AddProdID bool
	// ProdID is the product identifier written when AddProdID is set.
	// If empty, [DefaultProdID] is used.
	ProdID string
	// Registry is the codec registry.
	// If nil, the [vcard.DefaultRegistry] is used.
	Registry *vcard.Registry
	// Log is the logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *WriterOptions) indent() string {
	if o == nil {
		return ""
	}
	return o.Indent
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

func (o *WriterOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// ReaderOptions are the options of a [Reader].
type ReaderOptions struct {
	// Registry is the codec registry.
	// If nil, the [vcard.DefaultRegistry] is used.
	Registry *vcard.Registry
	// Strict turns unparseable properties into errors.
	Strict bool
	// Log is the logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *ReaderOptions) registry() *vcard.Registry {
	if o == nil || o.Registry == nil {
		return vcard.DefaultRegistry()
	}
	return o.Registry
}

func (o *ReaderOptions) strict() bool { return o != nil && o.Strict }

func (o *ReaderOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}
