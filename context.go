package vcard

import "github.com/ghettovoice/vcard/internal/util"

// DefaultMaxDepth is the default limit of embedded card nesting.
const DefaultMaxDepth = 8

// WriteContext carries the state of a single marshal operation into codec calls.
type WriteContext struct {
	Version Version
	Compat  CompatibilityMode
	Format  Format
	// Card is the card being written; codecs use it to inspect sibling properties.
	Card     *Card
	Warnings *Warnings
	// Depth is the nesting level of Card, zero for the top-level card.
	Depth int
	// EmbedCard renders an embedded card as a single value.
	// It is nil when the format cannot embed cards.
	EmbedCard func(c *Card) (string, error)
}

// Warn records a warning about the property.
func (ctx *WriteContext) Warn(name, format string, args ...any) {
	if ctx == nil {
		return
	}
	ctx.Warnings.Add(util.UCase(name)+": "+format, args...)
}

func (ctx *WriteContext) version() Version {
	if ctx == nil || !ctx.Version.IsValid() {
		return V40
	}
	return ctx.Version
}

// ParseContext carries the state of a single unmarshal operation into codec calls.
type ParseContext struct {
	Version  Version
	Compat   CompatibilityMode
	Format   Format
	Warnings *Warnings
	// Strict turns unparseable properties into errors.
	Strict bool
	// Depth is the nesting level of the card being read, zero for the top-level card.
	Depth int
	// ParseEmbedded reads an embedded card from an unescaped text value.
	// It is nil when embedded cards cannot be read.
	ParseEmbedded func(s string) (*Card, error)
}

// Warn records a warning about the property.
func (ctx *ParseContext) Warn(name, format string, args ...any) {
	if ctx == nil {
		return
	}
	ctx.Warnings.Add(util.UCase(name)+": "+format, args...)
}

func (ctx *ParseContext) version() Version {
	if ctx == nil || !ctx.Version.IsValid() {
		return V40
	}
	return ctx.Version
}
