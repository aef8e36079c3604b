// Package hcard reads cards from HTML pages marked up with the hCard microformat.
//
// Every element with the "vcard" class that is not nested into another card is a card.
// Properties are descendants with class names matching registered property names,
// such as "fn", "n", "tel", "adr" or "email"; "type" and "value" sub-elements refine them.
// A nested element with both the "agent" and "vcard" classes becomes an embedded card
// of an AGENT property.
//
// Writing hCard is not supported.
package hcard

//go:generate go tool errtrace -w .
