// Package jcard reads and writes cards in the JSON encoding of vCard 4.0, jCard (RFC 7095).
//
// A card is a JSON array of the "vcard" string and the array of properties.
// Each property is an array of the lower-case name, the parameters object,
// the value data type and one or more values:
//
//	["vcard", [
//	  ["version", {}, "text", "4.0"],
//	  ["fn", {}, "text", "John Doe"],
//	  ["n", {}, "text", ["Doe", "John", "", "", ""]],
//	  ["email", {"group": "item1", "type": "work"}, "text", "john@example.com"]
//	]]
//
// Several cards are written as an array of cards. The reader accepts both
// forms and any sequence of them.
package jcard

//go:generate go tool errtrace -w .
