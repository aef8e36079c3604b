// Package vcard provides a model and a property marshalling framework for vCard
// contact records as defined in RFC 2425/2426 (vCard 2.1 and 3.0) and RFC 6350 (vCard 4.0).
//
// A [Card] is an ordered collection of properties. Each property type has a
// [Codec] that converts the typed value to and from every supported wire
// encoding, taking the target [Version] into account:
//
//   - the classic text format, see package [github.com/ghettovoice/vcard/text];
//   - xCard (RFC 6351), see package [github.com/ghettovoice/vcard/xcard];
//   - jCard (RFC 7095), see package [github.com/ghettovoice/vcard/jcard];
//   - hCard microformat (read only), see package [github.com/ghettovoice/vcard/hcard].
//
// # Codecs and the registry
//
// Codecs are looked up by property name in a [Registry]. The [DefaultRegistry]
// knows every standard property; names without a codec are handled as
// [RawProperty] values. Custom property types can be added with [Registry.Register]:
//
//	reg := vcard.DefaultRegistry().Clone()
//	reg.Register(myCodec)
//
// # Failure handling
//
// Codec operations never abort the whole document. A codec returns an error
// matching [ErrSkipProperty] when a property has nothing to write for the target
// version, and an error matching [ErrCannotParse] when the input of a single property
// is unusable. Readers and writers catch both, record a warning and continue.
// Degraded values, such as an unparseable date kept as text, add a warning
// without failing.
//
// # Versions
//
// The same in-memory card can be written as any version; the version is passed
// to every codec call and is never stored on properties:
//
//	c := vcard.New()
//	c.SetFormattedName("John Doe")
//	tel := vcard.NewTelephone("+1-555-555-1234")
//	tel.Params.SetPref(1)
//	c.Add(tel)
//
//	var sb strings.Builder
//	w := text.NewWriter(&sb, &text.WriterOptions{Version: vcard.V30})
//	err := w.Write(c)
package vcard

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=internal/mocks/codec.go -package=mocks . Codec
