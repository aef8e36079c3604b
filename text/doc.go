// Package text reads and writes cards in the classic delimited text format
// of vCard 2.1 (versit), 3.0 (RFC 2426) and 4.0 (RFC 6350).
//
// A [Writer] renders cards as content lines folded at 75 octets. A [Reader]
// unfolds lines, detects the version of every card from its VERSION property
// and decodes vCard 2.1 quoted-printable values.
//
// Both collect non-fatal problems as warnings instead of failing:
//
//	w := text.NewWriter(os.Stdout, &text.WriterOptions{Version: vcard.V30})
//	if err := w.Write(card); err != nil {
//		return err
//	}
//	for _, msg := range w.Warnings() {
//		fmt.Println(msg)
//	}
package text

//go:generate go tool errtrace -w .
