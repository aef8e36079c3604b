// Package ioutil provides line-oriented I/O helpers for the text vCard format.
package ioutil

//go:generate go tool errtrace -w .

import (
	"io"
	"unicode/utf8"

	"braces.dev/errtrace"
)

// FoldWriter writes logical lines to an underlying writer, folding long lines
// by inserting a newline followed by the indent string.
// Once a write fails, all subsequent writes are no-ops returning the first error.
type FoldWriter struct {
	w       io.Writer
	lineLen int
	indent  string
	newline string
	num     int
	err     error
}

// NewFoldWriter creates a new FoldWriter.
// A lineLen <= 0 disables folding.
func NewFoldWriter(w io.Writer, lineLen int, indent, newline string) *FoldWriter {
	if newline == "" {
		newline = "\r\n"
	}
	if indent == "" {
		indent = " "
	}
	return &FoldWriter{w: w, lineLen: lineLen, indent: indent, newline: newline}
}

// Newline returns the newline sequence used by the writer.
func (fw *FoldWriter) Newline() string { return fw.newline }

// WriteLine writes s folded and terminated by the newline sequence.
func (fw *FoldWriter) WriteLine(s string) error {
	if fw.err != nil {
		return errtrace.Wrap(fw.err)
	}
	if fw.lineLen <= 0 || len(s) <= fw.lineLen {
		fw.write(s)
		fw.write(fw.newline)
		return errtrace.Wrap(fw.err)
	}

	limit := fw.lineLen
	for len(s) > 0 {
		n := limit
		if n >= len(s) {
			n = len(s)
		} else {
			// do not split a multibyte UTF-8 sequence
			for n > 0 && !utf8.RuneStart(s[n]) {
				n--
			}
			if n == 0 {
				n = limit
			}
		}
		fw.write(s[:n])
		fw.write(fw.newline)
		s = s[n:]
		if len(s) > 0 {
			fw.write(fw.indent)
			limit = fw.lineLen - len(fw.indent)
		}
	}
	return errtrace.Wrap(fw.err)
}

// WriteRaw writes s as is, without folding or line termination.
func (fw *FoldWriter) WriteRaw(s string) error {
	fw.write(s)
	return errtrace.Wrap(fw.err)
}

func (fw *FoldWriter) write(s string) {
	if fw.err != nil {
		return
	}
	n, err := io.WriteString(fw.w, s)
	fw.num += n
	if err != nil {
		fw.err = errtrace.Wrap(err)
	}
}

// Result returns the total number of bytes written and any error encountered.
func (fw *FoldWriter) Result() (num int, err error) {
	return fw.num, errtrace.Wrap(fw.err)
}
