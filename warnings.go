package vcard

import (
	"fmt"
)

// Warnings is an ordered list of non-fatal problems found during a single read or write.
type Warnings []string

// Add appends a formatted warning.
func (w *Warnings) Add(format string, args ...any) {
	if w == nil {
		return
	}
	*w = append(*w, fmt.Sprintf(format, args...))
}

// Merge appends warnings of a nested operation, each prefixed with prefix.
func (w *Warnings) Merge(prefix string, other Warnings) {
	if w == nil {
		return
	}
	for _, msg := range other {
		if prefix != "" {
			msg = prefix + ": " + msg
		}
		*w = append(*w, msg)
	}
}

// Len returns the number of warnings.
func (w *Warnings) Len() int {
	if w == nil {
		return 0
	}
	return len(*w)
}

// Reset clears the list.
func (w *Warnings) Reset() {
	if w != nil {
		*w = nil
	}
}
