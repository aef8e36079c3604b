package vcard

import (
	"errors"

	"github.com/ghettovoice/vcard/internal/errorutil"
)

// Error is a string type that implements the error interface.
type Error = errorutil.Error

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrSkipProperty is returned by a codec when a property has no representable
	// value for the target version or encoding. The property is omitted.
	ErrSkipProperty Error = "skip property"
	// ErrCannotParse is returned by a codec when the input of a single property
	// cannot be unmarshalled.
	ErrCannotParse Error = "cannot parse property"
	// ErrMalformedInput is returned when the overall document structure is unreadable.
	ErrMalformedInput Error = "malformed input"
	// ErrUnsupportedVersion is returned for documents of an unknown version.
	ErrUnsupportedVersion Error = "unsupported version"
	// ErrNestingTooDeep is returned when embedded cards exceed the nesting limit.
	ErrNestingTooDeep Error = "nesting too deep"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// NewSkipPropertyError creates a new error with [ErrSkipProperty].
func NewSkipPropertyError(args ...any) error {
	return errorutil.NewWrapperError(ErrSkipProperty, args...) //errtrace:skip
}

// NewCannotParseError creates a new error with [ErrCannotParse].
func NewCannotParseError(args ...any) error {
	return errorutil.NewWrapperError(ErrCannotParse, args...) //errtrace:skip
}

// NewMalformedInputError creates a new error with [ErrMalformedInput].
func NewMalformedInputError(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// NewNestingTooDeepError creates a new error with [ErrNestingTooDeep].
func NewNestingTooDeepError(args ...any) error {
	return errorutil.NewWrapperError(ErrNestingTooDeep, args...) //errtrace:skip
}

// ErrorReason returns the human readable detail of a codec error,
// stripped of the sentinel prefix.
func ErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrSkipProperty):
		return errorutil.Reason(err, ErrSkipProperty)
	case errors.Is(err, ErrCannotParse):
		return errorutil.Reason(err, ErrCannotParse)
	default:
		return errorutil.Reason(err, nil)
	}
}
