package vcard

import (
	"github.com/google/uuid"
)

// NewUID generates a random UID value in the "urn:uuid:" form.
func NewUID() string {
	return uuid.New().URN()
}
