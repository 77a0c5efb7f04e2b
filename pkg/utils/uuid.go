package utils

import "github.com/google/uuid"

// NewChordID returns a fresh random identifier for a custom chord.
func NewChordID() string {
	return uuid.NewString()
}

// IsChordID reports whether id looks like an identifier from NewChordID.
func IsChordID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
