package utils

import "github.com/google/uuid"

// NewID returns a unique connection identifier. UUIDs are never reused
// within a process lifetime, which the relay relies on.
func NewID() string {
	return uuid.NewString()
}
