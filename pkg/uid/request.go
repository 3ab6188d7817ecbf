package uid

import "github.com/google/uuid"

// NewRequestID returns a random v4 UUID used to tag one request.
func NewRequestID() string {
	return uuid.NewString()
}

// IsRequestID reports whether s looks like an id produced by NewRequestID.
func IsRequestID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
