package utils

import (
	"github.com/google/uuid"
)

func GenerateUUIDString() string {
	id := uuid.New()
	return id.String()
}

// ShortID is the first block of a fresh UUID, enough to tell
// self-play games apart in a log.
func ShortID() string {
	return GenerateUUIDString()[:8]
}
