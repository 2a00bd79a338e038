package observability

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// spanIDBytes is the W3C trace-context span ID size; trace IDs use a full UUID (16 bytes).
const spanIDBytes = 8

// GenerateTraceID returns a random 32 hex char trace ID.
func GenerateTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// GenerateSpanID returns a random 16 hex char span ID.
func GenerateSpanID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:spanIDBytes])
}

// GenerateRequestID returns a random UUID string.
func GenerateRequestID() string {
	return uuid.NewString()
}
