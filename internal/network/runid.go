package network

import "github.com/google/uuid"

// RunIDGenerator produces the identifier attached to one trace run. The ID
// ends up in JSON output and log lines so runs can be told apart.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator returns time-ordered UUIDv7 run IDs, so sorting by ID
// sorts by start time.
//
// Stateless; safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7. It panics only if the system
// random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
