package testutil

// ConstantRunID returns the same run ID on every call.
//
// Golden tests use it so every run of a command prints the same ID.
//
// Stateless; safe for concurrent use.
type ConstantRunID struct {
	id string
}

// NewConstantRunID returns a generator for id, or "test-run-default" when
// id is empty.
func NewConstantRunID(id string) *ConstantRunID {
	if id == "" {
		id = "test-run-default"
	}
	return &ConstantRunID{id: id}
}

// Generate returns the constant run ID.
func (g *ConstantRunID) Generate() string {
	return g.id
}
