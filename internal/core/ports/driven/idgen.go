package driven

// IDGenerator produces identifiers for new notebooks and notes.
type IDGenerator interface {
	// NewID returns a fresh identifier.
	NewID() string
}
