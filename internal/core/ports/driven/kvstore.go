package driven

import "context"

// KeyValueStore is the persistence medium for the notebook document.
// Each key holds one serialised value that is replaced wholesale on Set.
// Implementations must make a single Set atomic: a failed write leaves the
// previous value intact.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// found is false (with a nil error) when the key has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Path returns a human-readable location of the medium.
	Path() string
}

// Watcher is implemented by media that can report writes made by other
// processes. It is optional; callers type-assert for it.
type Watcher interface {
	// Watch calls onChange after the medium is modified externally.
	// It blocks until ctx is cancelled or watching fails.
	Watch(ctx context.Context, onChange func()) error
}
