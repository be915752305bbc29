package driven

// ConfigStore holds application settings as flat dotted keys
// such as "storage.backend".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when unset or not a string.
	GetString(key string) string

	// GetBool returns the value as a bool, or false when unset or not a bool.
	GetBool(key string) bool

	// Set stores a value in memory. Call Save to persist it.
	Set(key string, value any) error

	// Save persists the current values.
	Save() error

	// Load replaces the current values with what is persisted.
	Load() error

	// Path returns where the values are persisted.
	Path() string
}
