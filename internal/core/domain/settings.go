package domain

const unknownDescription = "Unknown"

// DefaultDocumentKey is the storage key the document lives under.
const DefaultDocumentKey = "notekeeperDB"

// StorageBackend selects the persistence medium for the document.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite keeps the document in a single-row SQLite key-value table.
	StorageSQLite StorageBackend = "sqlite"

	// StorageFile keeps the document as a JSON file in the data directory.
	StorageFile StorageBackend = "file"

	// StorageMemory keeps the document in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageFile, StorageMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if the backend survives process restarts.
func (b StorageBackend) IsPersistent() bool {
	return b == StorageSQLite || b == StorageFile
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (single document row)"
	case StorageFile:
		return "File (JSON document on disk)"
	case StorageMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// IDStrategy selects how notebook and note identifiers are generated.
type IDStrategy string

// Available identifier strategies.
const (
	// IDStrategyTimestamp derives identifiers from the current
	// high-resolution timestamp. Two creations within the same clock tick
	// collide; this is an accepted limitation for human-paced use.
	IDStrategyTimestamp IDStrategy = "timestamp"

	// IDStrategyUUID uses random version 4 UUIDs.
	IDStrategyUUID IDStrategy = "uuid"
)

// IsValid returns true if the strategy is recognised.
func (s IDStrategy) IsValid() bool {
	return s == IDStrategyTimestamp || s == IDStrategyUUID
}

// String returns the string representation.
func (s IDStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s IDStrategy) Description() string {
	switch s {
	case IDStrategyTimestamp:
		return "Timestamp (nanosecond clock)"
	case IDStrategyUUID:
		return "UUID (random v4)"
	default:
		return unknownDescription
	}
}

// StorageSettings configures where the document is persisted.
type StorageSettings struct {
	// Backend is the persistence medium.
	Backend StorageBackend

	// DataDir is the directory used by file and sqlite backends.
	// Empty means the default under the user's home directory.
	DataDir string

	// Key is the key the document is stored under.
	Key string
}

// IDSettings configures identifier generation.
type IDSettings struct {
	Strategy IDStrategy
}

// UISettings configures the terminal UI.
type UISettings struct {
	// Watch reloads the notebook list when another process rewrites the
	// document. Only supported by the file backend.
	Watch bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storage StorageSettings
	IDs     IDSettings
	UI      UISettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
			Key:     DefaultDocumentKey,
		},
		IDs: IDSettings{
			Strategy: IDStrategyTimestamp,
		},
	}
}

// Validate checks the settings for unrecognised values.
func (s *AppSettings) Validate() error {
	if !s.Storage.Backend.IsValid() {
		return ErrInvalidInput
	}
	if s.Storage.Key == "" {
		return ErrInvalidInput
	}
	if !s.IDs.Strategy.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
