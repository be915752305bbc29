// Package domain defines the core business entities for notekeeper.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The root structure persisted under a single key
//   - Notebook: A named, ordered collection of notes
//   - Note: A titled text owned by exactly one notebook
//   - NoteFields: A partial note update
//
// It also holds the pure helpers shared by the store and the views:
// lookups by ID, invariant validation and relative-time formatting.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
