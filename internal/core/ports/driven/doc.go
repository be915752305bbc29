// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KeyValueStore: Persistence medium holding the serialised document
//   - IDGenerator: Identifier source for notebooks and notes
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - Watcher: Change notification from the persistence medium. Media that
//     cannot observe external writes simply do not implement it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
