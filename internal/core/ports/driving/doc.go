// Package driving declares what the CLI, the TUI and the MCP server may ask
// of the core. The services package implements these interfaces.
package driving
