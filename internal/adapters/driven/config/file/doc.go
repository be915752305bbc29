// Package file persists notekeeper settings as a TOML file.
//
// Settings are addressed by flat dotted keys ("storage.backend") in memory
// and written to disk as nested tables:
//
//	[storage]
//	backend = "file"
package file
