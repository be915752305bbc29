// Package file provides a filesystem-backed driven.KeyValueStore.
//
// Each key is stored as <dir>/<key>.json. Writes go to a temporary file in
// the same directory which is then renamed over the target, so readers see
// either the previous document or the new one, never a partial write.
//
// The store also implements driven.Watcher using fsnotify, reporting
// writes made by other processes (for example a second notekeeper TUI).
package file
