// Package viewtree keeps a rendered notebook/note tree consistent with the
// notebook service.
//
// The tree is a plain value: a sidebar of navigation nodes (one per
// notebook, at most one active), a panel title, and a panel holding either
// note cards or the empty-state placeholder. After every service call the
// caller wraps the result in an Event and passes it to Apply, which returns
// the patched tree without touching the input. Apply never calls the
// service; when an edit activates a different notebook it returns an Intent
// asking the caller to load that notebook's notes and apply NotesReset.
//
// The package has no rendering dependency so it can be tested directly.
package viewtree
