// Package services holds notekeeper's application logic.
//
// NotebookService reads the whole notebook document from a
// driven.KeyValueStore, changes it and writes it back on every call.
// SettingsService maps AppSettings to and from a driven.ConfigStore.
package services
