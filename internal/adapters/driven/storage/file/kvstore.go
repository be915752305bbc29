package file

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
	"github.com/custodia-labs/notekeeper/internal/logger"
)

// Ensure KeyValueStore implements the interfaces.
var (
	_ driven.KeyValueStore = (*KeyValueStore)(nil)
	_ driven.Watcher       = (*KeyValueStore)(nil)
)

const fileExt = ".json"

// KeyValueStore stores one JSON file per key in a directory.
type KeyValueStore struct {
	mu  sync.RWMutex
	dir string

	// lastWritten remembers what this process wrote per key, so the
	// watcher can tell its own writes from external ones.
	lastWritten map[string][]byte
}

// NewKeyValueStore creates a file store rooted at dataDir.
// If dataDir is empty, defaults to ~/.notekeeper/data.
func NewKeyValueStore(dataDir string) (*KeyValueStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".notekeeper", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &KeyValueStore{
		dir:         dataDir,
		lastWritten: make(map[string][]byte),
	}, nil
}

// Get reads the file for key.
func (s *KeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, true, nil
}

// Set replaces the file for key via write-to-temp and rename.
func (s *KeyValueStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	s.lastWritten[key] = append([]byte(nil), value...)
	return nil
}

// Path returns the data directory.
func (s *KeyValueStore) Path() string {
	return s.dir
}

// Watch calls onChange whenever a key file is rewritten by someone other
// than this store. It blocks until ctx is done.
func (s *KeyValueStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: Set replaces the file by
	// rename, which would drop a watch on the old inode.
	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}
	logger.Debug("watching %s for external writes", s.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if s.isExternalWrite(event) {
				logger.Debug("external write detected: %s", event.Name)
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// isExternalWrite reports whether the event changed a key file to content
// this store did not write itself.
func (s *KeyValueStore) isExternalWrite(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, fileExt) {
		return false
	}
	key := strings.TrimSuffix(base, fileExt)

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, base))
	if err != nil {
		// Removed or mid-rename; the following event carries the content.
		return false
	}
	return !bytes.Equal(data, s.lastWritten[key])
}

// keyPath maps a key to its file, rejecting keys that would escape dir.
func (s *KeyValueStore) keyPath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("storage key %q: %w", key, domain.ErrInvalidInput)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}
