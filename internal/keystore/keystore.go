// ABOUTME: File-backed key-value storage for the persisted session
// ABOUTME: Stores the token and serialized identity in one JSON file under XDG config

package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const fileName = "session.json"

// Store persists string keys in a single JSON file. Writes are
// read-modify-write of the whole file, so keys updated in one call are
// never observed half-written.
type Store struct {
	dir string
}

// New creates a store rooted at the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the config directory following the XDG spec.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "brightboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "brightboard")
}

func (s *Store) file() string {
	return filepath.Join(s.dir, fileName)
}

// load reads the current key map. A missing or unreadable file is treated
// as empty, never as an error.
func (s *Store) load() map[string]string {
	data, err := os.ReadFile(s.file())
	if err != nil {
		return map[string]string{}
	}

	var keys map[string]string
	if err := json.Unmarshal(data, &keys); err != nil {
		return map[string]string{}
	}
	return keys
}

func (s *Store) save(keys map[string]string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return err
	}

	// The file holds a bearer token, keep it owner-only.
	return os.WriteFile(s.file(), data, 0600)
}

// Get returns the value for key and whether it is present and non-empty.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.load()[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Put writes all given pairs in one file write.
func (s *Store) Put(pairs map[string]string) error {
	keys := s.load()
	for k, v := range pairs {
		keys[k] = v
	}
	return s.save(keys)
}

// Delete removes the given keys in one file write. Deleting absent keys is
// a no-op, so Delete is idempotent.
func (s *Store) Delete(names ...string) error {
	keys := s.load()
	changed := false
	for _, k := range names {
		if _, ok := keys[k]; ok {
			delete(keys, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(keys)
}
