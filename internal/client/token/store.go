// Package token persists the bearer credential for the platform API.
// The store is a single shared cell: at most one credential exists at a
// time, and its absence means "not authenticated".
package token

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const credentialsFile = "credentials.json"

// ErrEmptyToken is returned by Set when given an empty credential.
var ErrEmptyToken = errors.New("token: refusing to store empty credential")

// credentials is the on-disk shape. The token is opaque to this layer;
// no part of it is inspected or validated.
type credentials struct {
	Token string `json:"token"`
}

// Store holds one bearer credential in a JSON file, surviving process
// restarts. Writes go through a temp file and rename so a crash never
// leaves a half-written credential behind.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a Store rooted at dir. The directory is created lazily
// on the first Set.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, credentialsFile)}
}

// DefaultDir returns the per-user directory credentials are kept in.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "fitadmin"), nil
}

// Get reads the persisted credential. A missing, unreadable, or corrupt
// file reads as absent; Get never fails outward.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var c credentials
	if err := json.Unmarshal(data, &c); err != nil || c.Token == "" {
		return "", false
	}
	return c.Token, true
}

// Set persists tok, overwriting any prior credential.
func (s *Store) Set(tok string) error {
	if tok == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(credentials{Token: tok})
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the persisted credential. Safe to call when none exists.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
