package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SessionStore is a small key/value scratch store on local disk. The
// auth service keeps exactly two keys in it (the current user and the
// wallet material), mirroring the device-storage session the mobile
// client kept.
type SessionStore struct {
	dir string
}

// NewSessionStore creates the store directory if needed
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &SessionStore{dir: dir}, nil
}

// SetItem stores value under key as JSON
func (s *SessionStore) SetItem(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetItem loads the value stored under key into out. It returns false
// when the key is absent.
func (s *SessionStore) GetItem(key string, out interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

// RemoveItem deletes the key; removing an absent key is not an error
func (s *SessionStore) RemoveItem(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (s *SessionStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
