package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the session as a small JSON file, the CLI counterpart
// of the browser's durable key-value storage. Reads always go to disk so a
// login in one process is visible to the next.
type FileStore struct {
	path string
}

type fileState struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath resolves the session file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "payrollctl", "session.json"), nil
}

func (f *FileStore) load() fileState {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fileState{}
	}
	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		return fileState{}
	}
	return st
}

func (f *FileStore) Token() string { return f.load().Token }
func (f *FileStore) Role() Role    { return f.load().Role }

// Set writes token and role in one atomic rename so no reader can observe
// one without the other.
func (f *FileStore) Set(token string, role Role) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	data, err := json.Marshal(fileState{Token: token, Role: role})
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is already cleared.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
