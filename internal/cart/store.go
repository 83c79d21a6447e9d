package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// Store persists cart lines between sessions.
type Store interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// MemoryStore keeps lines in memory, for tests and ephemeral carts.
type MemoryStore struct {
	mu    sync.Mutex
	lines []Line
	Err   error
}

// Load returns the stored lines.
func (s *MemoryStore) Load() ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

// Save replaces the stored lines.
func (s *MemoryStore) Save(lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
	return nil
}

// FileStore persists lines as a JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads lines from disk. A missing file yields an empty cart.
func (s *FileStore) Load() ([]Line, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save writes lines to disk.
func (s *FileStore) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
