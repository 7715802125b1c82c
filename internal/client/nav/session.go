package nav

import (
	"encoding/json"
	"os"
	"sync"
)

// SessionStore persists values for the lifetime of the user's session only.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// FileSessionStore keeps the session state in a small JSON file, normally
// under the OS temp directory so the session dies with the machine, not with
// the process. The whole map is rewritten on every Set; corrupt or missing
// files load as empty.
type FileSessionStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileSessionStore(path string) *FileSessionStore {
	s := &FileSessionStore{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil || values == nil {
		return s
	}
	s.values = values
	return s
}

func (s *FileSessionStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileSessionStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value

	data, err := json.Marshal(s.values)
	if err != nil {
		return
	}
	// Best effort: losing the session file only costs the restored tab.
	_ = os.WriteFile(s.path, data, 0o600)
}

// MemorySessionStore is an in-memory SessionStore for tests.
type MemorySessionStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: map[string]string{}}
}

func (s *MemorySessionStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySessionStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
