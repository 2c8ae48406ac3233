package flow

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kbukum/pipekit/placeholder"
)

// Session is the process-wide state shared by the reader, filter(s) and
// writer of one pipeline run. Nested sub-flows reuse the parent session.
type Session struct {
	// ID is the session identifier.
	ID string
	// Storage passes data between disjoint pipeline stages.
	Storage *Storage
	// Placeholders is the mutable placeholder table owned by this run.
	Placeholders *placeholder.Table

	stopped atomic.Bool
}

// NewSession creates a new session for one pipeline invocation.
func NewSession() *Session {
	return &Session{
		ID:           uuid.NewString(),
		Storage:      NewStorage(),
		Placeholders: placeholder.NewTable(),
	}
}

// Stop requests a graceful shutdown. Long-running readers check the
// flag between poll intervals; the core never sets it itself.
func (s *Session) Stop() { s.stopped.Store(true) }

// Stopped reports whether a stop was requested.
func (s *Session) Stopped() bool { return s.stopped.Load() }

// ExpandPlaceholders expands {name} placeholders in s using the
// session's table.
func (s *Session) ExpandPlaceholders(value string) string {
	return s.Placeholders.Expand(value)
}

// Storage is a key-value store for passing data between stages of one
// pipeline run.
type Storage struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewStorage creates a new empty Storage.
func NewStorage() *Storage {
	return &Storage{data: make(map[string]any)}
}

// Get retrieves a value by key. Returns false if the key does not exist.
func (s *Storage) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores a value by key.
func (s *Storage) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes a key.
func (s *Storage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Keys returns the stored keys in unspecified order.
func (s *Storage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}
