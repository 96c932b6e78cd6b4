// Package session provides conversation history storage for the chat hosts.
// History belongs to the host; the retrieval engine only ever reads the
// slice it is handed.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/forgelight-studio/concierge/internal/rag"
)

// ErrNotFound indicates an unknown or expired session.
var ErrNotFound = errors.New("session not found")

// Store defines conversation history storage.
type Store interface {
	// Append adds one turn to a session, creating it if needed.
	Append(ctx context.Context, sessionID string, msg rag.Message) error
	// History returns the session's turns in order. Unknown sessions return
	// ErrNotFound.
	History(ctx context.Context, sessionID string) ([]rag.Message, error)
	// Clear removes a session.
	Clear(ctx context.Context, sessionID string) error
	// Close releases store resources.
	Close() error
}

// MemoryStore is an in-process Store with TTL expiry. Suitable for a single
// instance; use the Redis store when running more than one.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]*memorySession
	ttl        time.Duration
	maxHistory int
	now        func() time.Time
}

type memorySession struct {
	messages []rag.Message
	touched  time.Time
}

// MemoryConfig holds memory store settings.
type MemoryConfig struct {
	TTL        time.Duration
	MaxHistory int
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(cfg MemoryConfig) *MemoryStore {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 50
	}
	return &MemoryStore{
		sessions:   make(map[string]*memorySession),
		ttl:        cfg.TTL,
		maxHistory: cfg.MaxHistory,
		now:        time.Now,
	}
}

// Append adds one turn to a session.
func (s *MemoryStore) Append(_ context.Context, sessionID string, msg rag.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &memorySession{}
		s.sessions[sessionID] = sess
	}

	sess.messages = append(sess.messages, msg)
	if len(sess.messages) > s.maxHistory {
		sess.messages = sess.messages[len(sess.messages)-s.maxHistory:]
	}
	sess.touched = s.now()
	return nil
}

// History returns the session's turns in order.
func (s *MemoryStore) History(_ context.Context, sessionID string) ([]rag.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok || s.now().Sub(sess.touched) > s.ttl {
		return nil, ErrNotFound
	}

	out := make([]rag.Message, len(sess.messages))
	copy(out, sess.messages)
	return out, nil
}

// Clear removes a session.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) evictExpiredLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
