package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Manager owns the live sessions of a host, keyed by uuid.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	clock    Clock
}

// NewManager returns an empty manager creating sessions with opts.
func NewManager(opts Options, clock Clock) *Manager {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Manager{sessions: make(map[string]*Session), opts: opts, clock: clock}
}

// Options returns the options new sessions start from.
func (m *Manager) Options() Options { return m.opts }

// Clock is the clock sessions read today and now from.
func (m *Manager) Clock() Clock { return m.clock }

// Create starts a session set to today and now.
func (m *Manager) Create() *Session {
	s := New(uuid.NewString(), m.opts, m.clock)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	n := len(m.sessions)
	m.mu.Unlock()
	log.Debugw("session created", "session", s.ID(), "sessions", n)
	return s
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// Delete ends the session with id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	log.Debugw("session deleted", "session", id)
	return nil
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs lists live session ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	sort.Strings(ids)
	return ids
}
