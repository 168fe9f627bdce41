package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager holds the live sessions, keyed by UUID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	tolerance float64
	minSep    float64
}

// NewManager builds a session manager with the configured matching tolerance
// and minimum handle separation.
func NewManager(toleranceRatio, minSeparationHz float64) *Manager {
	return &Manager{
		sessions:  make(map[uuid.UUID]*Session),
		tolerance: toleranceRatio,
		minSep:    minSeparationHz,
	}
}

// Create starts a new session with the default band.
func (m *Manager) Create() *Session {
	s := newSession(m.tolerance, m.minSep)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for id, if it exists.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	return s, ok
}

// Delete drops a session and its in-memory series. Returns false when the
// session does not exist.
func (m *Manager) Delete(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}
