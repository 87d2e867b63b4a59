package interview

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 24 * time.Hour

// Manager mantém as sessões ativas em memória, uma por ID. Sessões de
// entrevista nunca são persistidas; sessões inativas são removidas
// periodicamente.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	catalog   *Catalog
	evaluator *Evaluator
	cfg       SessionConfig
}

func NewManager(catalog *Catalog, evaluator *Evaluator, cfg SessionConfig) *Manager {
	m := &Manager{
		sessions:  make(map[uuid.UUID]*Session),
		catalog:   catalog,
		evaluator: evaluator,
		cfg:       cfg,
	}
	m.startCleanup()
	return m
}

func (m *Manager) startCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			m.cleanupInactiveSessions()
		}
	}()
}

func (m *Manager) cleanupInactiveSessions() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-sessionTTL)
	for id, session := range m.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

func (m *Manager) Create(category string) (uuid.UUID, *Session, error) {
	session, err := NewSession(m.catalog, m.evaluator, category, m.cfg)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()
	return id, session, nil
}

func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *Manager) Catalog() *Catalog {
	return m.catalog
}
