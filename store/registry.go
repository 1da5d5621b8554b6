package store

import (
	"sync"

	"github.com/google/uuid"

	"rushed/models"
)

// Store is the in-memory session registry. Sessions are created with
// default criteria and live until the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session for the given client with default
// criteria (one adult, economy, hotel included, car excluded).
func (st *Store) Create(clientID string) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		ClientID: clientID,
		criteria: models.DefaultCriteria(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id, or nil.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}
