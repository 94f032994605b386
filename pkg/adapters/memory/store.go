package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// Store implements ports.CursorStore with an in-process map.
// Suitable for a single presenter process; use the redis store when
// sessions must survive restarts or be shared.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.State
}

// NewStore creates an empty in-memory cursor store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*domain.State)}
}

// Save persists a copy of the state, so callers can keep mutating
// theirs.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = state.Clone()
	return nil
}

// Load returns a copy of the stored state.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// List returns known session IDs in deterministic order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
