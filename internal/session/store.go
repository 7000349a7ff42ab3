package session

import (
	"errors"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNotFound is returned when a session id does not resolve (unknown
// or evicted).
var ErrNotFound = errors.New("session not found")

// Store holds live sessions with LRU eviction; eviction is how idle
// sessions expire. The underlying cache is safe for concurrent use.
type Store struct {
	cache *lru.Cache[string, *Session]
}

// NewStore creates a Store capped at maxSessions.
func NewStore(maxSessions int) (*Store, error) {
	cache, err := lru.New[string, *Session](maxSessions)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Create registers a new session around the given source name.
func (st *Store) Create(sourceName string) *Session {
	s := newSession(uuid.NewString(), sourceName)
	st.cache.Add(s.ID, s)
	return s
}

// Get resolves a session id.
func (st *Store) Get(id string) (*Session, error) {
	s, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	return st.cache.Len()
}
