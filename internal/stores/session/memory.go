package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore provides an in-memory implementation of Store for testing
type InMemoryStore struct {
	sessions map[uuid.UUID]*Session
	mutex    sync.RWMutex
}

// NewInMemoryStore creates a new in-memory session store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// CreateSession creates a new session in memory
func (s *InMemoryStore) CreateSession(ctx context.Context, userID string, expireDate time.Time) (*Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session := &Session{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		UserID:     userID,
		ExpireDate: expireDate,
	}

	s.sessions[session.ID] = session

	c := *session
	return &c, nil
}

// CountExpired returns the number of sessions expired as of now
func (s *InMemoryStore) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var count int64
	for _, session := range s.sessions {
		if session.Expired(now) {
			count++
		}
	}
	return count, nil
}

// DeleteExpired removes all expired sessions and returns the number removed
func (s *InMemoryStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var count int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// CountActive returns the number of sessions still valid as of now
func (s *InMemoryStore) CountActive(ctx context.Context, now time.Time) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var count int64
	for _, session := range s.sessions {
		if !session.Expired(now) {
			count++
		}
	}
	return count, nil
}
