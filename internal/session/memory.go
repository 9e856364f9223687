package session

import (
	"context"
	"sync"
	"time"

	"gigboard/internal/common"
	"gigboard/internal/domain/session"
)

// MemoryStore backs sessions when no Redis address is configured. Suitable
// for single-process deployments and tests; sessions do not survive restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]session.Session)}
}

func (s *MemoryStore) Save(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, common.NewError(common.CodeNotFound, "session not found", nil)
	}
	copied := sess
	return &copied, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
