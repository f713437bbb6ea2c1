package stores

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/models"
)

// SessionStore holds at most one session under common.SessionKey.
type SessionStore struct {
	kv kv.Storage
}

func NewSessionStore(s kv.Storage) *SessionStore {
	return &SessionStore{kv: s}
}

// Get returns the active session or (nil, nil).
func (s *SessionStore) Get(ctx context.Context) (*models.Session, error) {
	return load[*models.Session](ctx, s.kv, common.SessionKey)
}

// Put replaces the active session.
func (s *SessionStore) Put(ctx context.Context, sess models.Session) error {
	b, err := encode(common.SessionKey, sess)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, common.SessionKey, b); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
