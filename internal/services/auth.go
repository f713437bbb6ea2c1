package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"github.com/dmitrijs2005/taskboard/internal/stores"
)

// TokenIssuer mints a session token for a user.
type TokenIssuer interface {
	Issue(u models.User) (string, error)
}

// AuthService implements registration, login and the single active session.
type AuthService struct {
	mu          sync.Mutex
	credentials *stores.CredentialStore
	sessions    *stores.SessionStore
	tokens      TokenIssuer
	opts        options
}

func NewAuthService(s kv.Storage, tokens TokenIssuer, opts ...Option) *AuthService {
	o := buildOptions(opts)
	o.logger = o.logger.With("module", "auth")
	return &AuthService{
		credentials: stores.NewCredentialStore(s),
		sessions:    stores.NewSessionStore(s),
		tokens:      tokens,
		opts:        o,
	}
}

// Register creates an account and makes it the active session.
func (s *AuthService) Register(ctx context.Context, username, fullName, password string) (*models.Session, error) {
	if err := sleep(ctx, s.opts.latency.Auth); err != nil {
		return nil, err
	}
	if blank(username) || blank(fullName) || blank(password) {
		return nil, fmt.Errorf("%w: username, full name and password are required", common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{ID: s.opts.newID(), Username: username, FullName: fullName}
	err := s.credentials.Add(ctx, models.Credential{User: user, Password: password})
	if errors.Is(err, common.ErrDuplicateUsername) {
		s.opts.logger.Info(ctx, "registration rejected", "username", username)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	sess, err := s.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.opts.logger.Info(ctx, "user registered", "user_id", user.ID)
	return sess, nil
}

// Login replaces the active session with a new one for the matching user.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if err := sleep(ctx, s.opts.latency.Auth); err != nil {
		return nil, err
	}
	if blank(username) || blank(password) {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.credentials.Match(ctx, username, password)
	if err != nil {
		return nil, err
	}
	sess, err := s.startSession(ctx, *user)
	if err != nil {
		return nil, err
	}
	s.opts.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return sess, nil
}

// GetSession returns the active session or (nil, nil).
func (s *AuthService) GetSession(ctx context.Context) (*models.Session, error) {
	if err := sleep(ctx, s.opts.latency.Auth); err != nil {
		return nil, err
	}
	return s.sessions.Get(ctx)
}

// Logout drops the active session. Calling it without one is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := sleep(ctx, s.opts.latency.Logout); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Clear(ctx)
}

func (s *AuthService) startSession(ctx context.Context, u models.User) (*models.Session, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	sess := models.Session{User: u, Token: token}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
