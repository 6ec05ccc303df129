package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

// SessionService is the single source of truth for authentication state. It
// keeps an in-memory copy of the credential and identity and mirrors every
// mutation to the repository before the new value becomes readable, so a
// restart mid-operation never observes a half-applied session.
//
// It also implements ports.SessionInvalidator; the request pipeline is bound
// to it at wiring time, which keeps the 401 teardown path and the session's
// own cache in lockstep.
type SessionService struct {
	repo    ports.SessionRepository
	fetcher ports.IdentityFetcher
	logger  *zap.Logger

	mu         sync.RWMutex
	credential string
	identity   *domain.User
}

var _ ports.SessionInvalidator = (*SessionService)(nil)

// NewSessionService restores any persisted session. Storage failures during
// restore degrade to an unauthenticated session rather than failing startup.
func NewSessionService(ctx context.Context, repo ports.SessionRepository, fetcher ports.IdentityFetcher, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SessionService{repo: repo, fetcher: fetcher, logger: logger}

	credential, err := repo.LoadCredential(ctx)
	if err != nil {
		logger.Warn("restore credential", zap.Error(err))
	}
	identity, err := repo.LoadIdentity(ctx)
	if err != nil {
		logger.Warn("restore identity", zap.Error(err))
	}

	s.credential = credential
	s.identity = identity
	return s
}

func (s *SessionService) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Identity returns a copy of the cached identity, or nil before hydration.
func (s *SessionService) Identity() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	user := *s.identity
	return &user
}

func (s *SessionService) IsAuthenticated() bool {
	return s.Credential() != ""
}

func (s *SessionService) IsAdmin() bool {
	user := s.Identity()
	return user != nil && user.IsAdmin()
}

func (s *SessionService) Username() string {
	user := s.Identity()
	if user == nil {
		return ""
	}
	return user.Username
}

// SetCredential stores the opaque bearer token. The token contents are never
// validated client-side.
func (s *SessionService) SetCredential(ctx context.Context, token string) error {
	if err := s.repo.SaveCredential(ctx, token); err != nil {
		return fmt.Errorf("set credential: %w", err)
	}

	s.mu.Lock()
	s.credential = token
	s.mu.Unlock()
	return nil
}

func (s *SessionService) SetIdentity(ctx context.Context, user domain.User) error {
	if err := s.repo.SaveIdentity(ctx, user); err != nil {
		return fmt.Errorf("set identity: %w", err)
	}

	s.mu.Lock()
	s.identity = &user
	s.mu.Unlock()
	return nil
}

// ClearCredential removes the credential from storage and memory. Safe to
// call on an already-empty session.
func (s *SessionService) ClearCredential(ctx context.Context) error {
	if err := s.repo.DeleteCredential(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}

	s.mu.Lock()
	s.credential = ""
	s.mu.Unlock()
	return nil
}

func (s *SessionService) ClearIdentity(ctx context.Context) error {
	if err := s.repo.DeleteIdentity(ctx); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}

	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	return nil
}

// Logout tears the local session down. It never contacts the network and
// always leaves the session unauthenticated; storage failures are logged, and
// the in-memory state is cleared regardless.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.ClearCredential(ctx); err != nil {
		s.logger.Warn("logout", zap.Error(err))
	}
	if err := s.ClearIdentity(ctx); err != nil {
		s.logger.Warn("logout", zap.Error(err))
	}

	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()
}

// FetchIdentity hydrates the identity from the server. Without a credential
// it returns (nil, nil) and issues no network call. Any fetch failure,
// including an authentication rejection, logs the session out so a credential
// never survives a known-invalid session.
func (s *SessionService) FetchIdentity(ctx context.Context) (*domain.User, error) {
	if s.Credential() == "" {
		return nil, nil
	}

	user, err := s.fetcher.CurrentUser(ctx)
	if err != nil {
		s.logger.Info("identity fetch failed, logging out", zap.Error(err))
		s.Logout(ctx)
		return nil, fmt.Errorf("fetch identity: %w", err)
	}

	if err := s.SetIdentity(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAuthenticated reports whether the session is usable, hydrating the
// identity first when only the credential is present. With no credential it
// returns false without side effects.
func (s *SessionService) EnsureAuthenticated(ctx context.Context) bool {
	if s.Credential() == "" {
		return false
	}
	if s.Identity() != nil {
		return true
	}

	user, err := s.FetchIdentity(ctx)
	return err == nil && user != nil
}
