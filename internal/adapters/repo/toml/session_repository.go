package toml

import (
	"context"
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

// SessionRepository maps the credential and identity snapshot onto two state
// keys. The credential is stored verbatim (it is opaque); the identity is a
// TOML document. An absent or undecodable snapshot is reported as an empty
// session, never as a failure.
type SessionRepository struct {
	state  ports.StateStore
	logger *zap.Logger
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(state ports.StateStore, logger *zap.Logger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRepository{state: state, logger: logger}
}

func (r *SessionRepository) LoadCredential(ctx context.Context) (string, error) {
	token, err := r.state.Get(ctx, domain.CredentialStateKey)
	if err != nil {
		if errors.Is(err, domain.ErrStateKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load credential: %w", err)
	}
	return token, nil
}

func (r *SessionRepository) SaveCredential(ctx context.Context, token string) error {
	if err := r.state.Put(ctx, domain.CredentialStateKey, token); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteCredential(ctx context.Context) error {
	if err := r.state.Delete(ctx, domain.CredentialStateKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (r *SessionRepository) LoadIdentity(ctx context.Context) (*domain.User, error) {
	raw, err := r.state.Get(ctx, domain.IdentityStateKey)
	if err != nil {
		if errors.Is(err, domain.ErrStateKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load identity: %w", err)
	}

	var snapshot identitySchema
	if err := toml.Unmarshal([]byte(raw), &snapshot); err != nil {
		r.logger.Warn("discarding corrupt identity snapshot", zap.Error(err))
		return nil, nil
	}
	snapshot.applyDefaults()
	if snapshot.Version > currentSchemaVersion {
		r.logger.Warn("discarding identity snapshot from newer schema",
			zap.Int("version", snapshot.Version))
		return nil, nil
	}

	user := fromUserSchema(snapshot.User)
	return &user, nil
}

func (r *SessionRepository) SaveIdentity(ctx context.Context, user domain.User) error {
	snapshot := identitySchema{Version: currentSchemaVersion, User: toUserSchema(user)}
	data, err := toml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	if err := r.state.Put(ctx, domain.IdentityStateKey, string(data)); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteIdentity(ctx context.Context) error {
	if err := r.state.Delete(ctx, domain.IdentityStateKey); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}
