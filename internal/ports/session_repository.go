package ports

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

// SessionRepository persists the credential and the identity snapshot.
// Load operations report absence as zero values, not errors, and recover a
// corrupted identity snapshot by discarding it.
type SessionRepository interface {
	LoadCredential(ctx context.Context) (string, error)
	SaveCredential(ctx context.Context, token string) error
	DeleteCredential(ctx context.Context) error
	LoadIdentity(ctx context.Context) (*domain.User, error)
	SaveIdentity(ctx context.Context, user domain.User) error
	DeleteIdentity(ctx context.Context) error
}

// LedgerRepository persists the ordered view-history snapshot. Load returns
// (nil, nil) when no snapshot exists or the stored one cannot be decoded.
type LedgerRepository interface {
	Load(ctx context.Context) ([]domain.ViewEntry, error)
	Save(ctx context.Context, entries []domain.ViewEntry) error
}
