package ports

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

// SessionInvalidator is the narrow teardown capability the request pipeline
// holds instead of a compile-time dependency on the session service. The
// concrete session service is bound at process wiring time; both clears must
// be idempotent and must clear storage and any in-memory cache together.
type SessionInvalidator interface {
	ClearCredential(ctx context.Context) error
	ClearIdentity(ctx context.Context) error
}

// IdentityFetcher is the session service's view of the network layer: the
// remote "who am I" call. The api client implements it, which keeps the
// session package free of an import cycle with the pipeline.
type IdentityFetcher interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}
