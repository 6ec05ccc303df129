package ports

import "context"

// StateStore is durable, synchronous, string-keyed storage that survives
// process restarts. Implementations return domain.ErrStateKeyNotFound from
// Get when a key is absent; callers treat that as a valid empty state, never
// as a failure. Delete is idempotent.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
