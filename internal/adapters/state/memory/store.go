package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

// Store is an in-process StateStore. Used by tests and by --no-persist runs,
// where the session intentionally does not survive the process.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ ports.StateStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{values: map[string]string{}}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("state key %q: %w", key, domain.ErrStateKeyNotFound)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
