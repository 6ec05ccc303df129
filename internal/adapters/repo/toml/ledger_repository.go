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

// LedgerRepository persists the full ordered view-history snapshot under a
// single state key. Decode failures discard the snapshot; the ledger service
// synthesizes a fresh one.
type LedgerRepository struct {
	state  ports.StateStore
	logger *zap.Logger
}

var _ ports.LedgerRepository = (*LedgerRepository)(nil)

func NewLedgerRepository(state ports.StateStore, logger *zap.Logger) *LedgerRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerRepository{state: state, logger: logger}
}

func (r *LedgerRepository) Load(ctx context.Context) ([]domain.ViewEntry, error) {
	raw, err := r.state.Get(ctx, domain.LedgerStateKey)
	if err != nil {
		if errors.Is(err, domain.ErrStateKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load view ledger: %w", err)
	}

	var snapshot ledgerSchema
	if err := toml.Unmarshal([]byte(raw), &snapshot); err != nil {
		r.logger.Warn("discarding corrupt view ledger snapshot", zap.Error(err))
		return nil, nil
	}
	snapshot.applyDefaults()
	if snapshot.Version > currentSchemaVersion {
		r.logger.Warn("discarding view ledger snapshot from newer schema",
			zap.Int("version", snapshot.Version))
		return nil, nil
	}

	entries := make([]domain.ViewEntry, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		entries = append(entries, fromEntrySchema(entry))
	}
	return entries, nil
}

func (r *LedgerRepository) Save(ctx context.Context, entries []domain.ViewEntry) error {
	snapshot := ledgerSchema{Version: currentSchemaVersion}
	snapshot.Entries = make([]entrySchema, 0, len(entries))
	for _, entry := range entries {
		snapshot.Entries = append(snapshot.Entries, toEntrySchema(entry))
	}

	data, err := toml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode view ledger: %w", err)
	}

	if err := r.state.Put(ctx, domain.LedgerStateKey, string(data)); err != nil {
		return fmt.Errorf("save view ledger: %w", err)
	}
	return nil
}
