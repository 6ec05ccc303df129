package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

// LedgerService owns the ordered ledger of visited views and the active
// pointer. Invariant held by every mutation: a non-empty ledger has exactly
// the home entry at index 0 with Closeable=false, and paths are unique in
// first-visit order. The full ledger is persisted after every mutation; the
// active pointer is transient.
type LedgerService struct {
	repo   ports.LedgerRepository
	logger *zap.Logger

	mu         sync.Mutex
	entries    []domain.ViewEntry
	activePath string
}

// NewLedgerService restores the persisted ledger, synthesizing a fresh one
// containing only the home entry when nothing usable is stored.
func NewLedgerService(ctx context.Context, repo ports.LedgerRepository, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &LedgerService{repo: repo, logger: logger}

	entries, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("restore view ledger", zap.Error(err))
		entries = nil
	}
	s.entries = normalize(entries)
	return s
}

// normalize guarantees the home entry is present and first.
func normalize(entries []domain.ViewEntry) []domain.ViewEntry {
	for i, entry := range entries {
		if entry.Path == domain.HomePath {
			if i == 0 {
				return entries
			}
			reordered := make([]domain.ViewEntry, 0, len(entries))
			reordered = append(reordered, entries[i])
			reordered = append(reordered, entries[:i]...)
			reordered = append(reordered, entries[i+1:]...)
			return reordered
		}
	}
	return append([]domain.ViewEntry{domain.HomeEntry()}, entries...)
}

// Entries returns a copy of the ledger in visit order.
func (s *LedgerService) Entries() []domain.ViewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ViewEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *LedgerService) ActivePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePath
}

// Active returns the entry the active pointer currently selects.
func (s *LedgerService) Active() (domain.ViewEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.Path == s.activePath {
			return entry, true
		}
	}
	return domain.ViewEntry{}, false
}

// Add records a visited view. Views without a title and the login view are
// not tracked. Revisits move the active pointer but never reorder the ledger.
func (s *LedgerService) Add(ctx context.Context, view domain.View) {
	if view.Title == "" || view.Path == domain.LoginPath {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists := false
	for _, entry := range s.entries {
		if entry.Path == view.Path {
			exists = true
			break
		}
	}

	if !exists {
		s.entries = append(s.entries, domain.ViewEntry{
			Path:      view.Path,
			Title:     view.Title,
			Name:      view.Name,
			Closeable: view.Path != domain.HomePath,
			FullPath:  view.FullPath,
		})
		s.persist(ctx)
	}

	s.activePath = view.Path
}

// Remove closes a view. Removing the home entry is a no-op returning nil.
// When the removed view was the active one, the returned entry is where the
// caller should navigate: the entry that shifted into the removed slot, or
// the one before it.
func (s *LedgerService) Remove(ctx context.Context, path string) *domain.ViewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, entry := range s.entries {
		if entry.Path == path {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}
	if !s.entries[index].Closeable {
		return nil
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.persist(ctx)

	if s.activePath != path {
		return nil
	}
	if index < len(s.entries) {
		next := s.entries[index]
		return &next
	}
	if index-1 >= 0 {
		next := s.entries[index-1]
		return &next
	}
	return nil
}

// RemoveOthers keeps the home entry and the entry at path.
func (s *LedgerService) RemoveOthers(ctx context.Context, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, entry := range s.entries {
		if !entry.Closeable || entry.Path == path {
			kept = append(kept, entry)
		}
	}
	s.entries = kept
	s.persist(ctx)
}

// RemoveAll closes every closeable view and returns the home entry as the
// navigation target.
func (s *LedgerService) RemoveAll(ctx context.Context) domain.ViewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, entry := range s.entries {
		if !entry.Closeable {
			kept = append(kept, entry)
		}
	}
	s.entries = kept
	s.persist(ctx)
	return s.entries[0]
}

// RemoveRight truncates everything after the entry at path. Unknown paths are
// a no-op.
func (s *LedgerService) RemoveRight(ctx context.Context, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.Path == path {
			s.entries = s.entries[:i+1]
			s.persist(ctx)
			return
		}
	}
}

// SetActive moves the active pointer without touching storage.
func (s *LedgerService) SetActive(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePath = path
}

// persist is called with s.mu held. A failed write is logged, not surfaced:
// the in-memory ledger stays authoritative for the session and the next
// successful mutation rewrites the snapshot.
func (s *LedgerService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.entries); err != nil {
		s.logger.Warn("persist view ledger", zap.Error(err))
	}
}
