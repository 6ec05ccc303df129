package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tomlrepo "github.com/Calvin-Zhu01/agent-guard/internal/adapters/repo/toml"
	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/state/memory"
	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

func newLedgerFixture(t *testing.T) (*LedgerService, ports.LedgerRepository) {
	t.Helper()
	repo := tomlrepo.NewLedgerRepository(memory.NewStore(), nil)
	return NewLedgerService(context.Background(), repo, nil), repo
}

func view(path, title string) domain.View {
	return domain.View{Path: path, Title: title, FullPath: path}
}

func paths(entries []domain.ViewEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Path)
	}
	return out
}

func TestLedgerStartsWithHomeEntry(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)

	entries := ledger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.HomePath, entries[0].Path)
	assert.False(t, entries[0].Closeable)
}

func TestAddKeepsUniquePathsInFirstVisitOrder(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()

	ledger.Add(ctx, view("/agents", "Agents"))
	ledger.Add(ctx, view("/policies", "Policies"))
	ledger.Add(ctx, view("/agents", "Agents"))
	ledger.Add(ctx, view("/stats", "Cost Analysis"))
	ledger.Add(ctx, view("/policies", "Policies"))

	entries := ledger.Entries()
	assert.Equal(t, []string{domain.HomePath, "/agents", "/policies", "/stats"}, paths(entries))
	assert.False(t, entries[0].Closeable)
	for _, entry := range entries[1:] {
		assert.True(t, entry.Closeable)
	}

	// Revisiting moves the active pointer, not the entry.
	assert.Equal(t, "/policies", ledger.ActivePath())
}

func TestAddSkipsUntitledAndLoginViews(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()

	ledger.Add(ctx, domain.View{Path: "/whatever"})
	ledger.Add(ctx, view(domain.LoginPath, "Sign In"))

	assert.Equal(t, []string{domain.HomePath}, paths(ledger.Entries()))
}

func TestAddPreservesFullPathWithQuery(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)

	ledger.Add(context.Background(), domain.View{
		Path:     "/agents",
		Title:    "Agents",
		Name:     "AgentList",
		FullPath: "/agents?keyword=bot",
	})

	entries := ledger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "/agents?keyword=bot", entries[1].FullPath)
}

func TestRemoveHomeEntryIsANoOp(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/agents", "Agents"))

	target := ledger.Remove(ctx, domain.HomePath)
	assert.Nil(t, target)
	assert.Equal(t, []string{domain.HomePath, "/agents"}, paths(ledger.Entries()))
}

func TestRemoveActiveEntryReturnsNextInVisitOrder(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/a", "A"))
	ledger.Add(ctx, view("/b", "B"))
	ledger.Add(ctx, view("/c", "C"))
	ledger.SetActive("/b")

	target := ledger.Remove(ctx, "/b")
	require.NotNil(t, target)
	assert.Equal(t, "/c", target.Path)
	assert.Equal(t, []string{domain.HomePath, "/a", "/c"}, paths(ledger.Entries()))
}

func TestRemoveLastActiveEntryFallsBackToPrevious(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/a", "A"))

	target := ledger.Remove(ctx, "/a")
	require.NotNil(t, target)
	assert.Equal(t, domain.HomePath, target.Path)
}

func TestRemoveInactiveEntryReturnsNoTarget(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/a", "A"))
	ledger.Add(ctx, view("/b", "B"))

	target := ledger.Remove(ctx, "/a")
	assert.Nil(t, target)
	assert.Equal(t, []string{domain.HomePath, "/b"}, paths(ledger.Entries()))
}

func TestRemoveUnknownPathIsANoOp(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)

	target := ledger.Remove(context.Background(), "/missing")
	assert.Nil(t, target)
}

func TestRemoveOthersKeepsHomeAndSelected(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/a", "A"))
	ledger.Add(ctx, view("/b", "B"))
	ledger.Add(ctx, view("/c", "C"))

	ledger.RemoveOthers(ctx, "/b")
	assert.Equal(t, []string{domain.HomePath, "/b"}, paths(ledger.Entries()))
}

func TestRemoveAllLeavesOnlyHomeAndReturnsIt(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/a", "A"))
	ledger.Add(ctx, view("/b", "B"))

	home := ledger.RemoveAll(ctx)
	assert.Equal(t, domain.HomePath, home.Path)
	assert.Equal(t, []string{domain.HomePath}, paths(ledger.Entries()))
}

func TestRemoveRightTruncatesAfterPath(t *testing.T) {
	t.Parallel()

	ledger, _ := newLedgerFixture(t)
	ctx := context.Background()
	ledger.Add(ctx, view("/a", "A"))
	ledger.Add(ctx, view("/b", "B"))
	ledger.Add(ctx, view("/c", "C"))

	ledger.RemoveRight(ctx, "/a")
	assert.Equal(t, []string{domain.HomePath, "/a"}, paths(ledger.Entries()))

	ledger.RemoveRight(ctx, "/missing")
	assert.Equal(t, []string{domain.HomePath, "/a"}, paths(ledger.Entries()))
}

func TestRestoreReproducesPersistedLedger(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	repo := tomlrepo.NewLedgerRepository(state, nil)
	ctx := context.Background()

	ledger := NewLedgerService(ctx, repo, nil)
	ledger.Add(ctx, domain.View{Path: "/agents", Title: "Agents", Name: "AgentList", FullPath: "/agents?keyword=bot"})
	ledger.Add(ctx, view("/stats", "Cost Analysis"))
	ledger.Remove(ctx, "/agents")
	ledger.Add(ctx, view("/policies", "Policies"))

	restored := NewLedgerService(ctx, repo, nil)
	assert.Equal(t, ledger.Entries(), restored.Entries())
}

func TestRestoreSynthesizesHomeWhenSnapshotLacksIt(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	repo := tomlrepo.NewLedgerRepository(state, nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.ViewEntry{
		{Path: "/agents", Title: "Agents", Closeable: true, FullPath: "/agents"},
	}))

	ledger := NewLedgerService(ctx, repo, nil)
	assert.Equal(t, []string{domain.HomePath, "/agents"}, paths(ledger.Entries()))
}

func TestRestoreRecoversFromCorruptSnapshot(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, state.Put(ctx, domain.LedgerStateKey, "???not toml"))

	ledger := NewLedgerService(ctx, tomlrepo.NewLedgerRepository(state, nil), nil)
	assert.Equal(t, []string{domain.HomePath}, paths(ledger.Entries()))
}
