package toml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/state/memory"
	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func TestSessionRepositoryCredentialRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository(memory.NewStore(), nil)
	ctx := context.Background()

	token, err := repo.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, repo.SaveCredential(ctx, "tok-1"))

	token, err = repo.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, repo.DeleteCredential(ctx))
	require.NoError(t, repo.DeleteCredential(ctx))

	token, err = repo.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionRepositoryIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository(memory.NewStore(), nil)
	ctx := context.Background()

	user, err := repo.LoadIdentity(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	want := domain.User{
		ID:        "u-1",
		Username:  "admin",
		Email:     "admin@example.com",
		Role:      domain.RoleAdmin,
		Status:    1,
		CreatedAt: "2026-01-02T03:04:05Z",
	}
	require.NoError(t, repo.SaveIdentity(ctx, want))

	user, err = repo.LoadIdentity(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, want, *user)
}

func TestSessionRepositoryDiscardsCorruptIdentity(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, state.Put(ctx, domain.IdentityStateKey, "not [valid toml"))

	repo := NewSessionRepository(state, nil)
	user, err := repo.LoadIdentity(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionRepositoryDiscardsNewerSchemaIdentity(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, state.Put(ctx, domain.IdentityStateKey, "version = 99\n"))

	repo := NewSessionRepository(state, nil)
	user, err := repo.LoadIdentity(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLedgerRepositoryRoundTripPreservesOrderAndFields(t *testing.T) {
	t.Parallel()

	repo := NewLedgerRepository(memory.NewStore(), nil)
	ctx := context.Background()

	entries, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, entries)

	want := []domain.ViewEntry{
		domain.HomeEntry(),
		{Path: "/agents", Title: "Agents", Name: "AgentList", Closeable: true, FullPath: "/agents?keyword=bot"},
		{Path: "/policies", Title: "Policies", Name: "PolicyList", Closeable: true, FullPath: "/policies"},
	}
	require.NoError(t, repo.Save(ctx, want))

	entries, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestLedgerRepositoryDiscardsCorruptSnapshot(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, state.Put(ctx, domain.LedgerStateKey, "entries = oops"))

	repo := NewLedgerRepository(state, nil)
	entries, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, entries)
}
