package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tomlrepo "github.com/Calvin-Zhu01/agent-guard/internal/adapters/repo/toml"
	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/state/memory"
	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

type countingFetcher struct {
	calls atomic.Int64
	user  domain.User
	err   error
}

func (f *countingFetcher) CurrentUser(context.Context) (domain.User, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

func newSessionFixture(t *testing.T) (*memory.Store, ports.SessionRepository) {
	t.Helper()
	state := memory.NewStore()
	return state, tomlrepo.NewSessionRepository(state, nil)
}

func TestEnsureAuthenticatedWithoutCredentialIssuesNoNetworkCalls(t *testing.T) {
	t.Parallel()

	_, repo := newSessionFixture(t)
	fetcher := &countingFetcher{}
	session := NewSessionService(context.Background(), repo, fetcher, nil)

	assert.False(t, session.EnsureAuthenticated(context.Background()))
	assert.Zero(t, fetcher.calls.Load())
}

func TestEnsureAuthenticatedWithHydratedSessionSkipsFetch(t *testing.T) {
	t.Parallel()

	_, repo := newSessionFixture(t)
	fetcher := &countingFetcher{}
	ctx := context.Background()
	session := NewSessionService(ctx, repo, fetcher, nil)

	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.NoError(t, session.SetIdentity(ctx, domain.User{ID: "u-1", Username: "admin"}))

	assert.True(t, session.EnsureAuthenticated(ctx))
	assert.Zero(t, fetcher.calls.Load())
}

func TestEnsureAuthenticatedHydratesIdentity(t *testing.T) {
	t.Parallel()

	_, repo := newSessionFixture(t)
	fetcher := &countingFetcher{user: domain.User{ID: "u-1", Username: "admin", Role: domain.RoleAdmin}}
	ctx := context.Background()
	session := NewSessionService(ctx, repo, fetcher, nil)

	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.Nil(t, session.Identity())

	assert.True(t, session.EnsureAuthenticated(ctx))
	assert.Equal(t, int64(1), fetcher.calls.Load())

	identity := session.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, "admin", identity.Username)
	assert.True(t, session.IsAdmin())

	// The hydrated identity is persisted, not just cached.
	stored, err := repo.LoadIdentity(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "admin", stored.Username)
}

func TestFetchIdentityFailureLogsOut(t *testing.T) {
	t.Parallel()

	state, repo := newSessionFixture(t)
	fetcher := &countingFetcher{err: errors.New("boom")}
	ctx := context.Background()
	session := NewSessionService(ctx, repo, fetcher, nil)

	require.NoError(t, session.SetCredential(ctx, "tok-stale"))

	user, err := session.FetchIdentity(ctx)
	require.Error(t, err)
	assert.Nil(t, user)

	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.Identity())

	_, err = state.Get(ctx, domain.CredentialStateKey)
	require.ErrorIs(t, err, domain.ErrStateKeyNotFound)
}

func TestFetchIdentityWithoutCredentialIsANoOp(t *testing.T) {
	t.Parallel()

	_, repo := newSessionFixture(t)
	fetcher := &countingFetcher{}
	session := NewSessionService(context.Background(), repo, fetcher, nil)

	user, err := session.FetchIdentity(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, fetcher.calls.Load())
}

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()

	_, repo := newSessionFixture(t)
	ctx := context.Background()
	session := NewSessionService(ctx, repo, &countingFetcher{}, nil)

	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.NoError(t, session.SetIdentity(ctx, domain.User{ID: "u-1", Username: "admin"}))

	restored := NewSessionService(ctx, repo, &countingFetcher{}, nil)
	assert.Equal(t, "tok-1", restored.Credential())
	require.NotNil(t, restored.Identity())
	assert.Equal(t, "admin", restored.Username())
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Parallel()

	_, repo := newSessionFixture(t)
	ctx := context.Background()
	session := NewSessionService(ctx, repo, &countingFetcher{}, nil)

	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.NoError(t, session.SetIdentity(ctx, domain.User{ID: "u-1"}))

	session.Logout(ctx)
	session.Logout(ctx)

	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.Identity())
	assert.Empty(t, session.Username())
}
