package application

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tomlrepo "github.com/Calvin-Zhu01/agent-guard/internal/adapters/repo/toml"
	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/state/memory"
	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newGuardFixture(t *testing.T, fetcher *countingFetcher) (*GuardService, *SessionService) {
	t.Helper()
	repo := tomlrepo.NewSessionRepository(memory.NewStore(), nil)
	session := NewSessionService(context.Background(), repo, fetcher, nil)
	return NewGuardService(session, nil), session
}

func TestGuardRedirectsUnauthenticatedToLoginWithRedirectParam(t *testing.T) {
	t.Parallel()

	guard, _ := newGuardFixture(t, &countingFetcher{})

	decision := guard.Resolve(context.Background(), domain.Target{
		Path:  "/agents",
		Query: url.Values{"keyword": []string{"bot"}},
	})

	assert.False(t, decision.Admit)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, domain.LoginPath, decision.Redirect.Path)
	assert.Equal(t, "/agents?keyword=bot", decision.Redirect.Query.Get("redirect"))
}

func TestGuardOmitsRedirectParamForRootPath(t *testing.T) {
	t.Parallel()

	guard, _ := newGuardFixture(t, &countingFetcher{})

	decision := guard.Resolve(context.Background(), domain.Target{Path: "/"})

	require.NotNil(t, decision.Redirect)
	assert.Equal(t, domain.LoginPath, decision.Redirect.Path)
	assert.Empty(t, decision.Redirect.Query.Get("redirect"))
}

func TestGuardAdmitsLoginViewWhenUnauthenticated(t *testing.T) {
	t.Parallel()

	guard, _ := newGuardFixture(t, &countingFetcher{})

	decision := guard.Resolve(context.Background(), domain.Target{Path: domain.LoginPath})

	assert.True(t, decision.Admit)
	assert.Equal(t, "Sign In - AgentGuard", decision.Title)
}

func TestGuardBouncesAuthenticatedUserOffLogin(t *testing.T) {
	t.Parallel()

	guard, session := newGuardFixture(t, &countingFetcher{})
	require.NoError(t, session.SetCredential(context.Background(), "tok-1"))

	decision := guard.Resolve(context.Background(), domain.Target{Path: domain.LoginPath})

	require.NotNil(t, decision.Redirect)
	assert.Equal(t, domain.HomePath, decision.Redirect.Path)
}

func TestGuardHydratesIdentityBeforeAdmission(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{user: domain.User{ID: "u-1", Username: "admin"}}
	guard, session := newGuardFixture(t, fetcher)
	ctx := context.Background()
	require.NoError(t, session.SetCredential(ctx, "tok-1"))

	decision := guard.Resolve(ctx, domain.Target{Path: "/stats"})

	assert.True(t, decision.Admit)
	assert.Equal(t, "Cost Analysis - AgentGuard", decision.Title)
	assert.Equal(t, int64(1), fetcher.calls.Load())
	require.NotNil(t, session.Identity())
}

func TestGuardRedirectsToLoginWhenHydrationFails(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{err: errors.New("401")}
	guard, session := newGuardFixture(t, fetcher)
	ctx := context.Background()
	require.NoError(t, session.SetCredential(ctx, "tok-stale"))

	decision := guard.Resolve(ctx, domain.Target{Path: "/approvals"})

	assert.False(t, decision.Admit)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, domain.LoginPath, decision.Redirect.Path)
	assert.Equal(t, "/approvals", decision.Redirect.Query.Get("redirect"))

	// Failed hydration tears the whole session down.
	assert.False(t, session.IsAuthenticated())
}

func TestGuardAdmitsHydratedSessionWithoutRefetching(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{user: domain.User{ID: "u-1"}}
	guard, session := newGuardFixture(t, fetcher)
	ctx := context.Background()
	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.NoError(t, session.SetIdentity(ctx, domain.User{ID: "u-1", Username: "admin"}))

	decision := guard.Resolve(ctx, domain.Target{Path: "/alerts"})

	assert.True(t, decision.Admit)
	assert.Zero(t, fetcher.calls.Load())
}

func TestGuardRedirectsRootToDashboard(t *testing.T) {
	t.Parallel()

	guard, session := newGuardFixture(t, &countingFetcher{})
	ctx := context.Background()
	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.NoError(t, session.SetIdentity(ctx, domain.User{ID: "u-1"}))

	decision := guard.Resolve(ctx, domain.Target{Path: "/"})

	require.NotNil(t, decision.Redirect)
	assert.Equal(t, domain.HomePath, decision.Redirect.Path)
}

func TestGuardRedirectsUnknownPathsToDashboard(t *testing.T) {
	t.Parallel()

	guard, session := newGuardFixture(t, &countingFetcher{})
	ctx := context.Background()
	require.NoError(t, session.SetCredential(ctx, "tok-1"))
	require.NoError(t, session.SetIdentity(ctx, domain.User{ID: "u-1"}))

	decision := guard.Resolve(ctx, domain.Target{Path: "/no-such-view"})

	require.NotNil(t, decision.Redirect)
	assert.Equal(t, domain.HomePath, decision.Redirect.Path)
}
