package shell

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/repo/toml"
	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/state/memory"
	"github.com/Calvin-Zhu01/agent-guard/internal/application"
	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

type staticFetcher struct {
	user domain.User
}

func (f staticFetcher) CurrentUser(context.Context) (domain.User, error) {
	return f.user, nil
}

func newTestModel(t *testing.T) (Model, *application.LedgerService) {
	t.Helper()
	ctx := context.Background()

	state := memory.NewStore()
	sessions := toml.NewSessionRepository(state, nil)
	require.NoError(t, sessions.SaveCredential(ctx, "token"))
	require.NoError(t, sessions.SaveIdentity(ctx, domain.User{ID: "u1", Username: "rivka", Role: domain.RoleUser}))

	session := application.NewSessionService(ctx, sessions, staticFetcher{}, nil)
	ledger := application.NewLedgerService(ctx, toml.NewLedgerRepository(state, nil), nil)
	guard := application.NewGuardService(session, nil)

	return NewModel(guard, ledger, session, nil, NewNavigator()), ledger
}

func TestNavigatorPushVisibleBeforeDelivery(t *testing.T) {
	t.Parallel()

	nav := NewNavigator()
	assert.Equal(t, domain.HomePath, nav.Current().Path)

	var delivered []tea.Msg
	nav.Attach(func(msg tea.Msg) {
		// The push must already be observable when the message goes out.
		assert.Equal(t, domain.LoginPath, nav.Current().Path)
		delivered = append(delivered, msg)
	})

	nav.Push(domain.Target{Path: domain.LoginPath})

	require.Len(t, delivered, 1)
	assert.Equal(t, domain.LoginPath, delivered[0].(NavigateMsg).Target.Path)
	assert.Equal(t, domain.LoginPath, nav.Current().Path)
}

func TestNavigatorPushWithoutProgram(t *testing.T) {
	t.Parallel()

	nav := NewNavigator()
	nav.Push(domain.Target{Path: "/agents"})
	assert.Equal(t, "/agents", nav.Current().Path)
}

func TestNotifierForwardsNotices(t *testing.T) {
	t.Parallel()

	notifier := NewNotifier()
	notifier.Notify(ports.SeverityError, "dropped before attach")

	var got []noticeMsg
	notifier.Attach(func(msg tea.Msg) {
		got = append(got, msg.(noticeMsg))
	})
	notifier.Notify(ports.SeverityWarning, "session expired, please sign in again")

	require.Len(t, got, 1)
	assert.Equal(t, ports.SeverityWarning, got[0].severity)
}

func TestAdmitDecisionRecordsLedgerEntry(t *testing.T) {
	t.Parallel()

	m, ledger := newTestModel(t)
	target := domain.Target{Path: "/agents"}

	next, cmd := m.Update(decisionMsg{
		target:   target,
		decision: application.Decision{Admit: true, Title: domain.DocumentTitle("Agents")},
	})
	require.NotNil(t, cmd)

	model := next.(Model)
	assert.Equal(t, "/agents", model.location.Path)
	assert.Equal(t, "Agents - AgentGuard", model.title)
	assert.True(t, model.loading)
	assert.Equal(t, "/agents", model.navigator.Current().Path)

	paths := make([]string, 0)
	for _, entry := range ledger.Entries() {
		paths = append(paths, entry.Path)
	}
	assert.Equal(t, []string{domain.HomePath, "/agents"}, paths)
	assert.Equal(t, "/agents", ledger.ActivePath())
}

func TestRedirectDecisionResolvesAgain(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	redirect := domain.Target{Path: domain.HomePath}

	next, cmd := m.Update(decisionMsg{
		target:   domain.Target{Path: "/"},
		decision: application.Decision{Redirect: &redirect},
	})
	require.NotNil(t, cmd)

	// The redirect runs back through the guard; an authenticated session
	// lands on the dashboard.
	msg := cmd()
	decision, ok := msg.(decisionMsg)
	require.True(t, ok)
	assert.Equal(t, domain.HomePath, decision.target.Path)
	assert.True(t, decision.decision.Admit)

	model := next.(Model)
	assert.Equal(t, domain.HomePath, model.location.Path)
}

func TestCloseKeyNavigatesToReturnedEntry(t *testing.T) {
	t.Parallel()

	m, ledger := newTestModel(t)
	ctx := context.Background()
	ledger.Add(ctx, domain.View{Path: "/agents", Title: "Agents", Name: "AgentList", FullPath: "/agents"})
	ledger.Add(ctx, domain.View{Path: "/policies", Title: "Policies", Name: "PolicyList", FullPath: "/policies"})
	m.location = domain.Target{Path: "/policies"}

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.NotNil(t, cmd)
	_ = next

	msg := cmd()
	decision, ok := msg.(decisionMsg)
	require.True(t, ok)
	assert.Equal(t, "/agents", decision.target.Path)

	paths := make([]string, 0)
	for _, entry := range ledger.Entries() {
		paths = append(paths, entry.Path)
	}
	assert.Equal(t, []string{domain.HomePath, "/agents"}, paths)
}

func TestCloseKeyOnDashboardIsNoop(t *testing.T) {
	t.Parallel()

	m, ledger := newTestModel(t)
	ledger.Add(context.Background(), domain.View{Path: domain.HomePath, Title: "Dashboard", Name: "Dashboard", FullPath: domain.HomePath})

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.Len(t, ledger.Entries(), 1)
}

func TestStaleScreenDataIgnored(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.location = domain.Target{Path: "/agents"}
	m.loading = true

	next, _ := m.Update(screenDataMsg{path: "/policies", lines: []string{"stale"}})
	model := next.(Model)
	assert.True(t, model.loading)
	assert.Empty(t, model.lines)

	next, _ = model.Update(screenDataMsg{path: "/agents", lines: []string{"fresh"}})
	model = next.(Model)
	assert.False(t, model.loading)
	assert.Equal(t, []string{"fresh"}, model.lines)
}

func TestTabBarMarksActiveAndCloseable(t *testing.T) {
	t.Parallel()

	m, ledger := newTestModel(t)
	ctx := context.Background()
	ledger.Add(ctx, domain.View{Path: domain.HomePath, Title: "Dashboard", Name: "Dashboard", FullPath: domain.HomePath})
	ledger.Add(ctx, domain.View{Path: "/agents", Title: "Agents", Name: "AgentList", FullPath: "/agents"})
	m.location = domain.Target{Path: "/agents"}

	bar := m.renderTabs()
	assert.Contains(t, bar, "Dashboard")
	assert.Contains(t, bar, "Agents ×")
	assert.NotContains(t, bar, "Dashboard ×")
}
