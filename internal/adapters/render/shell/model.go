package shell

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/api"
	"github.com/Calvin-Zhu01/agent-guard/internal/application"
	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

const loadTimeout = 30 * time.Second

type decisionMsg struct {
	target   domain.Target
	decision application.Decision
}

type screenDataMsg struct {
	path  string
	lines []string
	err   error
}

// Model is the console shell. It owns the visible location; every transition
// goes through the guard before a screen is rendered or a ledger entry added.
type Model struct {
	guard     *application.GuardService
	ledger    *application.LedgerService
	session   *application.SessionService
	client    *api.Client
	navigator *Navigator

	styles   styles
	spinner  spinner.Model
	title    string
	location domain.Target
	lines    []string
	loading  bool
	notice   string
	severity ports.Severity
	width    int
	height   int
	quitting bool
}

func NewModel(
	guard *application.GuardService,
	ledger *application.LedgerService,
	session *application.SessionService,
	client *api.Client,
	navigator *Navigator,
) Model {
	return Model{
		guard:     guard,
		ledger:    ledger,
		session:   session,
		client:    client,
		navigator: navigator,
		styles:    defaultStyles(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		title:    domain.DocumentTitle(""),
		location: domain.Target{Path: domain.HomePath},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolveCmd(domain.Target{Path: domain.HomePath}))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		return m, m.resolveCmd(msg.Target)

	case decisionMsg:
		return m.handleDecision(msg)

	case screenDataMsg:
		// A key press may have moved the user on while the load ran.
		if msg.path != m.location.Path {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.lines = []string{"failed to load: " + msg.err.Error()}
			return m, nil
		}
		m.lines = msg.lines
		return m, nil

	case noticeMsg:
		m.notice = msg.message
		m.severity = msg.severity
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab", "right":
		return m, m.cycleCmd(1)

	case "shift+tab", "left":
		return m, m.cycleCmd(-1)

	case "r":
		if !m.loading {
			m.loading = true
			m.notice = ""
			return m, m.loadCmd(m.location)
		}
		return m, nil

	case "x":
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		if next := m.ledger.Remove(ctx, m.location.Path); next != nil {
			return m, m.resolveCmd(domain.Target{Path: next.Path})
		}
		return m, nil

	case "X":
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		m.ledger.RemoveOthers(ctx, m.location.Path)
		return m, nil

	case "W":
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		home := m.ledger.RemoveAll(ctx)
		return m, m.resolveCmd(domain.Target{Path: home.Path})

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		entries := m.ledger.Entries()
		if index < len(entries) {
			return m, m.resolveCmd(domain.Target{Path: entries[index].Path})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) cycleCmd(step int) tea.Cmd {
	entries := m.ledger.Entries()
	if len(entries) < 2 {
		return nil
	}
	index := 0
	for i, entry := range entries {
		if entry.Path == m.location.Path {
			index = i
			break
		}
	}
	index = (index + step + len(entries)) % len(entries)
	return m.resolveCmd(domain.Target{Path: entries[index].Path})
}

// resolveCmd runs the guard off the event loop; hydration may hit the network.
func (m Model) resolveCmd(target domain.Target) tea.Cmd {
	guard := m.guard
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		return decisionMsg{target: target, decision: guard.Resolve(ctx, target)}
	}
}

func (m Model) handleDecision(msg decisionMsg) (tea.Model, tea.Cmd) {
	if msg.decision.Redirect != nil {
		return m, m.resolveCmd(*msg.decision.Redirect)
	}

	route, _ := domain.LookupRoute(msg.target.Path)
	m.location = msg.target
	m.title = msg.decision.Title
	m.navigator.setCurrent(msg.target)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	m.ledger.Add(ctx, domain.View{
		Path:     route.Path,
		Title:    route.Title,
		Name:     route.Name,
		FullPath: msg.target.FullPath(),
	})
	cancel()

	m.loading = true
	m.lines = nil
	return m, m.loadCmd(msg.target)
}
