package shell

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

// NavigateMsg asks the shell to run one transition through the guard.
type NavigateMsg struct {
	Target domain.Target
}

// Navigator is the shell's navigation handle. Pushes may arrive from any
// goroutine (the pipeline's 401 path in particular); the pushed target
// becomes visible through Current before the message reaches the program, so
// a second concurrent 401 already observes the login location and stays
// quiet.
type Navigator struct {
	mu      sync.Mutex
	current domain.Target
	send    func(tea.Msg)
}

var _ ports.Navigator = (*Navigator)(nil)

func NewNavigator() *Navigator {
	return &Navigator{current: domain.Target{Path: domain.HomePath}}
}

// Attach connects the navigator to a running program's Send.
func (n *Navigator) Attach(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = send
}

func (n *Navigator) Current() domain.Target {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Navigator) Push(target domain.Target) {
	n.mu.Lock()
	n.current = target
	send := n.send
	n.mu.Unlock()

	if send != nil {
		send(NavigateMsg{Target: target})
	}
}

// setCurrent records the location the guard actually admitted, which may
// differ from the last pushed target after a redirect.
func (n *Navigator) setCurrent(target domain.Target) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = target
}

// Notifier routes pipeline notices into the shell's status line.
type Notifier struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ ports.Notifier = (*Notifier)(nil)

type noticeMsg struct {
	severity ports.Severity
	message  string
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Attach(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = send
}

func (n *Notifier) Notify(severity ports.Severity, message string) {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()

	if send != nil {
		send(noticeMsg{severity: severity, message: message})
	}
}
