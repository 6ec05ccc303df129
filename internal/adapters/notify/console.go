package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

type consoleStyles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func newConsoleStyles() consoleStyles {
	return consoleStyles{
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Console writes one styled line per notice. Write failures are swallowed;
// notices are fire and forget.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	styles consoleStyles
}

var _ ports.Notifier = (*Console)(nil)

func NewConsole(out io.Writer) *Console {
	return &Console{out: out, styles: newConsoleStyles()}
}

func (c *Console) Notify(severity ports.Severity, message string) {
	var style lipgloss.Style
	switch severity {
	case ports.SeveritySuccess:
		style = c.styles.success
	case ports.SeverityWarning:
		style = c.styles.warning
	case ports.SeverityError:
		style = c.styles.err
	default:
		style = c.styles.info
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.out, style.Render(string(severity)+": "+message))
}
