package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Body.Render(m.spinner.View() + " loading"))
	case len(m.lines) == 0:
		b.WriteString(m.styles.Body.Render(m.styles.Faint.Render("nothing to show")))
	default:
		b.WriteString(m.styles.Body.Render(strings.Join(m.lines, "\n")))
	}
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(m.renderNotice())
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab/shift+tab switch · 1-9 jump · x close · X close others · W close all · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderTabs draws one tab per ledger entry, active location highlighted.
// The dashboard tab carries no close marker; it cannot be closed.
func (m Model) renderTabs() string {
	entries := m.ledger.Entries()
	if len(entries) == 0 {
		entries = []domain.ViewEntry{domain.HomeEntry()}
	}

	tabs := make([]string, 0, len(entries))
	for _, entry := range entries {
		label := entry.Title
		if entry.Closeable {
			label += " ×"
		}
		style := m.styles.Tab
		if entry.Path == m.location.Path {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderNotice() string {
	switch m.severity {
	case ports.SeverityError:
		return m.styles.ErrorNotice.Render(m.notice)
	case ports.SeverityWarning:
		return m.styles.WarnNotice.Render(m.notice)
	default:
		return m.styles.InfoNotice.Render(m.notice)
	}
}
