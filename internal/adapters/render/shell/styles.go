package shell

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Header      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Body        lipgloss.Style
	Faint       lipgloss.Style
	ErrorNotice lipgloss.Style
	WarnNotice  lipgloss.Style
	InfoNotice  lipgloss.Style
	Help        lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105")).Padding(0, 1),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		Body:        lipgloss.NewStyle().Padding(0, 2),
		Faint:       lipgloss.NewStyle().Faint(true),
		ErrorNotice: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		WarnNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		InfoNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:        lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
}
