// Package shell is the interactive console: a tabbed view over the guarded
// screens, driven by the navigation ledger.
package shell

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the console and blocks until the user quits. The navigator and
// notifier are attached to the program before it starts so that pipeline
// pushes arriving from other goroutines are never dropped.
func Run(m Model, navigator *Navigator, notifier *Notifier, opts ...tea.ProgramOption) error {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	p := tea.NewProgram(m, opts...)
	navigator.Attach(func(msg tea.Msg) { p.Send(msg) })
	if notifier != nil {
		notifier.Attach(func(msg tea.Msg) { p.Send(msg) })
	}

	_, err := p.Run()
	return err
}
