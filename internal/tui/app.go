// Package tui draws a session with bubbletea and feeds it key presses.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/loggr/internal/session"
	"github.com/jask/loggr/internal/timesheet"
)

// App is the bubbletea model. It holds no timesheet state of its own; every
// frame is drawn from a session snapshot.
type App struct {
	sess  *session.Session
	clock timesheet.Clock
	keys  keyMap
	help  help.Model

	width  int
	height int
}

func New(sess *session.Session, clock timesheet.Clock) *App {
	h := help.New()
	h.ShortSeparator = "  "
	return &App{
		sess:  sess,
		clock: clock,
		keys:  defaultKeyMap(),
		help:  h,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	// pasted text is only input for the name buffer, never a run of commands
	if m.Paste && a.sess.Mode() != session.ModeProjectAdding {
		return a, nil
	}
	if a.sess.Mode() != session.ModeProjectAdding && m.Type == tea.KeyRunes && m.String() == "?" {
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}
	for _, ev := range translate(m) {
		// errors already sit on the status line
		_ = a.sess.Handle(ev)
		if a.sess.Done() {
			return a, tea.Quit
		}
	}
	return a, nil
}

// Run drives the TUI until the session exits or ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, clock timesheet.Clock, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(sess, clock), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
