// Package session is the keyboard-driven state machine behind the TUI: the
// current mode, the project list and its cursor, the loaded timesheet and its
// cursor, the add-project input buffer, and the status line.
//
// A Session is not safe for concurrent use. Events are handled one at a time
// and store calls run inline.
package session

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/jask/loggr/internal/apperr"
	"github.com/jask/loggr/internal/timesheet"
)

// Store is the persistence the session needs.
type Store interface {
	Load(ctx context.Context, name string) (timesheet.Timesheet, error)
	Save(ctx context.Context, ts timesheet.Timesheet) error
}

// Mode is the active screen.
type Mode int

const (
	ModeMain Mode = iota
	ModeProjectList
	ModeProjectAdding
	ModeExiting
)

func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "main"
	case ModeProjectList:
		return "project_list"
	case ModeProjectAdding:
		return "project_adding"
	case ModeExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Session owns all mutable application state.
type Session struct {
	ctx   context.Context
	store Store
	clock timesheet.Clock

	mode               Mode
	projects           []string
	highlightedProject int
	selectedProject    int
	loaded             *timesheet.Timesheet
	highlightedEntry   int
	input              []rune

	status    string
	statusErr bool

	// Debug enables a log line per handled event.
	Debug bool
}

// New starts a session in Main with the given project names, as listed by
// the store. Nothing is loaded until the user picks a project.
func New(ctx context.Context, store Store, projects []string, clock timesheet.Clock) *Session {
	return &Session{
		ctx:             ctx,
		store:           store,
		clock:           clock,
		mode:            ModeMain,
		projects:        slices.Clone(projects),
		selectedProject: -1,
		status:          "Ready",
	}
}

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Done reports whether the session has been asked to exit.
func (s *Session) Done() bool { return s.mode == ModeExiting }

// Quit moves the session to Exiting.
func (s *Session) Quit() { s.mode = ModeExiting }

// Handle dispatches one key event. The returned error is the condition that
// was surfaced on the status line, if any; none of them are fatal.
func (s *Session) Handle(ev KeyEvent) error {
	if s.mode == ModeExiting {
		return nil
	}
	if ev.isCtrl('c') {
		s.Quit()
		return nil
	}

	before := s.mode
	var err error
	switch s.mode {
	case ModeMain:
		err = s.handleMain(ev)
	case ModeProjectList:
		err = s.handleProjectList(ev)
	case ModeProjectAdding:
		err = s.handleProjectAdding(ev)
	}
	if err != nil {
		s.setError(err)
	}
	if s.Debug {
		log.Printf("debug: key=%+v mode=%s->%s err=%v", ev, before, s.mode, err)
	}
	return err
}

func (s *Session) handleMain(ev KeyEvent) error {
	switch {
	case ev.isLeft():
		s.mode = ModeProjectList
	case ev.isUp():
		return s.scrollEntries(-1)
	case ev.isDown():
		return s.scrollEntries(1)
	}
	return nil
}

func (s *Session) handleProjectList(ev KeyEvent) error {
	switch {
	case ev.isUp():
		s.highlightedProject = step(s.highlightedProject, len(s.projects), -1)
	case ev.isDown():
		s.highlightedProject = step(s.highlightedProject, len(s.projects), 1)
	case ev.isRight():
		s.mode = ModeMain
	case ev.isChar('a'):
		s.input = s.input[:0]
		s.mode = ModeProjectAdding
	case ev.isChar('c', 'C'):
		return s.ToggleClock()
	case ev.Key == KeyEnter:
		return s.loadHighlighted()
	}
	return nil
}

func (s *Session) handleProjectAdding(ev KeyEvent) error {
	switch {
	case ev.isCtrl('q'), ev.Key == KeyEsc:
		s.input = s.input[:0]
		s.mode = ModeProjectList
	case ev.Key == KeyEnter:
		return s.commitProject()
	case ev.Key == KeyBackspace:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case ev.printable():
		s.input = append(s.input, ev.Rune)
	}
	return nil
}

func (s *Session) scrollEntries(delta int) error {
	if s.loaded == nil {
		return apperr.NoProjectLoaded("scroll")
	}
	s.highlightedEntry = step(s.highlightedEntry, len(s.loaded.Entries), delta)
	return nil
}

func (s *Session) loadHighlighted() error {
	if len(s.projects) == 0 {
		return nil
	}
	name := s.projects[s.highlightedProject]
	ts, err := s.store.Load(s.ctx, name)
	if err != nil {
		return err
	}
	s.selectedProject = s.highlightedProject
	s.loaded = &ts
	s.highlightedEntry = 0
	s.setStatus(fmt.Sprintf("loaded %s (%d entries)", name, len(ts.Entries)))
	return nil
}

func (s *Session) commitProject() error {
	name := strings.TrimSpace(string(s.input))
	if name == "" {
		return apperr.EmptyInput()
	}
	// names that differ only in case share a file on case-insensitive disks
	if i := slices.IndexFunc(s.projects, func(p string) bool { return strings.EqualFold(p, name) }); i >= 0 {
		return apperr.DuplicateName(s.projects[i])
	}
	if err := s.store.Save(s.ctx, timesheet.New(name)); err != nil {
		return err
	}
	similar, isSimilar := similarName(name, s.projects)
	s.projects = append(s.projects, name)
	s.highlightedProject = len(s.projects) - 1
	s.input = s.input[:0]
	s.mode = ModeProjectList
	if isSimilar {
		s.setStatus(fmt.Sprintf("added %q (similar to %q)", name, similar))
	} else {
		s.setStatus(fmt.Sprintf("added %q", name))
	}
	return nil
}

// ToggleClock clocks the loaded project in or out and saves it. The in-memory
// timesheet is replaced only after the save succeeds.
func (s *Session) ToggleClock() error {
	if s.loaded == nil {
		return apperr.NoProjectLoaded("clock")
	}
	next, tr := s.loaded.Toggle(s.clock)
	if err := s.store.Save(s.ctx, next); err != nil {
		return err
	}
	s.loaded = &next
	if tr == timesheet.ClockedIn {
		s.highlightedEntry = len(next.Entries) - 1
	}
	last, _ := next.Last()
	switch tr {
	case timesheet.ClockedIn:
		s.setStatus(fmt.Sprintf("clocked in to %s at %s", next.Name, last.TimeIn))
	case timesheet.ClockedOut:
		s.setStatus(fmt.Sprintf("clocked out of %s at %s", next.Name, last.TimeOut))
	}
	return nil
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	s.statusErr = false
}

func (s *Session) setError(err error) {
	s.status = err.Error()
	s.statusErr = !apperr.IsUserError(err)
	if s.statusErr {
		log.Printf("warn: %v", err)
	}
}
