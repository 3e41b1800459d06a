package session

import (
	"slices"

	"github.com/jask/loggr/internal/timesheet"
)

// Snapshot is a read-only copy of what the presentation layer may draw.
type Snapshot struct {
	Mode               Mode
	Projects           []string
	HighlightedProject int
	SelectedProject    int // -1 until a project has been loaded
	Loaded             bool
	LoadedName         string
	Entries            []timesheet.Entry
	HighlightedEntry   int
	Input              string
	Status             string
	StatusErr          bool
}

// Snapshot copies the current state. Mutating the result does not affect s.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:               s.mode,
		Projects:           slices.Clone(s.projects),
		HighlightedProject: s.highlightedProject,
		SelectedProject:    s.selectedProject,
		HighlightedEntry:   s.highlightedEntry,
		Input:              string(s.input),
		Status:             s.status,
		StatusErr:          s.statusErr,
	}
	if s.loaded != nil {
		snap.Loaded = true
		snap.LoadedName = s.loaded.Name
		snap.Entries = slices.Clone(s.loaded.Entries)
	}
	return snap
}

// Loaded returns a copy of the loaded timesheet.
func (s *Session) Loaded() (timesheet.Timesheet, bool) {
	if s.loaded == nil {
		return timesheet.Timesheet{}, false
	}
	return s.loaded.Clone(), true
}
