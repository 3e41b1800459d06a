// Package timesheet holds the per-project log of clock entries.
package timesheet

import (
	"slices"
	"time"
)

// Entry is one clock-in/clock-out record. An empty TimeOut means the entry is
// still open.
type Entry struct {
	Date    string `json:"date"`
	TimeIn  string `json:"time_in"`
	TimeOut string `json:"time_out"`
}

// Open reports whether the entry has not been clocked out yet.
func (e Entry) Open() bool {
	return e.TimeOut == ""
}

// Duration is the time between TimeIn and TimeOut as parsed with c's layouts.
// ok is false for open entries or labels that do not parse. A TimeOut earlier
// than TimeIn is treated as crossing midnight.
func (e Entry) Duration(c Clock) (d time.Duration, ok bool) {
	if e.Open() {
		return 0, false
	}
	in, err := c.parse(e.Date, e.TimeIn)
	if err != nil {
		return 0, false
	}
	out, err := c.parse(e.Date, e.TimeOut)
	if err != nil {
		return 0, false
	}
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}
	return out.Sub(in), true
}

// Timesheet is the ordered entry log for one project.
type Timesheet struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Transition describes what a clock operation did.
type Transition int

const (
	Unchanged Transition = iota
	ClockedIn
	ClockedOut
)

func (t Transition) String() string {
	switch t {
	case ClockedIn:
		return "clocked in"
	case ClockedOut:
		return "clocked out"
	default:
		return "unchanged"
	}
}

// New returns an empty timesheet for name.
func New(name string) Timesheet {
	return Timesheet{Name: name, Entries: []Entry{}}
}

// Last returns the most recent entry.
func (t Timesheet) Last() (Entry, bool) {
	if len(t.Entries) == 0 {
		return Entry{}, false
	}
	return t.Entries[len(t.Entries)-1], true
}

// ClockedIn reports whether the most recent entry is open.
func (t Timesheet) ClockedIn() bool {
	last, ok := t.Last()
	return ok && last.Open()
}

// Clone returns a copy that shares no entry storage with t.
func (t Timesheet) Clone() Timesheet {
	entries := slices.Clone(t.Entries)
	if entries == nil {
		entries = []Entry{}
	}
	return Timesheet{Name: t.Name, Entries: entries}
}

// ClockIn appends a new open entry unless one is already open.
// The receiver is never modified.
func (t Timesheet) ClockIn(c Clock) (Timesheet, Transition) {
	out := t.Clone()
	if out.ClockedIn() {
		return out, Unchanged
	}
	date, clock := c.stamp()
	out.Entries = append(out.Entries, Entry{Date: date, TimeIn: clock})
	return out, ClockedIn
}

// ClockOut closes the open entry. On a closed timesheet it changes nothing.
// The receiver is never modified.
func (t Timesheet) ClockOut(c Clock) (Timesheet, Transition) {
	out := t.Clone()
	if !out.ClockedIn() {
		return out, Unchanged
	}
	out.Entries[len(out.Entries)-1].TimeOut = c.Time()
	return out, ClockedOut
}

// Toggle clocks out when an entry is open and clocks in otherwise.
func (t Timesheet) Toggle(c Clock) (Timesheet, Transition) {
	if t.ClockedIn() {
		return t.ClockOut(c)
	}
	return t.ClockIn(c)
}

// Total sums the durations of all closed entries that parse.
func (t Timesheet) Total(c Clock) time.Duration {
	var total time.Duration
	for _, e := range t.Entries {
		if d, ok := e.Duration(c); ok {
			total += d
		}
	}
	return total
}

// Equal compares name and entries.
func (t Timesheet) Equal(o Timesheet) bool {
	return t.Name == o.Name && slices.Equal(t.Entries, o.Entries)
}
