package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ts string) Clock {
	now, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return Clock{Now: func() time.Time { return now }, Location: time.UTC}
}

func TestToggleFromEmptyClocksIn(t *testing.T) {
	ts := New("Alpha")
	got, tr := ts.Toggle(fixedClock("2026-10-16T09:00:00Z"))

	require.Equal(t, ClockedIn, tr)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, Entry{Date: "2026-10-16", TimeIn: "09:00"}, got.Entries[0])
	assert.True(t, got.ClockedIn())
	assert.Empty(t, ts.Entries, "receiver must not be modified")
}

func TestToggleTwiceClosesSameEntry(t *testing.T) {
	ts, _ := New("Alpha").Toggle(fixedClock("2026-10-16T09:00:00Z"))
	got, tr := ts.Toggle(fixedClock("2026-10-16T17:30:00Z"))

	require.Equal(t, ClockedOut, tr)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "17:30", got.Entries[0].TimeOut)
	assert.False(t, got.ClockedIn())
	assert.True(t, ts.Entries[0].Open(), "receiver must not be modified")
}

func TestToggleAfterCloseAppends(t *testing.T) {
	c := fixedClock("2026-10-16T09:00:00Z")
	ts, _ := New("Alpha").Toggle(c)
	ts, _ = ts.Toggle(c)
	ts, tr := ts.Toggle(c)

	assert.Equal(t, ClockedIn, tr)
	assert.Len(t, ts.Entries, 2)
	assert.True(t, ts.Entries[1].Open())
	assert.False(t, ts.Entries[0].Open())
}

func TestClockOutIsIdempotent(t *testing.T) {
	ts, _ := New("Alpha").ClockIn(fixedClock("2026-10-16T09:00:00Z"))
	closed, tr := ts.ClockOut(fixedClock("2026-10-16T10:00:00Z"))
	require.Equal(t, ClockedOut, tr)

	again, tr := closed.ClockOut(fixedClock("2026-10-16T11:00:00Z"))
	assert.Equal(t, Unchanged, tr)
	assert.True(t, again.Equal(closed))
	assert.Equal(t, "10:00", again.Entries[0].TimeOut)
}

func TestClockInWhileOpenIsUnchanged(t *testing.T) {
	ts, _ := New("Alpha").ClockIn(fixedClock("2026-10-16T09:00:00Z"))
	again, tr := ts.ClockIn(fixedClock("2026-10-16T09:30:00Z"))
	assert.Equal(t, Unchanged, tr)
	assert.Len(t, again.Entries, 1)
	assert.Equal(t, "09:00", again.Entries[0].TimeIn)
}

func TestClockOutOnEmptyIsUnchanged(t *testing.T) {
	got, tr := New("Alpha").ClockOut(fixedClock("2026-10-16T09:00:00Z"))
	assert.Equal(t, Unchanged, tr)
	assert.Empty(t, got.Entries)
}

func TestEntryDuration(t *testing.T) {
	c := Clock{Location: time.UTC}
	tests := []struct {
		name  string
		entry Entry
		want  time.Duration
		ok    bool
	}{
		{"same day", Entry{Date: "2026-10-16", TimeIn: "09:00", TimeOut: "17:30"}, 8*time.Hour + 30*time.Minute, true},
		{"past midnight", Entry{Date: "2026-10-16", TimeIn: "23:00", TimeOut: "01:15"}, 2*time.Hour + 15*time.Minute, true},
		{"open", Entry{Date: "2026-10-16", TimeIn: "09:00"}, 0, false},
		{"placeholder labels", Entry{Date: "Today", TimeIn: "0", TimeOut: "C"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.Duration(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotal(t *testing.T) {
	ts := Timesheet{Name: "Alpha", Entries: []Entry{
		{Date: "2026-10-15", TimeIn: "09:00", TimeOut: "12:00"},
		{Date: "2026-10-16", TimeIn: "13:00", TimeOut: "14:45"},
		{Date: "2026-10-16", TimeIn: "15:00"},
	}}
	total := ts.Total(Clock{Location: time.UTC})
	assert.Equal(t, 4*time.Hour+45*time.Minute, total)
	assert.Equal(t, "4:45", FormatDuration(total))
}

func TestClockLayouts(t *testing.T) {
	now := time.Date(2026, 10, 16, 7, 5, 0, 0, time.UTC)
	c := Clock{
		Now:        func() time.Time { return now },
		Location:   time.FixedZone("AEST", 10*60*60),
		DateLayout: "02/01/2006",
		TimeLayout: "3:04PM",
	}
	ts, _ := New("Alpha").ClockIn(c)
	assert.Equal(t, Entry{Date: "16/10/2026", TimeIn: "5:05PM"}, ts.Entries[0])
	assert.Equal(t, "5:05PM", c.Time())
}

func TestCloneDoesNotShareEntries(t *testing.T) {
	ts := Timesheet{Name: "Alpha", Entries: []Entry{{Date: "d", TimeIn: "t"}}}
	cp := ts.Clone()
	cp.Entries[0].TimeOut = "x"
	assert.True(t, ts.Entries[0].Open())

	assert.NotNil(t, Timesheet{Name: "b"}.Clone().Entries)
}

func TestClockInReadsClockOnce(t *testing.T) {
	// each reading is a minute later, crossing midnight after the first
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	c := Clock{
		Now: func() time.Time {
			cur := now
			now = now.Add(time.Minute)
			return cur
		},
		Location: time.UTC,
	}
	ts, _ := New("Alpha").ClockIn(c)
	require.Len(t, ts.Entries, 1)
	assert.Equal(t, Entry{Date: "2026-10-16", TimeIn: "23:59"}, ts.Entries[0])
}
