package timesheet

import (
	"fmt"
	"time"
)

const (
	DefaultDateLayout = "2006-01-02"
	DefaultTimeLayout = "15:04"
)

// Clock produces the date and time labels written into entries.
// The zero value uses time.Now, the local zone and the default layouts.
type Clock struct {
	Now        func() time.Time
	Location   *time.Location
	DateLayout string
	TimeLayout string
}

// SystemClock returns a Clock reading the wall clock in loc.
func SystemClock(loc *time.Location, dateLayout, timeLayout string) Clock {
	return Clock{Now: time.Now, Location: loc, DateLayout: dateLayout, TimeLayout: timeLayout}
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().In(c.location())
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c Clock) dateLayout() string {
	if c.DateLayout == "" {
		return DefaultDateLayout
	}
	return c.DateLayout
}

func (c Clock) timeLayout() string {
	if c.TimeLayout == "" {
		return DefaultTimeLayout
	}
	return c.TimeLayout
}

// Time is the current time label.
func (c Clock) Time() string {
	return c.now().Format(c.timeLayout())
}

// stamp reads the clock once for both labels so they agree across midnight.
func (c Clock) stamp() (date, clock string) {
	now := c.now()
	return now.Format(c.dateLayout()), now.Format(c.timeLayout())
}

func (c Clock) parse(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(c.dateLayout()+" "+c.timeLayout(), date+" "+clock, c.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q %q: %w", date, clock, err)
	}
	return t, nil
}

// FormatDuration renders d as h:mm.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%d:%02d", h, m)
}
