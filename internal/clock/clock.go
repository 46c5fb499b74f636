package clock

import (
	"sync"
	"time"
)

// DateLayout is the calendar date format used for activity dates and the water counter day.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

// Real returns a clock reading the wall time in the given location (local time if nil).
func Real(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a settable clock, used in tests and tools.
type Fixed struct {
	mutex sync.Mutex
	now   time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.now
}

func (f *Fixed) Set(now time.Time) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.now = now
}

func (f *Fixed) Advance(d time.Duration) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.now = f.now.Add(d)
}

// Today returns the calendar date of c.Now() as DateLayout text.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// Midnight truncates t to the start of its day, keeping t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
