package rental

import (
	"math"
	"time"

	"gear-rental/internal/pkg/errs"
)

// Window is a half-open interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, errs.NewInvalidWindowError(start, end)
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps is !(e1 <= s2 || s1 >= e2), so back-to-back windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// Days is the number of started 24h blocks, at least one.
func (w Window) Days() int {
	days := int(math.Ceil(w.Duration().Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
