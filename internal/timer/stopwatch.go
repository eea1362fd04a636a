// Package timer implements the solve stopwatch.
package timer

import (
	"fmt"
	"time"

	"github.com/verte-zerg/tuicube/internal/model"
)

// Stopwatch toggles between idle and running. Elapsed time is measured with
// time.Time values from the clock, which carry a monotonic reading when taken
// from time.Now.
type Stopwatch struct {
	now          func() time.Time
	running      bool
	startedAt    time.Time
	lastDuration time.Duration
}

// New returns an idle stopwatch backed by time.Now.
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock returns an idle stopwatch that reads the given clock.
func NewWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Running reports whether a solve is being timed.
func (s *Stopwatch) Running() bool {
	return s.running
}

// LastDuration returns the duration of the most recently stopped solve.
func (s *Stopwatch) LastDuration() time.Duration {
	return s.lastDuration
}

// Toggle starts an idle stopwatch or stops a running one. Stopping returns the
// finished solve with no averages; it is not part of any history yet.
func (s *Stopwatch) Toggle() (model.Solve, bool) {
	if !s.running {
		s.running = true
		s.startedAt = s.now()
		return model.Solve{}, false
	}
	s.lastDuration = s.elapsed()
	s.running = false
	s.startedAt = time.Time{}
	return model.NewSolve(s.lastDuration.Seconds()), true
}

// Text renders live elapsed seconds with one decimal while running and the
// last duration with three decimals while idle.
func (s *Stopwatch) Text() string {
	if s.running {
		return fmt.Sprintf("%.1f", s.elapsed().Seconds())
	}
	return fmt.Sprintf("%.3f", s.lastDuration.Seconds())
}

func (s *Stopwatch) elapsed() time.Duration {
	if !s.running {
		return 0
	}
	d := s.now().Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}
