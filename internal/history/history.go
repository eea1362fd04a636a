// Package history keeps the ordered list of solves and its derived aggregates.
package history

import (
	"github.com/verte-zerg/tuicube/internal/model"
	"github.com/verte-zerg/tuicube/internal/stats"
)

// History stores solves oldest first. Aggregates are folded in on every
// Insert. Delete leaves every stored average and aggregate untouched; Rebuild
// replays the surviving times to refresh them.
type History struct {
	solves []model.Solve

	pbSingle *float64
	pbAo5    *float64
	pbAo12   *float64
	ao100    *float64
	ao1000   *float64
	sum      float64
	mean     *float64
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// FromTimes builds a history by inserting the raw times in order.
func FromTimes(times []float64) *History {
	h := New()
	for _, t := range times {
		h.Insert(model.NewSolve(t))
	}
	return h
}

// Len returns the number of stored solves.
func (h *History) Len() int {
	return len(h.solves)
}

// Insert computes the solve's ao5 and ao12 against the current history, appends
// it, and updates the aggregates. The stored solve is returned.
func (h *History) Insert(s model.Solve) model.Solve {
	window := h.recentTimes(stats.Ao12Window - 1)
	window = append([]float64{s.Time}, window...)
	s.Ao5 = average(window, stats.Ao5Window)
	s.Ao12 = average(window, stats.Ao12Window)
	h.solves = append(h.solves, s)

	h.pbSingle = minOf(h.pbSingle, &s.Time)
	h.pbAo5 = minOf(h.pbAo5, s.Ao5)
	h.pbAo12 = minOf(h.pbAo12, s.Ao12)

	if len(h.solves) >= stats.Ao100Window {
		h.ao100 = average(h.recentTimes(stats.Ao100Window), stats.Ao100Window)
	}
	if len(h.solves) >= stats.Ao1000Window {
		h.ao1000 = average(h.recentTimes(stats.Ao1000Window), stats.Ao1000Window)
	}

	h.sum += s.Time
	mean := h.sum / float64(len(h.solves))
	h.mean = &mean
	return cloneSolve(s)
}

// Delete removes the solve shown at the given row of the most-recent-first
// view. Out of range rows are ignored. It reports whether a solve was removed.
func (h *History) Delete(displayRow int) bool {
	idx, ok := h.storageIndex(displayRow)
	if !ok {
		return false
	}
	h.solves = append(h.solves[:idx], h.solves[idx+1:]...)
	return true
}

// Rebuild recomputes every stored average and aggregate from the raw times.
func (h *History) Rebuild() {
	*h = *FromTimes(h.Times())
}

// At returns the solve at the given storage index (oldest first).
func (h *History) At(idx int) (model.Solve, bool) {
	if idx < 0 || idx >= len(h.solves) {
		return model.Solve{}, false
	}
	return cloneSolve(h.solves[idx]), true
}

// Row returns the solve shown at the given row of the most-recent-first view.
func (h *History) Row(displayRow int) (model.Solve, bool) {
	idx, ok := h.storageIndex(displayRow)
	if !ok {
		return model.Solve{}, false
	}
	return cloneSolve(h.solves[idx]), true
}

// Solves returns a copy of the stored solves, oldest first.
func (h *History) Solves() []model.Solve {
	out := make([]model.Solve, len(h.solves))
	for i, s := range h.solves {
		out[i] = cloneSolve(s)
	}
	return out
}

// Times returns the raw times, oldest first.
func (h *History) Times() []float64 {
	out := make([]float64, len(h.solves))
	for i, s := range h.solves {
		out[i] = s.Time
	}
	return out
}

// Summary returns a snapshot of the aggregates.
func (h *History) Summary() model.Summary {
	sum := model.Summary{
		Count:    len(h.solves),
		Mean:     clone(h.mean),
		PBSingle: clone(h.pbSingle),
		PBAo5:    clone(h.pbAo5),
		PBAo12:   clone(h.pbAo12),
		Ao100:    clone(h.ao100),
		Ao1000:   clone(h.ao1000),
	}
	if n := len(h.solves); n > 0 {
		last := h.solves[n-1]
		sum.Last = clone(&last.Time)
		sum.CurrentAo5 = clone(last.Ao5)
		sum.CurrentAo12 = clone(last.Ao12)
	}
	return sum
}

func (h *History) storageIndex(displayRow int) (int, bool) {
	n := len(h.solves)
	if displayRow < 0 || displayRow >= n {
		return 0, false
	}
	return n - displayRow - 1, true
}

// recentTimes returns up to n raw times, most recent first.
func (h *History) recentTimes(n int) []float64 {
	if n > len(h.solves) {
		n = len(h.solves)
	}
	out := make([]float64, 0, n)
	for i := len(h.solves) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, h.solves[i].Time)
	}
	return out
}

func average(recentFirst []float64, n int) *float64 {
	avg, ok := stats.AverageOf(recentFirst, n)
	if !ok {
		return nil
	}
	return &avg
}

func minOf(current, candidate *float64) *float64 {
	if candidate == nil {
		return current
	}
	if current == nil || *candidate < *current {
		v := *candidate
		return &v
	}
	return current
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneSolve(s model.Solve) model.Solve {
	return model.Solve{Time: s.Time, Ao5: clone(s.Ao5), Ao12: clone(s.Ao12)}
}
