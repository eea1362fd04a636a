// Package model defines shared data structures.
package model

import "time"

// Config defines timer settings resolved from flags and the config file.
type Config struct {
	TickInterval   time.Duration
	HistoryPath    string
	ScrambleLength int
}

// Solve is one completed timing. Ao5 and Ao12 are fixed when the solve is
// appended to a history and are nil until enough solves exist.
type Solve struct {
	Time float64
	Ao5  *float64
	Ao12 *float64
}

// NewSolve returns a solve with no averages.
func NewSolve(seconds float64) Solve {
	return Solve{Time: seconds}
}

// Summary holds the derived aggregates of a solve history.
// Nil pointers mean the value is not defined yet.
type Summary struct {
	Count       int
	Last        *float64
	Mean        *float64
	PBSingle    *float64
	PBAo5       *float64
	PBAo12      *float64
	CurrentAo5  *float64
	CurrentAo12 *float64
	Ao100       *float64
	Ao1000      *float64
}

// StatsConfig controls the stats browser. Last of zero means every solve.
type StatsConfig struct {
	Last   int
	Window int
}
