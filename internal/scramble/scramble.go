// Package scramble builds random-move scrambles for a 3x3 cube.
package scramble

import (
	"math/rand"
	"strings"
	"time"
)

var faces = []string{"U", "D", "L", "R", "F", "B"}

var suffixes = []string{"", "'", "2"}

// axis groups opposite faces; moves on one axis commute.
var axis = map[string]int{"U": 0, "D": 0, "L": 1, "R": 1, "F": 2, "B": 2}

// Generator produces random scrambles.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Moves returns length moves. A face never repeats back to back and no
// three consecutive moves share an axis.
func (g *Generator) Moves(length int) []string {
	moves := make([]string, 0, length)
	var faceHist []string
	for len(moves) < length {
		face := faces[g.rnd.Intn(len(faces))]
		if !allowed(faceHist, face) {
			continue
		}
		faceHist = append(faceHist, face)
		moves = append(moves, face+suffixes[g.rnd.Intn(len(suffixes))])
	}
	return moves
}

// Generate returns a space separated scramble of length moves.
func (g *Generator) Generate(length int) string {
	return strings.Join(g.Moves(length), " ")
}

func allowed(prev []string, face string) bool {
	n := len(prev)
	if n == 0 {
		return true
	}
	if prev[n-1] == face {
		return false
	}
	if n >= 2 && axis[prev[n-1]] == axis[face] && axis[prev[n-2]] == axis[face] {
		return false
	}
	return true
}
