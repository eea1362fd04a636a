package scramble

import (
	"strings"
	"testing"
)

func TestMovesLengthAndAlphabet(t *testing.T) {
	g := NewWithSeed(1)
	moves := g.Moves(25)
	if len(moves) != 25 {
		t.Fatalf("expected 25 moves, got %d", len(moves))
	}
	for _, m := range moves {
		if _, ok := axis[m[:1]]; !ok {
			t.Fatalf("unexpected face in %q", m)
		}
		if suffix := m[1:]; suffix != "" && suffix != "'" && suffix != "2" {
			t.Fatalf("unexpected suffix in %q", m)
		}
	}
}

func TestMovesAvoidRedundantSequences(t *testing.T) {
	g := NewWithSeed(99)
	for round := 0; round < 50; round++ {
		moves := g.Moves(30)
		for i := 1; i < len(moves); i++ {
			if moves[i][:1] == moves[i-1][:1] {
				t.Fatalf("face repeated at %d: %v", i, moves)
			}
			if i >= 2 {
				a, b, c := axis[moves[i-2][:1]], axis[moves[i-1][:1]], axis[moves[i][:1]]
				if a == b && b == c {
					t.Fatalf("three moves on one axis at %d: %v", i, moves)
				}
			}
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := NewWithSeed(5).Generate(20)
	b := NewWithSeed(5).Generate(20)
	if a != b {
		t.Fatalf("expected equal scrambles for equal seeds")
	}
	if got := len(strings.Fields(a)); got != 20 {
		t.Fatalf("expected 20 moves, got %d", got)
	}
}

func TestGenerateZeroLength(t *testing.T) {
	if got := NewWithSeed(1).Generate(0); got != "" {
		t.Fatalf("expected empty scramble, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("R U R' U' F2 B", 8)
	want := []string{"R U R'", "U' F2 B"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if got := Wrap("", 10); got != nil {
		t.Fatalf("expected nil for empty scramble, got %v", got)
	}
	if got := Wrap("R U", 0); len(got) != 1 || got[0] != "R U" {
		t.Fatalf("expected single line without width, got %v", got)
	}
}
