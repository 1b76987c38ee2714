package cubecross

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScrambleMovesNeverRepeatsFace(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := ScrambleMoves(50, rng)
	if len(moves) != 50 {
		t.Fatalf("got %d moves, want 50", len(moves))
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Errorf("moves %d and %d both turn %s", i-1, i, moves[i].Face)
		}
	}
}

func TestScrambleMovesReproducibleWithSeed(t *testing.T) {
	a := ScrambleMoves(20, rand.New(rand.NewSource(7)))
	b := ScrambleMoves(20, rand.New(rand.NewSource(7)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed should give the same scramble:\n%s", diff)
	}
}

func TestScrambleMovesApply(t *testing.T) {
	p := New()
	if err := p.Apply(ScrambleMoves(25, rand.New(rand.NewSource(3)))...); err != nil {
		t.Fatalf("scramble should always parse-apply cleanly: %v", err)
	}
	if p.IsSolved() {
		t.Error("25 random moves left the puzzle solved")
	}
}
