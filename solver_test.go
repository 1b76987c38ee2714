package cubecross

import (
	"errors"
	"strings"
	"testing"
)

func TestSuggestOnSolvedCross(t *testing.T) {
	p := New()
	s, err := Suggest(p, White, FixedOrder)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !s.Done {
		t.Error("complete cross should report Done")
	}
	if len(s.Moves) != 0 {
		t.Errorf("complete cross should need no moves, got %q", FormatMoves(s.Moves))
	}
	if !strings.Contains(s.Describe(), "cross complete") {
		t.Errorf("describe should point past the cross, got %q", s.Describe())
	}
}

func TestSuggestAfterSingleTurn(t *testing.T) {
	p := New()
	if err := p.Apply(R); err != nil {
		t.Fatal(err)
	}
	s, err := Suggest(p, White, FixedOrder)
	if err != nil {
		t.Fatal(err)
	}
	if s.Edge != Orange {
		t.Errorf("only the orange edge is unsolved, suggestion targeted %s", s.Edge)
	}
	if !s.Preserve {
		t.Error("three solved edges should force preservation")
	}
	if FormatMoves(s.Moves) != "R'" {
		t.Errorf("suggested %q, want R'", FormatMoves(s.Moves))
	}
}

func TestSuggestShortestFirstPicksCheapestEdge(t *testing.T) {
	// F L' U2 parks the green edge three moves away while the red edge
	// needs a single turn.
	p := New()
	if err := p.ApplyNotation("F L' U2"); err != nil {
		t.Fatal(err)
	}

	fixed, err := Suggest(p, White, FixedOrder)
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Edge != Green {
		t.Errorf("fixed order starts with green, got %s", fixed.Edge)
	}

	shortest, err := Suggest(p, White, ShortestFirst)
	if err != nil {
		t.Fatal(err)
	}
	if shortest.Edge != Red {
		t.Errorf("shortest-first should pick red, got %s", shortest.Edge)
	}
	if FormatMoves(shortest.Moves) != "L" {
		t.Errorf("red edge fix should be L, got %q", FormatMoves(shortest.Moves))
	}
}

func TestSuggestEdgeValidation(t *testing.T) {
	p := New()
	if _, err := SuggestEdge(p, White, Yellow); err == nil {
		t.Error("yellow is not a white-cross edge color")
	}
	if _, err := SuggestEdge(p, Green, Orange); err == nil {
		t.Error("side colors cannot anchor a cross")
	}
	if err := p.Apply(Z); err != nil {
		t.Fatal(err)
	}
	if _, err := SuggestEdge(p, White, Green); !errors.Is(err, ErrNotCanonical) {
		t.Errorf("white off the bottom should fail with ErrNotCanonical, got %v", err)
	}
}

func TestSolveCrossOnSolvedPuzzle(t *testing.T) {
	sol, err := SolveCross(New(), White, FixedOrder)
	if err != nil {
		t.Fatalf("SolveCross: %v", err)
	}
	if len(sol.Moves) != 0 || len(sol.Steps) != 0 {
		t.Errorf("solved puzzle should produce an empty plan, got %q", FormatMoves(sol.Moves))
	}
}

func TestSolveCrossAfterSingleTurn(t *testing.T) {
	p := New()
	if err := p.Apply(R); err != nil {
		t.Fatal(err)
	}
	sol, err := SolveCross(p, White, FixedOrder)
	if err != nil {
		t.Fatal(err)
	}
	if FormatMoves(sol.Moves) != "R'" {
		t.Errorf("plan %q, want R'", FormatMoves(sol.Moves))
	}
}

var crossScrambles = []string{
	"D2 F R' B L2 U F2",
	"R U R' U' F D L2 B' U2 R",
	"B2 L D' F2 R' U B D2 L2 F",
	"U' F' R2 D B' L U2 F D' R'",
	"L2 B2 D R F' U' B2 R2 D' F",
}

func TestSolveCrossCompletesOnScrambles(t *testing.T) {
	for _, scramble := range crossScrambles {
		for _, mode := range []Mode{FixedOrder, ShortestFirst} {
			p := New()
			if err := p.ApplyNotation(scramble); err != nil {
				t.Fatalf("scramble %q: %v", scramble, err)
			}
			sol, err := SolveCross(p, White, mode)
			if err != nil {
				t.Fatalf("SolveCross(%s) on %q: %v", mode, scramble, err)
			}
			check := p.Clone()
			if err := check.Apply(sol.Moves...); err != nil {
				t.Fatal(err)
			}
			if !check.IsCrossSolved(White) {
				t.Errorf("mode %s on %q: plan %q leaves the cross incomplete", mode, scramble, FormatMoves(sol.Moves))
				t.Log(check.String())
			}
			if p.IsCrossSolved(White) {
				t.Errorf("SolveCross must not modify its input (scramble %q)", scramble)
			}
			if len(sol.Steps) == 0 || len(sol.Steps) > 4 {
				t.Errorf("mode %s on %q: %d steps, want 1..4", mode, scramble, len(sol.Steps))
			}
		}
	}
}

func TestSolveCrossStepsStayConsistent(t *testing.T) {
	p := New()
	if err := p.ApplyNotation(crossScrambles[0]); err != nil {
		t.Fatal(err)
	}
	sol, err := SolveCross(p, White, FixedOrder)
	if err != nil {
		t.Fatal(err)
	}
	// Replaying the steps one by one must solve each step's edge and
	// never lose one that an earlier step placed.
	work := p.Clone()
	placed := map[Color]bool{}
	for _, step := range sol.Steps {
		if err := work.Apply(step.Moves...); err != nil {
			t.Fatal(err)
		}
		placed[step.Edge] = true
		for edge := range placed {
			if !work.CrossEdgeSolved(White, edge) {
				t.Fatalf("step for %s lost the %s edge", step.Edge, edge)
			}
		}
	}
}
