package cubecross

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPuzzleIsSolved(t *testing.T) {
	p := New()
	if !p.IsSolved() {
		t.Error("New puzzle should be solved")
	}
	if !p.IsCanonical() {
		t.Error("New puzzle should be in canonical orientation")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	p := New()
	if err := p.Apply(R); err != nil {
		t.Fatalf("Apply(R): %v", err)
	}
	if p.IsSolved() {
		t.Error("Puzzle should not be solved after R move")
	}
}

func TestFourQuarterTurns_ReturnsToStart_AllFaces(t *testing.T) {
	faces := []Move{R, L, U, D, F, B, X, Y, Z}
	for _, m := range faces {
		p := New()
		if err := p.ApplyNotation("D2 F R' B L2 U F2"); err != nil {
			t.Fatalf("scramble: %v", err)
		}
		before := p.Pieces()
		for i := 0; i < 4; i++ {
			if err := p.Apply(m); err != nil {
				t.Fatalf("Apply(%s): %v", m, err)
			}
		}
		if diff := cmp.Diff(before, p.Pieces()); diff != "" {
			t.Errorf("%s x 4 should return to the starting state (-before +after):\n%s", m, diff)
		}
	}
}

func TestDoubleTurnTwice_ReturnsToSolved(t *testing.T) {
	for _, m := range []Move{R2, L2, U2, D2, F2, B2, X2, Y2, Z2} {
		p := New()
		if err := p.Apply(m, m); err != nil {
			t.Fatalf("Apply(%s %s): %v", m, m, err)
		}
		if !p.IsSolved() {
			t.Errorf("%s %s should return to solved", m, m)
			t.Log(p.String())
		}
	}
}

func TestMoveThenInverse_AllFacesAndTurns(t *testing.T) {
	faces := []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB, RotX, RotY, RotZ}
	turns := []Turn{CW, CCW, Double}
	for _, f := range faces {
		for _, turn := range turns {
			p := New()
			m := Move{Face: f, Turn: turn}
			if err := p.Apply(m, m.Inverse()); err != nil {
				t.Fatalf("Apply(%s %s): %v", m, m.Inverse(), err)
			}
			if !p.IsSolved() {
				t.Errorf("%s then %s should return to solved", m, m.Inverse())
				t.Log(p.String())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	p := New()
	for i := 0; i < 6; i++ {
		if err := p.Apply(SexyMove...); err != nil {
			t.Fatalf("Apply sexy move: %v", err)
		}
	}
	if !p.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(p.String())
	}
}

func TestWholeRotationKeepsPattern(t *testing.T) {
	p := New()
	for _, m := range []Move{X, Y, Z, YPrime, X2, ZPrime} {
		if err := p.Apply(m); err != nil {
			t.Fatalf("Apply(%s): %v", m, err)
		}
		if !p.IsSolved() {
			t.Errorf("solved pattern should survive %s", m)
			t.Log(p.String())
		}
	}
	if p.IsCanonical() {
		t.Error("orientation should have changed after rotations")
	}
}

func TestScrambleAndReverse(t *testing.T) {
	p := New()
	scramble, err := ParseMoves("R U R' U' F D L2 B' U2 R")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if err := p.Apply(scramble...); err != nil {
		t.Fatalf("Apply scramble: %v", err)
	}
	if p.IsSolved() {
		t.Error("Puzzle should be scrambled after moves")
	}
	for i := len(scramble) - 1; i >= 0; i-- {
		if err := p.Apply(scramble[i].Inverse()); err != nil {
			t.Fatalf("Apply inverse: %v", err)
		}
	}
	if !p.IsSolved() {
		t.Error("Puzzle should be solved after reversing the scramble")
		t.Log(p.String())
	}
}

func TestApplyRejectsUnknownFace(t *testing.T) {
	p := New()
	err := p.Apply(Move{Face: "Q", Turn: CW})
	if err == nil {
		t.Fatal("expected an error for an unknown face")
	}
}

func TestApplyFailsBeforeMutating(t *testing.T) {
	p := New()
	before := p.Pieces()
	if err := p.Apply(R, U, Move{Face: "Q", Turn: CW}); err == nil {
		t.Fatal("expected an error for an unknown face")
	}
	if diff := cmp.Diff(before, p.Pieces()); diff != "" {
		t.Errorf("failed Apply should leave the puzzle untouched (-before +after):\n%s", diff)
	}
}

func TestPieceStickersFollowPosition(t *testing.T) {
	// Every piece must keep its sticker slots on the axes its position
	// exposes, whatever we throw at it.
	p := New()
	if err := p.ApplyNotation("R U2 F' L D B2 x R' y F"); err != nil {
		t.Fatalf("scramble: %v", err)
	}
	for _, pc := range p.Pieces() {
		for a := AxisX; a <= AxisZ; a++ {
			hasSticker := pc.Colors.Get(a) != NoColor
			onAxis := pc.Current.Component(a) != 0
			if hasSticker != onAxis {
				t.Errorf("piece at %v: sticker presence on %s axis does not match position", pc.Current, a)
			}
		}
	}
}
