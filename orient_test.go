package cubecross

import (
	"errors"
	"testing"
)

func TestNormalizeAlreadyOriented(t *testing.T) {
	p := New()
	moves, oriented, err := Normalize(p, Green, White)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("already oriented puzzle needed moves %q", FormatMoves(moves))
	}
	if !oriented.IsCanonical() {
		t.Error("returned puzzle should be canonical")
	}
}

func TestNormalizeUndoesEveryHolding(t *testing.T) {
	for _, fix := range downFixes {
		for _, spin := range frontSpins {
			p := New()
			if err := p.Apply(append(append([]Move{}, fix...), spin...)...); err != nil {
				t.Fatal(err)
			}
			moves, oriented, err := Normalize(p, Green, White)
			if err != nil {
				t.Fatalf("Normalize after %q %q: %v", FormatMoves(fix), FormatMoves(spin), err)
			}
			if !oriented.IsCanonical() {
				t.Errorf("after %q %q: normalization moves %q did not restore canonical orientation",
					FormatMoves(fix), FormatMoves(spin), FormatMoves(moves))
			}
			if len(moves) > 2 {
				t.Errorf("normalization took %d rotations, never needs more than 2", len(moves))
			}
		}
	}
}

func TestNormalizeLeavesOriginalUntouched(t *testing.T) {
	p := New()
	if err := p.Apply(X2); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Normalize(p, Green, White); err != nil {
		t.Fatal(err)
	}
	if p.IsCanonical() {
		t.Error("Normalize should work on a clone, not the original")
	}
}

func TestNormalizeToYellowCross(t *testing.T) {
	p := New()
	moves, oriented, err := Normalize(p, Green, Yellow)
	if err != nil {
		t.Fatalf("Normalize for yellow down: %v", err)
	}
	if len(moves) == 0 {
		t.Error("flipping to yellow down needs at least one rotation")
	}
	if !oriented.crossOriented(Yellow) {
		t.Error("yellow center should face down after normalization")
	}
	gc, err := oriented.CenterWith(Green)
	if err != nil {
		t.Fatal(err)
	}
	if gc.Current != (Coord{Z: 1}) {
		t.Errorf("green center at %v, want front", gc.Current)
	}
}

func TestNormalizeImpossibleRequests(t *testing.T) {
	p := New()
	// Same color and opposite colors share an axis and can never face
	// front and down at once.
	if _, _, err := Normalize(p, White, White); !errors.Is(err, ErrNoOrientation) {
		t.Errorf("white front with white down should fail, got %v", err)
	}
	if _, _, err := Normalize(p, Yellow, White); !errors.Is(err, ErrNoOrientation) {
		t.Errorf("yellow front with white down should fail, got %v", err)
	}
}
