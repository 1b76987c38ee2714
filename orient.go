package cubecross

import "fmt"

// The 24 ways to hold the puzzle, reached by fixing the down face first
// and then spinning about the vertical axis.
var (
	downFixes  = [][]Move{nil, {X}, {XPrime}, {X2}, {Z}, {ZPrime}}
	frontSpins = [][]Move{nil, {Y}, {YPrime}, {Y2}}
)

// Normalize finds whole-puzzle rotations that bring the given colors to
// the front and down faces. It returns the rotation moves and a reoriented
// clone; the original puzzle is untouched, so callers prepend the moves to
// whatever they later apply to it. An already-oriented puzzle yields an
// empty move list. Colors on the same axis cannot face front and down at
// once and report ErrNoOrientation.
func Normalize(p *Puzzle, front, down Color) ([]Move, *Puzzle, error) {
	if _, err := p.CenterWith(front); err != nil {
		return nil, nil, err
	}
	if _, err := p.CenterWith(down); err != nil {
		return nil, nil, err
	}
	for _, fix := range downFixes {
		for _, spin := range frontSpins {
			moves := append(append([]Move{}, fix...), spin...)
			trial := p.Clone()
			if err := trial.Apply(moves...); err != nil {
				return nil, nil, err
			}
			if oriented(trial, front, down) {
				return moves, trial, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %s front with %s down", ErrNoOrientation, front, down)
}

func oriented(p *Puzzle, front, down Color) bool {
	fc, err := p.CenterWith(front)
	if err != nil {
		return false
	}
	dc, err := p.CenterWith(down)
	if err != nil {
		return false
	}
	return fc.Current == (Coord{Z: 1}) && dc.Current == (Coord{Y: -1})
}
