package cubecross

import "fmt"

// faceMotion describes the physical effect of a clockwise turn: which
// slice moves, selected by a lattice axis and the slice value on it, and
// the rotation the slice goes through. Whole-puzzle rotations move every
// slice.
type faceMotion struct {
	axis  Axis
	slice int // +1 or -1 for face turns; unused when whole is set
	whole bool
	cw    Rotation
}

// Clockwise is always judged looking at the face from outside, so the
// faces on the negative ends of the axes turn through the three-quarter
// matrices.
var faceMotions = map[Face]faceMotion{
	FaceR: {axis: AxisX, slice: 1, cw: RotX90},
	FaceL: {axis: AxisX, slice: -1, cw: RotX270},
	FaceU: {axis: AxisY, slice: 1, cw: RotY90},
	FaceD: {axis: AxisY, slice: -1, cw: RotY270},
	FaceF: {axis: AxisZ, slice: 1, cw: RotZ90},
	FaceB: {axis: AxisZ, slice: -1, cw: RotZ270},
	RotX:  {axis: AxisX, whole: true, cw: RotX90},
	RotY:  {axis: AxisY, whole: true, cw: RotY90},
	RotZ:  {axis: AxisZ, whole: true, cw: RotZ90},
}

var faceByDirection = map[Coord]Face{
	{X: 1}:  FaceR,
	{X: -1}: FaceL,
	{Y: 1}:  FaceU,
	{Y: -1}: FaceD,
	{Z: 1}:  FaceF,
	{Z: -1}: FaceB,
}

// faceAxis returns the lattice axis a face's stickers sit on.
func faceAxis(f Face) Axis {
	return faceMotions[f].axis
}

// faceDirection returns the outward normal of a sticker face.
func faceDirection(f Face) Coord {
	mo := faceMotions[f]
	var c Coord
	switch mo.axis {
	case AxisX:
		c.X = mo.slice
	case AxisY:
		c.Y = mo.slice
	case AxisZ:
		c.Z = mo.slice
	}
	return c
}

// turnRotation expands a clockwise rotation to the requested turn.
func turnRotation(cw Rotation, t Turn) Rotation {
	switch t {
	case CCW:
		return cw.Inverse()
	case Double:
		return cw.Compose(cw)
	}
	return cw
}

// Apply performs moves in order, mutating the puzzle. Every move is
// validated up front, so a malformed move fails before anything changes.
func (p *Puzzle) Apply(moves ...Move) error {
	for _, m := range moves {
		if _, ok := faceMotions[m.Face]; !ok {
			return fmt.Errorf("%w: unknown face %q", ErrInvalidNotation, string(m.Face))
		}
		switch m.Turn {
		case CW, CCW, Double:
		default:
			return fmt.Errorf("%w: turn %d", ErrInvalidNotation, int(m.Turn))
		}
	}
	for _, m := range moves {
		p.turn(m)
	}
	return nil
}

// ApplyNotation parses a notation string and applies it.
func (p *Puzzle) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return p.Apply(moves...)
}

// turn moves one validated move: every piece on the turning slice rotates,
// coordinate and sticker record through the same matrix.
func (p *Puzzle) turn(m Move) {
	mo := faceMotions[m.Face]
	rot := turnRotation(mo.cw, m.Turn)
	for i := range p.pieces {
		pc := &p.pieces[i]
		if mo.whole || pc.Current.Component(mo.axis) == mo.slice {
			pc.rotate(rot)
		}
	}
}
