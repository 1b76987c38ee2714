package cubecross

import "fmt"

// classifyPerspective returns the rotation about the vertical axis that
// carries the other color's center onto the front face. Applied to a
// scratch copy of an edge, it reduces all four cross edges to the single
// down-front family of cases.
func classifyPerspective(p *Puzzle, other Color) (Rotation, error) {
	oc, err := p.CenterWith(other)
	if err != nil {
		return Rotation{}, err
	}
	switch oc.Current {
	case Coord{Z: 1}:
		return Identity, nil
	case Coord{X: 1}:
		return RotY90, nil
	case Coord{Z: -1}:
		return RotY180, nil
	case Coord{X: -1}:
		return RotY270, nil
	}
	return Rotation{}, fmt.Errorf("%w: %s center is not on a side face", ErrNotCanonical, other)
}

// Classify names the position and orientation of the cross/other edge.
// The cross center must face down. The edge is viewed through the
// perspective rotation for its color, position and stickers rotated
// together, and the case read off in that frame; BottomFrontAligned
// therefore always means "this edge is solved".
func Classify(p *Puzzle, cross, other Color) (EdgeCase, error) {
	if !p.crossOriented(cross) {
		return 0, fmt.Errorf("%w: %s center must face down", ErrNotCanonical, cross)
	}
	edge, err := p.FindEdge(cross, other)
	if err != nil {
		return 0, err
	}
	persp, err := classifyPerspective(p, other)
	if err != nil {
		return 0, err
	}
	scratch := edge
	scratch.rotate(persp)
	axis, _ := scratch.Colors.AxisOf(cross)
	return caseFor(scratch.Current, axis)
}
