package cubecross

import "fmt"

// EdgeCase names where a cross edge sits and which way it faces, read in
// the frame where the edge's home slot is down-front. Three layers by
// four slots by two orientations gives 24 cases. Aligned means the cross
// sticker faces down for bottom and top slots and along the front-back
// axis for middle slots; Flipped is the other way around.
type EdgeCase int

const (
	BottomFrontAligned EdgeCase = iota
	BottomFrontFlipped
	BottomRightAligned
	BottomRightFlipped
	BottomBackAligned
	BottomBackFlipped
	BottomLeftAligned
	BottomLeftFlipped
	MiddleFrontRightAligned
	MiddleFrontRightFlipped
	MiddleRightBackAligned
	MiddleRightBackFlipped
	MiddleBackLeftAligned
	MiddleBackLeftFlipped
	MiddleLeftFrontAligned
	MiddleLeftFrontFlipped
	TopFrontAligned
	TopFrontFlipped
	TopRightAligned
	TopRightFlipped
	TopBackAligned
	TopBackFlipped
	TopLeftAligned
	TopLeftFlipped
	edgeCaseCount
)

var edgeCaseNames = [edgeCaseCount]string{
	BottomFrontAligned:      "bottom_front_aligned",
	BottomFrontFlipped:      "bottom_front_flipped",
	BottomRightAligned:      "bottom_right_aligned",
	BottomRightFlipped:      "bottom_right_flipped",
	BottomBackAligned:       "bottom_back_aligned",
	BottomBackFlipped:       "bottom_back_flipped",
	BottomLeftAligned:       "bottom_left_aligned",
	BottomLeftFlipped:       "bottom_left_flipped",
	MiddleFrontRightAligned: "middle_front_right_aligned",
	MiddleFrontRightFlipped: "middle_front_right_flipped",
	MiddleRightBackAligned:  "middle_right_back_aligned",
	MiddleRightBackFlipped:  "middle_right_back_flipped",
	MiddleBackLeftAligned:   "middle_back_left_aligned",
	MiddleBackLeftFlipped:   "middle_back_left_flipped",
	MiddleLeftFrontAligned:  "middle_left_front_aligned",
	MiddleLeftFrontFlipped:  "middle_left_front_flipped",
	TopFrontAligned:         "top_front_aligned",
	TopFrontFlipped:         "top_front_flipped",
	TopRightAligned:         "top_right_aligned",
	TopRightFlipped:         "top_right_flipped",
	TopBackAligned:          "top_back_aligned",
	TopBackFlipped:          "top_back_flipped",
	TopLeftAligned:          "top_left_aligned",
	TopLeftFlipped:          "top_left_flipped",
}

func (c EdgeCase) String() string {
	if c < 0 || c >= edgeCaseCount {
		return "unknown"
	}
	return edgeCaseNames[c]
}

// edgeSlots maps the twelve edge positions to their aligned/flipped case
// pair.
var edgeSlots = map[Coord][2]EdgeCase{
	{Y: -1, Z: 1}:  {BottomFrontAligned, BottomFrontFlipped},
	{X: 1, Y: -1}:  {BottomRightAligned, BottomRightFlipped},
	{Y: -1, Z: -1}: {BottomBackAligned, BottomBackFlipped},
	{X: -1, Y: -1}: {BottomLeftAligned, BottomLeftFlipped},
	{X: 1, Z: 1}:   {MiddleFrontRightAligned, MiddleFrontRightFlipped},
	{X: 1, Z: -1}:  {MiddleRightBackAligned, MiddleRightBackFlipped},
	{X: -1, Z: -1}: {MiddleBackLeftAligned, MiddleBackLeftFlipped},
	{X: -1, Z: 1}:  {MiddleLeftFrontAligned, MiddleLeftFrontFlipped},
	{Y: 1, Z: 1}:   {TopFrontAligned, TopFrontFlipped},
	{X: 1, Y: 1}:   {TopRightAligned, TopRightFlipped},
	{Y: 1, Z: -1}:  {TopBackAligned, TopBackFlipped},
	{X: -1, Y: 1}:  {TopLeftAligned, TopLeftFlipped},
}

// caseFor reads the case from a canonical-frame edge position and the
// axis its cross sticker faces along.
func caseFor(pos Coord, crossAxis Axis) (EdgeCase, error) {
	pair, ok := edgeSlots[pos]
	if !ok {
		return 0, fmt.Errorf("%w: %v is not an edge slot", ErrInvalidState, pos)
	}
	alignedAxis := AxisY
	if pos.Y == 0 {
		alignedAxis = AxisZ
	}
	if crossAxis == alignedAxis {
		return pair[0], nil
	}
	return pair[1], nil
}
