package cubecross

import "fmt"

// crossAlgorithm is the recipe for one edge case, written for the frame
// where the edge's home is down-front. preserve brings the edge home
// without disturbing any other solved cross edge. direct, when present,
// is a shorter body that may spin the bottom layer, safe only when no
// other cross edge is in place. restore is a trailing move that matters
// only when it puts back a neighbor displaced by the body; whether to
// keep it is decided by trial, never assumed.
type crossAlgorithm struct {
	preserve string
	direct   string
	restore  string
}

var crossTable = map[EdgeCase]crossAlgorithm{
	BottomFrontAligned:      {preserve: ""},
	BottomFrontFlipped:      {preserve: "F' D R' D'", direct: "F' R' D'"},
	BottomRightAligned:      {preserve: "R2 U F2", direct: "D'"},
	BottomRightFlipped:      {preserve: "R F"},
	BottomBackAligned:       {preserve: "B2 U2 F2", direct: "D2"},
	BottomBackFlipped:       {preserve: "B D R D'", direct: "B R D'"},
	BottomLeftAligned:       {preserve: "L2 U' F2", direct: "D"},
	BottomLeftFlipped:       {preserve: "L' F'"},
	MiddleFrontRightAligned: {preserve: "D R' D'", direct: "R' D'"},
	MiddleFrontRightFlipped: {preserve: "F"},
	MiddleRightBackAligned:  {preserve: "D R D'", direct: "R D'"},
	MiddleRightBackFlipped:  {preserve: "D2 B' D2", direct: "B' D2"},
	MiddleBackLeftAligned:   {preserve: "D' L' D", direct: "L' D"},
	MiddleBackLeftFlipped:   {preserve: "D2 B D2", direct: "B D2"},
	MiddleLeftFrontAligned:  {preserve: "D' L D", direct: "L D"},
	MiddleLeftFrontFlipped:  {preserve: "F'"},
	TopFrontAligned:         {preserve: "F2"},
	TopFrontFlipped:         {preserve: "F D R' D'", direct: "F R' D'"},
	TopRightAligned:         {preserve: "U F2"},
	TopRightFlipped:         {preserve: "R' F", restore: "R"},
	TopBackAligned:          {preserve: "U2 F2"},
	TopBackFlipped:          {preserve: "U R' F", restore: "R"},
	TopLeftAligned:          {preserve: "U' F2"},
	TopLeftFlipped:          {preserve: "L F'", restore: "L'"},
}

// remapMoves rewrites canonical-frame letters onto the real puzzle by
// pushing each face's normal through the inverse perspective. The
// perspectives only turn about the vertical axis, so U and D letters are
// always unchanged.
func remapMoves(moves []Move, inv Rotation) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		face, ok := faceByDirection[inv.Apply(faceDirection(m.Face))]
		if !ok {
			panic("cubecross: algorithm remap left the face set")
		}
		out[i] = Move{Face: face, Turn: m.Turn}
	}
	return out
}

// SolveEdgeCase returns the moves that bring the cross/other edge home
// from the given case, in real-puzzle letters. With preserve set the
// sequence leaves every other solved cross edge alone, sometimes at the
// cost of extra moves. Restoration suffixes are resolved by running both
// candidates on clones and keeping whichever ends with more cross edges
// solved, the shorter on ties.
func SolveEdgeCase(p *Puzzle, c EdgeCase, cross, other Color, preserve bool) ([]Move, error) {
	alg, ok := crossTable[c]
	if !ok {
		return nil, fmt.Errorf("cubecross: no algorithm for case %d", int(c))
	}
	persp, err := classifyPerspective(p, other)
	if err != nil {
		return nil, err
	}
	inv := persp.Inverse()
	body := alg.preserve
	if !preserve && alg.direct != "" {
		body = alg.direct
	}
	moves := remapMoves(mustMoves(body), inv)
	if preserve && alg.restore != "" {
		withRestore := append(append([]Move{}, moves...), remapMoves(mustMoves(alg.restore), inv)...)
		moves = pickByTrial(p, cross, moves, withRestore)
	}
	return Compress(moves), nil
}

// pickByTrial applies each candidate to its own clone and returns the one
// leaving more cross edges solved; ties go to the first, which callers
// pass as the shorter.
func pickByTrial(p *Puzzle, cross Color, first, second []Move) []Move {
	if trialScore(p, cross, second) > trialScore(p, cross, first) {
		return second
	}
	return first
}

func trialScore(p *Puzzle, cross Color, moves []Move) int {
	trial := p.Clone()
	if err := trial.Apply(moves...); err != nil {
		return -1
	}
	return len(trial.SolvedCrossEdges(cross))
}
