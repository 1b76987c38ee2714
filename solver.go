package cubecross

import "fmt"

// Mode selects how the greedy solver picks the next edge to place.
type Mode int

const (
	// FixedOrder works through the edges green, orange, blue, red.
	FixedOrder Mode = iota
	// ShortestFirst places whichever unsolved edge needs the fewest
	// moves, falling back to the fixed order on ties.
	ShortestFirst
)

func (m Mode) String() string {
	switch m {
	case FixedOrder:
		return "fixed"
	case ShortestFirst:
		return "shortest"
	}
	return "unknown"
}

// ParseMode reads a solver mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fixed", "fixed-order":
		return FixedOrder, nil
	case "shortest", "shortest-first":
		return ShortestFirst, nil
	}
	return 0, fmt.Errorf("cubecross: unknown solver mode %q", s)
}

// Suggestion is one recommended step toward the cross.
type Suggestion struct {
	Edge     Color    // which cross edge the moves place
	Case     EdgeCase // where that edge was found
	Moves    []Move   // what to do about it
	Preserve bool     // other solved edges constrained the choice
	Done     bool     // the cross was already complete
}

// Describe renders the suggestion as a line of advice.
func (s Suggestion) Describe() string {
	if s.Done {
		return "cross complete: continue to the first two layers"
	}
	if len(s.Moves) == 0 {
		return fmt.Sprintf("%s edge is already placed", s.Edge)
	}
	note := ""
	if s.Preserve {
		note = ", keeping placed edges safe"
	}
	return fmt.Sprintf("%s edge at %s%s: %s", s.Edge, s.Case, note, FormatMoves(s.Moves))
}

// Solution is a full cross plan: the compressed move sequence and the
// per-edge steps that built it.
type Solution struct {
	Moves []Move       // compressed final sequence
	Steps []Suggestion // one entry per placed edge
}

// checkCrossSetup validates the solver preconditions: a supported cross
// color whose center faces down.
func checkCrossSetup(p *Puzzle, cross Color) error {
	if cross != White && cross != Yellow {
		return fmt.Errorf("cubecross: cross solving supports white or yellow, not %s", cross)
	}
	if !p.crossOriented(cross) {
		return fmt.Errorf("%w: %s center must face down", ErrNotCanonical, cross)
	}
	return nil
}

// SuggestEdge resolves one specific cross edge on the current state.
func SuggestEdge(p *Puzzle, cross, other Color) (Suggestion, error) {
	if err := checkCrossSetup(p, cross); err != nil {
		return Suggestion{}, err
	}
	ok := false
	for _, c := range CrossEdgeOrder {
		if c == other {
			ok = true
			break
		}
	}
	if !ok {
		return Suggestion{}, fmt.Errorf("cubecross: %s is not a cross edge color", other)
	}
	return suggestEdge(p, cross, other)
}

func suggestEdge(p *Puzzle, cross, other Color) (Suggestion, error) {
	cs, err := Classify(p, cross, other)
	if err != nil {
		return Suggestion{}, err
	}
	if cs == BottomFrontAligned {
		return Suggestion{Edge: other, Case: cs}, nil
	}
	preserve := false
	for _, c := range CrossEdgeOrder {
		if c != other && p.CrossEdgeSolved(cross, c) {
			preserve = true
			break
		}
	}
	moves, err := SolveEdgeCase(p, cs, cross, other, preserve)
	if err != nil {
		return Suggestion{}, err
	}
	return Suggestion{Edge: other, Case: cs, Moves: moves, Preserve: preserve}, nil
}

// Suggest picks the next step under the given mode. A complete cross
// reports Done with no moves.
func Suggest(p *Puzzle, cross Color, mode Mode) (Suggestion, error) {
	if err := checkCrossSetup(p, cross); err != nil {
		return Suggestion{}, err
	}
	if p.IsCrossSolved(cross) {
		return Suggestion{Done: true}, nil
	}
	var best Suggestion
	found := false
	for _, other := range CrossEdgeOrder {
		if p.CrossEdgeSolved(cross, other) {
			continue
		}
		s, err := suggestEdge(p, cross, other)
		if err != nil {
			return Suggestion{}, err
		}
		if mode == FixedOrder {
			return s, nil
		}
		if !found || len(s.Moves) < len(best.Moves) {
			best = s
			found = true
		}
	}
	if !found {
		return Suggestion{}, fmt.Errorf("%w: cross reported incomplete with no unsolved edge", ErrInvalidState)
	}
	return best, nil
}

// SolveCross plans the whole cross under the given mode. The puzzle is
// not modified; the returned moves replay from its current state.
func SolveCross(p *Puzzle, cross Color, mode Mode) (Solution, error) {
	if err := checkCrossSetup(p, cross); err != nil {
		return Solution{}, err
	}
	work := p.Clone()
	var sol Solution
	var all []Move
	for range CrossEdgeOrder {
		s, err := Suggest(work, cross, mode)
		if err != nil {
			return Solution{}, err
		}
		if s.Done {
			break
		}
		if err := work.Apply(s.Moves...); err != nil {
			return Solution{}, err
		}
		all = append(all, s.Moves...)
		sol.Steps = append(sol.Steps, s)
	}
	if !work.IsCrossSolved(cross) {
		return Solution{}, fmt.Errorf("%w: cross did not complete", ErrNoSolution)
	}
	sol.Moves = Compress(all)
	return sol, nil
}
