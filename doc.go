// Package cubecross models a 3x3x3 twisty puzzle piece by piece and
// plans the opening stage of a layer-by-layer solve: the cross.
//
// # Features
//
//   - Piece-level state: every cubie tracks its home, its position, and
//     its stickers, all moved through shared rotation matrices
//   - Full Singmaster move engine, including x, y, and z rotations
//   - 24-case cross edge classifier with per-color perspectives
//   - Greedy planning edge by edge, and an exhaustive planner that
//     validates every candidate by replay before returning it
//
// # Quick Start
//
// Scramble a puzzle and plan its white cross:
//
//	puzzle := cubecross.New()
//	if err := puzzle.ApplyNotation("D2 F R' B L2 U F2"); err != nil {
//	    log.Fatal(err)
//	}
//
//	sol, err := cubecross.SolveCross(puzzle, cubecross.White, cubecross.FixedOrder)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubecross.FormatMoves(sol.Moves))
//
// # Step-By-Step Advice
//
// Suggest inspects the state and recommends one edge at a time:
//
//	s, err := cubecross.Suggest(puzzle, cubecross.White, cubecross.ShortestFirst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.Describe())
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubecross.R      // Right clockwise
//	cubecross.RPrime // Right counter-clockwise
//	cubecross.R2     // Right 180
//	// ... and similarly for L, U, D, F, B, x, y, z
//
// # Orientation
//
// The planners expect the cross color's center to face down. Normalize
// searches the 24 ways of holding the puzzle and returns the rotations
// that set a requested orientation up:
//
//	rot, oriented, err := cubecross.Normalize(puzzle, cubecross.Green, cubecross.White)
package cubecross
