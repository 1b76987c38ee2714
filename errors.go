package cubecross

import "errors"

// Sentinel errors for the cubecross package.
var (
	// Construction and parsing errors
	ErrInvalidNotation = errors.New("cubecross: invalid move notation")
	ErrInvalidCoord    = errors.New("cubecross: coordinate components must be -1, 0, or 1")
	ErrInvalidColor    = errors.New("cubecross: unknown color")
	ErrInvalidState    = errors.New("cubecross: invalid puzzle state")

	// Lookup errors
	ErrPieceNotFound = errors.New("cubecross: piece not found")

	// Solver errors
	ErrNotCanonical  = errors.New("cubecross: puzzle is not in canonical orientation")
	ErrNoOrientation = errors.New("cubecross: no orientation satisfies the request")
	ErrNoSolution    = errors.New("cubecross: no solution found")
)
