package cubecross

import (
	"fmt"
	"strings"
)

// Face represents a turnable layer in standard notation. The six uppercase
// faces turn one slice; the lowercase x, y, and z reorient the whole
// puzzle without changing its pattern.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	RotX Face = "x" // Whole-puzzle rotation in the direction of R
	RotY Face = "y" // Whole-puzzle rotation in the direction of U
	RotZ Face = "z" // Whole-puzzle rotation in the direction of F
)

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single turn: which layer and how far.
type Move struct {
	Face Face // Which layer to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, x, x', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the move that undoes this one.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// Merge combines this move with a following move of the same face. The
// second return is false when the two cancel outright. Merging different
// faces is not meaningful and reports false with the receiver unchanged.
func (m Move) Merge(next Move) (Move, bool) {
	if m.Face != next.Face {
		return m, false
	}
	combined := int(m.Turn) + int(next.Turn)
	combined = ((combined+2)%4+4)%4 - 2 // normalize to -1..2
	if combined == 0 {
		return Move{}, false
	}
	if combined == -2 {
		combined = 2
	}
	return Move{Face: m.Face, Turn: Turn(combined)}, true
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U2, x', y2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'x', 'X':
		face = RotX
	case 'y', 'Y':
		face = RotY
	case 'z', 'Z':
		face = RotZ
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Any malformed token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// mustMoves parses a notation string known at build time. It panics on
// malformed input, so it is reserved for package-internal tables.
func mustMoves(s string) []Move {
	moves, err := ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Compress folds runs of same-face turns into single moves, dropping any
// that cancel. Folding is done against the output tail, so cancellations
// cascade: R U U' R' compresses to nothing. The result leaves any puzzle
// in the same state as the input and compressing twice changes nothing.
func Compress(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			merged, ok := out[n-1].Merge(m)
			out = out[:n-1]
			if ok {
				out = append(out, merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
