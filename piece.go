package cubecross

import (
	"fmt"
	"strings"
)

// Color identifies a sticker color. NoColor marks an empty slot in a
// ColorRecord.
type Color int

const (
	NoColor Color = iota
	White
	Yellow
	Green
	Blue
	Orange
	Red
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Red:
		return "red"
	}
	return "none"
}

// Initial returns the single-letter abbreviation used in text renderings.
func (c Color) Initial() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Red:
		return "R"
	}
	return "."
}

// ParseColor reads a color name, accepting full names and single-letter
// abbreviations in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "yellow", "y":
		return Yellow, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	case "orange", "o":
		return Orange, nil
	case "red", "r":
		return Red, nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// The fixed color scheme: white down, yellow up, green front, blue back,
// orange right, red left.
var schemeColors = map[Coord]Color{
	{X: 1}:  Orange,
	{X: -1}: Red,
	{Y: 1}:  Yellow,
	{Y: -1}: White,
	{Z: 1}:  Green,
	{Z: -1}: Blue,
}

// faceColor returns the scheme color of the face in direction d, which must
// be a unit direction.
func faceColor(d Coord) Color {
	return schemeColors[d]
}

// ColorRecord holds a piece's stickers, indexed by the axis each sticker
// currently faces along. Axes without a sticker hold NoColor.
type ColorRecord [3]Color

// Get returns the sticker on the given axis, or NoColor.
func (r ColorRecord) Get(a Axis) Color {
	return r[a]
}

// Count returns the number of stickers.
func (r ColorRecord) Count() int {
	n := 0
	for _, c := range r {
		if c != NoColor {
			n++
		}
	}
	return n
}

// Has reports whether any slot holds the given color.
func (r ColorRecord) Has(c Color) bool {
	for _, got := range r {
		if got == c {
			return true
		}
	}
	return false
}

// AxisOf returns the axis the given color faces along.
func (r ColorRecord) AxisOf(c Color) (Axis, bool) {
	for a, got := range r {
		if got == c {
			return Axis(a), true
		}
	}
	return 0, false
}

// permute moves each sticker to the axis the rotation carries it to.
func (r ColorRecord) permute(rot Rotation) ColorRecord {
	var out ColorRecord
	for a, c := range r {
		out[rot.PermuteAxis(Axis(a))] = c
	}
	return out
}

// Kind classifies a piece by sticker count.
type Kind int

const (
	KindCenter Kind = 1
	KindEdge   Kind = 2
	KindCorner Kind = 3
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	}
	return "unknown"
}

// Piece is one physical cubie. Solved is its home position, Current where
// it sits now, and Colors its stickers keyed by the axis they face. All
// fields are plain values, so copying a Piece copies it fully.
type Piece struct {
	Solved  Coord
	Current Coord
	Colors  ColorRecord
}

// newPiece builds the solved piece for a home position: Current equals
// Solved and each sticker shows the scheme color of the face it touches.
func newPiece(home Coord) Piece {
	var rec ColorRecord
	if home.X != 0 {
		rec[AxisX] = faceColor(Coord{X: home.X})
	}
	if home.Y != 0 {
		rec[AxisY] = faceColor(Coord{Y: home.Y})
	}
	if home.Z != 0 {
		rec[AxisZ] = faceColor(Coord{Z: home.Z})
	}
	return Piece{Solved: home, Current: home, Colors: rec}
}

// Kind derives the piece kind from its sticker count.
func (p Piece) Kind() Kind {
	return Kind(p.Colors.Count())
}

// IsHome reports whether the piece sits in its solved position with every
// sticker facing its own face.
func (p Piece) IsHome() bool {
	return p.Current == p.Solved && p.Colors == newPiece(p.Solved).Colors
}

// rotate moves the piece: the coordinate through the matrix and every
// sticker to the axis the matrix sends it to. Position and colors go
// through the same rotation, so they can never fall out of step.
func (p *Piece) rotate(r Rotation) {
	p.Current = r.Apply(p.Current)
	p.Colors = p.Colors.permute(r)
}
