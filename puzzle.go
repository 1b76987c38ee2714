package cubecross

import (
	"fmt"
	"strings"
)

// CrossEdgeOrder is the fixed resolution order for cross edges: front,
// right, back, left in the solved orientation.
var CrossEdgeOrder = [4]Color{Green, Orange, Blue, Red}

// pieceCount is the number of movable pieces: 8 corners, 12 edges, 6 centers.
const pieceCount = 26

// Puzzle is the full state of a 3x3x3 puzzle, tracked piece by piece. The
// zero value is not usable; build one with New or FromPieces.
type Puzzle struct {
	pieces [pieceCount]Piece
}

// New returns a solved puzzle in the standard orientation: white down,
// yellow up, green front, blue back, orange right, red left.
func New() *Puzzle {
	var p Puzzle
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				p.pieces[i] = newPiece(Coord{X: x, Y: y, Z: z})
				i++
			}
		}
	}
	return &p
}

// Clone returns an independent copy. All trial mutation in the solvers
// happens on clones.
func (p *Puzzle) Clone() *Puzzle {
	cp := *p
	return &cp
}

// Pieces returns a snapshot of all 26 pieces.
func (p *Puzzle) Pieces() []Piece {
	out := make([]Piece, len(p.pieces))
	copy(out, p.pieces[:])
	return out
}

// FromPieces rebuilds a puzzle from a stored snapshot, validating that it
// describes a well-formed state: 26 pieces whose home and current
// positions each cover the lattice exactly once, with stickers matching
// the home piece and facing the axes the current position exposes.
func FromPieces(pieces []Piece) (*Puzzle, error) {
	if len(pieces) != pieceCount {
		return nil, fmt.Errorf("%w: got %d pieces, want %d", ErrInvalidState, len(pieces), pieceCount)
	}
	seenSolved := make(map[Coord]bool, len(pieces))
	seenCurrent := make(map[Coord]bool, len(pieces))
	for _, pc := range pieces {
		if _, err := NewCoord(pc.Solved.X, pc.Solved.Y, pc.Solved.Z); err != nil || pc.Solved.nonZeroAxes() == 0 {
			return nil, fmt.Errorf("%w: bad home position %v", ErrInvalidState, pc.Solved)
		}
		if _, err := NewCoord(pc.Current.X, pc.Current.Y, pc.Current.Z); err != nil || pc.Current.nonZeroAxes() == 0 {
			return nil, fmt.Errorf("%w: bad current position %v", ErrInvalidState, pc.Current)
		}
		if seenSolved[pc.Solved] {
			return nil, fmt.Errorf("%w: duplicate home position %v", ErrInvalidState, pc.Solved)
		}
		if seenCurrent[pc.Current] {
			return nil, fmt.Errorf("%w: duplicate current position %v", ErrInvalidState, pc.Current)
		}
		seenSolved[pc.Solved] = true
		seenCurrent[pc.Current] = true
		for a := AxisX; a <= AxisZ; a++ {
			hasSticker := pc.Colors.Get(a) != NoColor
			if hasSticker != (pc.Current.Component(a) != 0) {
				return nil, fmt.Errorf("%w: piece at %v has stickers on the wrong axes", ErrInvalidState, pc.Current)
			}
		}
		if !sameStickers(pc.Colors, newPiece(pc.Solved).Colors) {
			return nil, fmt.Errorf("%w: piece from %v carries the wrong stickers", ErrInvalidState, pc.Solved)
		}
	}
	var p Puzzle
	copy(p.pieces[:], pieces)
	return &p, nil
}

// sameStickers compares two records as unordered sticker sets.
func sameStickers(a, b ColorRecord) bool {
	var countA, countB [Red + 1]int
	for i := 0; i < 3; i++ {
		countA[a[i]]++
		countB[b[i]]++
	}
	return countA == countB
}

// PieceAt returns the piece currently occupying a position.
func (p *Puzzle) PieceAt(c Coord) (Piece, bool) {
	for i := range p.pieces {
		if p.pieces[i].Current == c {
			return p.pieces[i], true
		}
	}
	return Piece{}, false
}

// FindEdge returns the edge piece carrying both colors.
func (p *Puzzle) FindEdge(a, b Color) (Piece, error) {
	for i := range p.pieces {
		pc := &p.pieces[i]
		if pc.Kind() == KindEdge && pc.Colors.Has(a) && pc.Colors.Has(b) {
			return *pc, nil
		}
	}
	return Piece{}, fmt.Errorf("%w: %s-%s edge", ErrPieceNotFound, a, b)
}

// CenterWith returns the center piece of the given color.
func (p *Puzzle) CenterWith(c Color) (Piece, error) {
	for i := range p.pieces {
		pc := &p.pieces[i]
		if pc.Kind() == KindCenter && pc.Colors.Has(c) {
			return *pc, nil
		}
	}
	return Piece{}, fmt.Errorf("%w: %s center", ErrPieceNotFound, c)
}

// IsSolved reports whether every face shows a single color. This is a
// pattern check, so a solved puzzle held in any orientation counts.
func (p *Puzzle) IsSolved() bool {
	for _, f := range stickerFaces {
		grid := p.faceGrid(f)
		first := grid[0][0]
		if first == NoColor {
			return false
		}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if grid[r][c] != first {
					return false
				}
			}
		}
	}
	return true
}

// CrossEdgeSolved reports whether the cross/other edge sits between its
// two centers with the cross sticker against the cross face. The check is
// relative to where the centers currently are, so it survives whole-cube
// rotations.
func (p *Puzzle) CrossEdgeSolved(cross, other Color) bool {
	edge, err := p.FindEdge(cross, other)
	if err != nil {
		return false
	}
	cc, err := p.CenterWith(cross)
	if err != nil {
		return false
	}
	oc, err := p.CenterWith(other)
	if err != nil {
		return false
	}
	home := Coord{
		X: cc.Current.X + oc.Current.X,
		Y: cc.Current.Y + oc.Current.Y,
		Z: cc.Current.Z + oc.Current.Z,
	}
	if edge.Current != home {
		return false
	}
	// At the home slot the sticker faces the cross face exactly when its
	// axis is the cross center's axis.
	axis, ok := edge.Colors.AxisOf(cross)
	return ok && cc.Current.Component(axis) != 0
}

// SolvedCrossEdges returns the cross edges currently solved, in the fixed
// resolution order.
func (p *Puzzle) SolvedCrossEdges(cross Color) []Color {
	var out []Color
	for _, other := range CrossEdgeOrder {
		if p.CrossEdgeSolved(cross, other) {
			out = append(out, other)
		}
	}
	return out
}

// IsCrossSolved reports whether all four cross edges are in place.
func (p *Puzzle) IsCrossSolved(cross Color) bool {
	return len(p.SolvedCrossEdges(cross)) == len(CrossEdgeOrder)
}

// IsCanonical reports whether the puzzle is held in the standard
// orientation: white center down and green center front.
func (p *Puzzle) IsCanonical() bool {
	w, err := p.CenterWith(White)
	if err != nil {
		return false
	}
	g, err := p.CenterWith(Green)
	if err != nil {
		return false
	}
	return w.Current == (Coord{Y: -1}) && g.Current == (Coord{Z: 1})
}

// crossOriented reports whether the cross color's center faces down, the
// precondition for classification and solving.
func (p *Puzzle) crossOriented(cross Color) bool {
	c, err := p.CenterWith(cross)
	if err != nil {
		return false
	}
	return c.Current == Coord{Y: -1}
}

var stickerFaces = [6]Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

// FaceColors projects one face onto a 3x3 grid of sticker colors, viewed
// from outside the puzzle. Rows run top to bottom in the usual unfolded
// net: looking down on U the top row is the back edge, and every side face
// has the up layer as its top row.
func (p *Puzzle) FaceColors(f Face) ([3][3]Color, error) {
	for _, sf := range stickerFaces {
		if f == sf {
			return p.faceGrid(f), nil
		}
	}
	return [3][3]Color{}, fmt.Errorf("cubecross: %q is not a sticker face", f)
}

func (p *Puzzle) faceGrid(f Face) [3][3]Color {
	var grid [3][3]Color
	axis := faceAxis(f)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			pos := facePoint(f, r, c)
			if pc, ok := p.PieceAt(pos); ok {
				grid[r][c] = pc.Colors.Get(axis)
			}
		}
	}
	return grid
}

// facePoint maps a (row, column) cell of a face grid to the lattice
// position it shows.
func facePoint(f Face, r, c int) Coord {
	switch f {
	case FaceU:
		return Coord{X: c - 1, Y: 1, Z: r - 1}
	case FaceD:
		return Coord{X: c - 1, Y: -1, Z: 1 - r}
	case FaceF:
		return Coord{X: c - 1, Y: 1 - r, Z: 1}
	case FaceB:
		return Coord{X: 1 - c, Y: 1 - r, Z: -1}
	case FaceR:
		return Coord{X: 1, Y: 1 - r, Z: 1 - c}
	case FaceL:
		return Coord{X: -1, Y: 1 - r, Z: c - 1}
	}
	return Coord{}
}

// String renders the puzzle as an unfolded net with single-letter colors:
// up on top, then left/front/right/back, then down.
func (p *Puzzle) String() string {
	u := p.faceGrid(FaceU)
	l := p.faceGrid(FaceL)
	f := p.faceGrid(FaceF)
	r := p.faceGrid(FaceR)
	b := p.faceGrid(FaceB)
	d := p.faceGrid(FaceD)

	var sb strings.Builder
	writeRow := func(grid [3][3]Color, row int) {
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(grid[row][c].Initial())
		}
	}
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(u, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		writeRow(l, row)
		sb.WriteByte(' ')
		writeRow(f, row)
		sb.WriteByte(' ')
		writeRow(r, row)
		sb.WriteByte(' ')
		writeRow(b, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(d, row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
