package cubecross

// Axis identifies one of the three lattice axes.
type Axis int

const (
	AxisX Axis = iota // left (-1) to right (+1)
	AxisY             // down (-1) to up (+1)
	AxisZ             // back (-1) to front (+1)
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// Coord is a position on the 3x3x3 lattice. Each component is -1, 0, or +1.
// The origin is the hidden core of the puzzle; the 26 other points are piece
// positions. X grows to the right, Y up, Z toward the viewer.
type Coord struct {
	X, Y, Z int
}

// NewCoord builds a Coord, rejecting components outside {-1, 0, 1}.
func NewCoord(x, y, z int) (Coord, error) {
	if x < -1 || x > 1 || y < -1 || y > 1 || z < -1 || z > 1 {
		return Coord{}, ErrInvalidCoord
	}
	return Coord{X: x, Y: y, Z: z}, nil
}

// Component returns the component of c along the given axis.
func (c Coord) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	}
	return c.Z
}

// nonZeroAxes counts the nonzero components. On piece positions this is the
// sticker count: 1 for centers, 2 for edges, 3 for corners.
func (c Coord) nonZeroAxes() int {
	n := 0
	if c.X != 0 {
		n++
	}
	if c.Y != 0 {
		n++
	}
	if c.Z != 0 {
		n++
	}
	return n
}

// Rotation is an integer 3x3 rotation matrix acting on Coords by
// column-vector multiplication. The exported set is closed: the identity
// plus the quarter, half, and three-quarter turns about each axis. Values
// outside this set cannot be constructed.
type Rotation struct {
	m [3][3]int
}

// The rotation set. Quarter turns follow the right-hand rule viewed from
// the positive end of the axis toward the origin, so RotX90 is the motion
// of a clockwise R turn, RotY90 a clockwise U, RotZ90 a clockwise F.
var (
	Identity = Rotation{m: [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

	RotX90  = Rotation{m: [3][3]int{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}}  // (x,y,z) -> (x,z,-y)
	RotX180 = Rotation{m: [3][3]int{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}} // (x,y,z) -> (x,-y,-z)
	RotX270 = Rotation{m: [3][3]int{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}}  // (x,y,z) -> (x,-z,y)

	RotY90  = Rotation{m: [3][3]int{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}}  // (x,y,z) -> (-z,y,x)
	RotY180 = Rotation{m: [3][3]int{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}} // (x,y,z) -> (-x,y,-z)
	RotY270 = Rotation{m: [3][3]int{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}}  // (x,y,z) -> (z,y,-x)

	RotZ90  = Rotation{m: [3][3]int{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}}  // (x,y,z) -> (y,-x,z)
	RotZ180 = Rotation{m: [3][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}} // (x,y,z) -> (-x,-y,z)
	RotZ270 = Rotation{m: [3][3]int{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}}  // (x,y,z) -> (-y,x,z)
)

// Apply rotates a coordinate.
func (r Rotation) Apply(c Coord) Coord {
	v := [3]int{c.X, c.Y, c.Z}
	var out [3]int
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row] += r.m[row][col] * v[col]
		}
	}
	return Coord{X: out[0], Y: out[1], Z: out[2]}
}

// Compose returns the rotation equivalent to applying other first, then r.
func (r Rotation) Compose(other Rotation) Rotation {
	var out Rotation
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			for k := 0; k < 3; k++ {
				out.m[row][col] += r.m[row][k] * other.m[k][col]
			}
		}
	}
	return out
}

// Inverse returns the reverse rotation. For these matrices the inverse is
// the transpose.
func (r Rotation) Inverse() Rotation {
	var out Rotation
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.m[row][col] = r.m[col][row]
		}
	}
	return out
}

// PermuteAxis reports where a sticker facing along axis a faces after the
// rotation. Each column of the matrix has exactly one nonzero entry, so the
// image of an axis is always another single axis.
func (r Rotation) PermuteAxis(a Axis) Axis {
	col := int(a)
	for row := 0; row < 3; row++ {
		if r.m[row][col] != 0 {
			return Axis(row)
		}
	}
	return a
}
