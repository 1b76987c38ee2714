package cubecross

import "math/rand"

var scrambleFaces = []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}
var scrambleTurns = []Turn{CW, CCW, Double}

// ScrambleMoves generates n random face turns, never turning the same
// face twice in a row. Pass a seeded rand.Rand for reproducible
// scrambles; nil uses the shared global source.
func ScrambleMoves(n int, rng *rand.Rand) []Move {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	moves := make([]Move, 0, n)
	var prev Face
	for len(moves) < n {
		f := scrambleFaces[intn(len(scrambleFaces))]
		if f == prev {
			continue
		}
		prev = f
		moves = append(moves, Move{Face: f, Turn: scrambleTurns[intn(len(scrambleTurns))]})
	}
	return moves
}
