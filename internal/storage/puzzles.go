package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cubetools/cubecross"
)

// ErrPuzzleNotFound reports a load or delete of a name with no saved state.
var ErrPuzzleNotFound = errors.New("storage: puzzle not found")

// PuzzleInfo describes a saved puzzle without its pieces.
type PuzzleInfo struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PuzzleRepository persists puzzle states by name as flat piece lists.
type PuzzleRepository struct {
	db *DB
}

// NewPuzzleRepository creates a new puzzle repository.
func NewPuzzleRepository(db *DB) *PuzzleRepository {
	return &PuzzleRepository{db: db}
}

// colorName encodes a sticker slot; empty slots store the empty string.
func colorName(c cubecross.Color) string {
	if c == cubecross.NoColor {
		return ""
	}
	return c.String()
}

func parseColorName(s string) (cubecross.Color, error) {
	if s == "" {
		return cubecross.NoColor, nil
	}
	return cubecross.ParseColor(s)
}

// Save stores the puzzle under the given name, replacing any previous
// state. The puzzle row and all 26 piece rows are written in one
// transaction.
func (r *PuzzleRepository) Save(name string, p *cubecross.Puzzle) error {
	if name == "" {
		return fmt.Errorf("storage: puzzle name must not be empty")
	}
	now := time.Now().UTC().Format(time.RFC3339)

	return r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO puzzles (name, created_at, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at
		`, name, now, now)
		if err != nil {
			return fmt.Errorf("failed to upsert puzzle: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM puzzle_pieces WHERE puzzle_name = ?", name); err != nil {
			return fmt.Errorf("failed to clear pieces: %w", err)
		}

		for i, pc := range p.Pieces() {
			_, err := tx.Exec(`
				INSERT INTO puzzle_pieces (
					puzzle_name, piece_index,
					solved_x, solved_y, solved_z,
					current_x, current_y, current_z,
					color_x, color_y, color_z
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, name, i,
				pc.Solved.X, pc.Solved.Y, pc.Solved.Z,
				pc.Current.X, pc.Current.Y, pc.Current.Z,
				colorName(pc.Colors.Get(cubecross.AxisX)),
				colorName(pc.Colors.Get(cubecross.AxisY)),
				colorName(pc.Colors.Get(cubecross.AxisZ)))
			if err != nil {
				return fmt.Errorf("failed to insert piece %d: %w", i, err)
			}
		}
		return nil
	})
}

// Load rebuilds the named puzzle from its piece rows. The state is
// validated on the way in, so a tampered database surfaces as an error
// rather than a quietly broken puzzle.
func (r *PuzzleRepository) Load(name string) (*cubecross.Puzzle, error) {
	var exists int
	err := r.db.QueryRow("SELECT COUNT(*) FROM puzzles WHERE name = ?", name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to look up puzzle: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPuzzleNotFound, name)
	}

	rows, err := r.db.Query(`
		SELECT solved_x, solved_y, solved_z,
		       current_x, current_y, current_z,
		       color_x, color_y, color_z
		FROM puzzle_pieces
		WHERE puzzle_name = ?
		ORDER BY piece_index
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get pieces: %w", err)
	}
	defer rows.Close()

	var pieces []cubecross.Piece
	for rows.Next() {
		var sx, sy, sz, cx, cy, cz int
		var colX, colY, colZ string
		if err := rows.Scan(&sx, &sy, &sz, &cx, &cy, &cz, &colX, &colY, &colZ); err != nil {
			return nil, fmt.Errorf("failed to scan piece: %w", err)
		}
		solved, err := cubecross.NewCoord(sx, sy, sz)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", name, err)
		}
		current, err := cubecross.NewCoord(cx, cy, cz)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", name, err)
		}
		var rec cubecross.ColorRecord
		for a, s := range map[cubecross.Axis]string{
			cubecross.AxisX: colX,
			cubecross.AxisY: colY,
			cubecross.AxisZ: colZ,
		} {
			c, err := parseColorName(s)
			if err != nil {
				return nil, fmt.Errorf("puzzle %q: %w", name, err)
			}
			rec[a] = c
		}
		pieces = append(pieces, cubecross.Piece{Solved: solved, Current: current, Colors: rec})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pieces: %w", err)
	}

	p, err := cubecross.FromPieces(pieces)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", name, err)
	}
	return p, nil
}

// List returns the saved puzzles, most recently updated first.
func (r *PuzzleRepository) List() ([]PuzzleInfo, error) {
	rows, err := r.db.Query(`
		SELECT name, created_at, updated_at
		FROM puzzles
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var infos []PuzzleInfo
	for rows.Next() {
		var info PuzzleInfo
		var created, updated string
		if err := rows.Scan(&info.Name, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle: %w", err)
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("bad created_at for %q: %w", info.Name, err)
		}
		if info.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
			return nil, fmt.Errorf("bad updated_at for %q: %w", info.Name, err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a saved puzzle and its pieces.
func (r *PuzzleRepository) Delete(name string) error {
	result, err := r.db.Exec("DELETE FROM puzzles WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete puzzle: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPuzzleNotFound, name)
	}
	return nil
}
