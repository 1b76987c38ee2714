package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cubetools/cubecross"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if v != 1 {
		t.Errorf("schema version = %d, want 1", v)
	}
}

func TestPuzzleSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewPuzzleRepository(db)

	p := cubecross.New()
	if err := p.ApplyNotation("R U F' D2 L B"); err != nil {
		t.Fatalf("scramble: %v", err)
	}

	if err := repo.Save("scrambled", p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load("scrambled")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(p.Pieces(), got.Pieces()); diff != "" {
		t.Errorf("loaded puzzle differs from saved (-want +got):\n%s", diff)
	}
}

func TestPuzzleSaveOverwrites(t *testing.T) {
	db := openTestDB(t)
	repo := NewPuzzleRepository(db)

	p := cubecross.New()
	if err := repo.Save("p", p); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := p.ApplyNotation("R"); err != nil {
		t.Fatalf("R: %v", err)
	}
	if err := repo.Save("p", p); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := repo.Load("p")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.IsSolved() {
		t.Error("load should return the overwritten state, not the original")
	}

	infos, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Errorf("List returned %d puzzles, want 1", len(infos))
	}
}

func TestPuzzleLoadMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewPuzzleRepository(db)

	_, err := repo.Load("nope")
	if !errors.Is(err, ErrPuzzleNotFound) {
		t.Errorf("Load of missing puzzle = %v, want ErrPuzzleNotFound", err)
	}
}

func TestPuzzleDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewPuzzleRepository(db)

	if err := repo.Save("gone", cubecross.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Load("gone"); !errors.Is(err, ErrPuzzleNotFound) {
		t.Errorf("Load after delete = %v, want ErrPuzzleNotFound", err)
	}
	if err := repo.Delete("gone"); !errors.Is(err, ErrPuzzleNotFound) {
		t.Errorf("second Delete = %v, want ErrPuzzleNotFound", err)
	}

	// Piece rows go with the puzzle row.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM puzzle_pieces WHERE puzzle_name = 'gone'").Scan(&count); err != nil {
		t.Fatalf("count pieces: %v", err)
	}
	if count != 0 {
		t.Errorf("%d piece rows survived the delete", count)
	}
}

func TestPuzzleLoadRejectsTamperedRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewPuzzleRepository(db)

	if err := repo.Save("p", cubecross.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Park two pieces on the same position.
	if _, err := db.Exec(`
		UPDATE puzzle_pieces SET current_x = 1, current_y = 1, current_z = 1
		WHERE puzzle_name = 'p' AND piece_index IN (0, 1)
	`); err != nil {
		t.Fatalf("tamper: %v", err)
	}
	if _, err := repo.Load("p"); err == nil {
		t.Error("Load should reject a state with overlapping pieces")
	}
}

func TestHistoryRecordAndRecent(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)

	id, err := repo.Record("daily", "white", "fixed", false, "R U F", 3)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == "" {
		t.Fatal("Record returned an empty ID")
	}
	if _, err := repo.Record("daily", "white", "shortest", true, "F2 D", 2); err != nil {
		t.Fatalf("second Record: %v", err)
	}

	entries, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.PuzzleName != "daily" {
			t.Errorf("entry puzzle = %q, want daily", e.PuzzleName)
		}
	}

	entries, err = repo.Recent(1)
	if err != nil {
		t.Fatalf("Recent(1): %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Recent(1) returned %d entries", len(entries))
	}
}
