package cli

import (
	"fmt"

	"github.com/cubetools/cubecross/internal/config"
	"github.com/cubetools/cubecross/internal/storage"
)

// loadConfig reads the config file, tolerating a missing home directory
// by falling back to defaults.
func loadConfig() config.Config {
	cfg, err := config.LoadDefault()
	if err != nil && verbose {
		fmt.Printf("Warning: using default config: %v\n", err)
	}
	return cfg
}

// openDB opens the database and applies migrations. The --db flag wins
// over the config file, which wins over the default path.
func openDB(cfg config.Config) (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if verbose {
		fmt.Printf("Database: %s\n", db.Path())
	}
	return db, nil
}

// puzzleName resolves which saved puzzle a command works on: an explicit
// argument, then the last puzzle touched, then the configured default.
func puzzleName(cfg config.Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg.LastPuzzle != "" {
		return cfg.LastPuzzle
	}
	return cfg.DefaultPuzzle
}

// rememberPuzzle records the puzzle name for the next invocation. Losing
// the update is harmless, so failures only warn.
func rememberPuzzle(cfg config.Config, name string) {
	if cfg.LastPuzzle == name {
		return
	}
	cfg.LastPuzzle = name
	path, err := config.DefaultPath()
	if err == nil {
		err = config.Save(path, cfg)
	}
	if err != nil && verbose {
		fmt.Printf("Warning: could not update config: %v\n", err)
	}
}
