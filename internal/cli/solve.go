package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubetools/cubecross"
	"github.com/cubetools/cubecross/internal/storage"
)

var (
	solveMode       string
	solveSuperhuman bool
	solveEdge       string
	solveCross      string
	solveApply      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [name]",
	Short: "Plan the cross for a saved puzzle",
	Long: `Plan the opening cross for a saved puzzle.

By default the greedy planner places the edges one at a time, in a fixed
order or shortest-first (--mode). With --superhuman every edge order is
searched and the shortest plan that survives a replay check is returned.
With --edge only the named edge is analyzed.

The puzzle may be held any way; the printed solution starts with the
whole-puzzle rotations that bring the cross color down.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveMode, "mode", "", "Edge selection: fixed or shortest (default from config)")
	solveCmd.Flags().BoolVar(&solveSuperhuman, "superhuman", false, "Search all edge orders for the shortest validated plan")
	solveCmd.Flags().StringVar(&solveEdge, "edge", "", "Analyze a single edge by its side color (green, orange, blue, red)")
	solveCmd.Flags().StringVar(&solveCross, "cross", "white", "Cross color: white or yellow")
	solveCmd.Flags().BoolVar(&solveApply, "apply", false, "Apply the solution to the saved puzzle")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	name := puzzleName(cfg, args)

	cross, err := cubecross.ParseColor(solveCross)
	if err != nil {
		return err
	}

	modeName := solveMode
	if modeName == "" {
		modeName = cfg.SolverMode
	}
	mode, err := cubecross.ParseMode(modeName)
	if err != nil {
		return err
	}
	superhuman := solveSuperhuman || (!cmd.Flags().Changed("superhuman") && cfg.Superhuman)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPuzzleRepository(db)
	p, err := repo.Load(name)
	if err != nil {
		return err
	}
	rememberPuzzle(cfg, name)

	// Reorient so the cross color faces down; whatever we plan on the
	// oriented clone is only valid after these rotations.
	prefix, oriented, err := cubecross.Normalize(p, cubecross.Green, cross)
	if err != nil {
		return err
	}
	if len(prefix) > 0 {
		fmt.Printf("Hold the puzzle with %s down first: %s\n", cross, cubecross.FormatMoves(prefix))
	}

	if solveEdge != "" {
		other, err := cubecross.ParseColor(solveEdge)
		if err != nil {
			return err
		}
		s, err := cubecross.SuggestEdge(oriented, cross, other)
		if err != nil {
			return err
		}
		fmt.Println(s.Describe())
		return finishSolve(repo, db, name, cross, "edge:"+other.String(), false, p, prefix, s.Moves)
	}

	var sol cubecross.Solution
	if superhuman {
		sol, err = cubecross.SolveOptimal(oriented, cross)
	} else {
		sol, err = cubecross.SolveCross(oriented, cross, mode)
	}
	if err != nil {
		return err
	}

	if len(sol.Moves) == 0 {
		fmt.Printf("The %s cross is already complete.\n", cross)
	} else {
		for i, step := range sol.Steps {
			fmt.Printf("  %d. %s\n", i+1, step.Describe())
		}
		fmt.Printf("Solution (%d moves): %s\n", len(sol.Moves), cubecross.FormatMoves(sol.Moves))
	}

	return finishSolve(repo, db, name, cross, mode.String(), superhuman, p, prefix, sol.Moves)
}

// finishSolve records the outcome and, with --apply, commits the full
// sequence (rotations included) to the saved puzzle.
func finishSolve(repo *storage.PuzzleRepository, db *storage.DB, name string, cross cubecross.Color, mode string, superhuman bool, p *cubecross.Puzzle, prefix, moves []cubecross.Move) error {
	full := append(append([]cubecross.Move{}, prefix...), moves...)

	if len(moves) > 0 {
		history := storage.NewHistoryRepository(db)
		id, err := history.Record(name, cross.String(), mode, superhuman, cubecross.FormatMoves(full), len(full))
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Recorded solve %s\n", id)
		}
	}

	if !solveApply || len(full) == 0 {
		return nil
	}
	if err := p.Apply(full...); err != nil {
		return err
	}
	if err := repo.Save(name, p); err != nil {
		return err
	}
	fmt.Printf("Applied solution to %q\n", name)
	return nil
}
