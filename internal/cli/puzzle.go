package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubetools/cubecross"
	"github.com/cubetools/cubecross/internal/render"
	"github.com/cubetools/cubecross/internal/storage"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	showPlain     bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a solved puzzle",
	Long:  `Create a new puzzle in the solved state and save it under the given name.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble [name]",
	Short: "Scramble a saved puzzle",
	Long: `Apply a random move sequence to a saved puzzle and print it.

The scramble never turns the same face twice in a row. Pass --seed for a
reproducible sequence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScramble,
}

var applyCmd = &cobra.Command{
	Use:   "apply [name] <moves>",
	Short: "Apply moves to a saved puzzle",
	Long: `Parse a move sequence in standard notation and apply it to a saved
puzzle. Examples of accepted tokens: R U' F2 x y' z2.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runApply,
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display a saved puzzle",
	Long:  `Render a saved puzzle as an unfolded net, with its cross status.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved puzzles",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved puzzle",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(newCmd)

	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 0, "Scramble length (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = nondeterministic)")

	rootCmd.AddCommand(applyCmd)

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Render without color")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	name := puzzleName(cfg, args)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPuzzleRepository(db)
	if err := repo.Save(name, cubecross.New()); err != nil {
		return err
	}
	rememberPuzzle(cfg, name)

	fmt.Printf("Created solved puzzle %q\n", name)
	return nil
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	name := puzzleName(cfg, args)

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

	n := scrambleMoves
	if n <= 0 {
		n = cfg.ScrambleLength
	}
	var rng *rand.Rand
	if scrambleSeed != 0 {
		rng = rand.New(rand.NewSource(scrambleSeed))
	}

	moves := cubecross.ScrambleMoves(n, rng)
	if err := p.Apply(moves...); err != nil {
		return err
	}
	if err := repo.Save(name, p); err != nil {
		return err
	}
	rememberPuzzle(cfg, name)

	fmt.Printf("Scrambled %q with: %s\n", name, cubecross.FormatMoves(moves))
	if verbose {
		fmt.Println(render.Net(p, cfg.Color))
	}
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// With a single argument it is the move string, acting on the
	// default puzzle; with two, the first names the puzzle.
	var name, notation string
	if len(args) == 1 {
		name = puzzleName(cfg, nil)
		notation = args[0]
	} else {
		name = args[0]
		notation = args[1]
	}

	moves, err := cubecross.ParseMoves(notation)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("no moves to apply")
	}

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
	if err := p.Apply(moves...); err != nil {
		return err
	}
	if err := repo.Save(name, p); err != nil {
		return err
	}
	rememberPuzzle(cfg, name)

	fmt.Printf("Applied %s to %q\n", cubecross.FormatMoves(moves), name)
	if verbose {
		fmt.Println(render.Net(p, cfg.Color))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	name := puzzleName(cfg, args)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := storage.NewPuzzleRepository(db).Load(name)
	if err != nil {
		return err
	}
	rememberPuzzle(cfg, name)

	fmt.Printf("Puzzle %q\n\n", name)
	fmt.Println(render.Net(p, cfg.Color && !showPlain))
	fmt.Println(render.CrossStatus(p, cubecross.White))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	infos, err := storage.NewPuzzleRepository(db).List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No saved puzzles. Create one with: cubecross new")
		return nil
	}

	fmt.Printf("%-20s %-20s %s\n", "NAME", "UPDATED", "CREATED")
	fmt.Println(strings.Repeat("-", 60))
	for _, info := range infos {
		fmt.Printf("%-20s %-20s %s\n",
			info.Name,
			info.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
			info.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewPuzzleRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %q\n", args[0])
	return nil
}
