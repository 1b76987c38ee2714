package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubetools/cubecross/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent cross solves",
	Long:  `Display past solutions: which puzzle, which solver, and the moves.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := storage.NewHistoryRepository(db).Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, e := range entries {
		solver := e.Mode
		if e.Superhuman {
			solver = "superhuman"
		}
		fmt.Printf("%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.HistoryID)
		fmt.Printf("  puzzle %q, %s cross, %s, %d moves\n", e.PuzzleName, e.CrossColor, solver, e.MoveCount)
		fmt.Printf("  %s\n", e.Moves)
		fmt.Println(strings.Repeat("-", 60))
	}
	return nil
}
