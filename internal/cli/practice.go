package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubetools/cubecross"
	"github.com/cubetools/cubecross/internal/render"
	"github.com/cubetools/cubecross/internal/storage"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [name]",
	Short: "Interactive cross practice",
	Long: `Start an interactive session on a saved puzzle. Type move sequences to
turn it and watch the cross status update.

Besides moves, the prompt accepts:
  hint      - suggest the next edge placement
  super     - show the shortest validated full-cross plan
  scramble  - scramble the puzzle
  reset     - back to solved
  quit      - leave (the state is saved after every change)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hintStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model
type practiceModel struct {
	name   string
	repo   *storage.PuzzleRepository
	puzzle *cubecross.Puzzle
	color  bool

	input    textinput.Model
	lastMove string
	hint     string
	err      error
	quitting bool
}

func newPracticeModel(name string, repo *storage.PuzzleRepository, p *cubecross.Puzzle, color bool) *practiceModel {
	ti := textinput.New()
	ti.Placeholder = "R U R' U'  |  hint, super, scramble, reset, quit"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Focus()

	return &practiceModel{
		name:   name,
		repo:   repo,
		puzzle: p,
		color:  color,
		input:  ti,
	}
}

func (m *practiceModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m, m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute handles one prompt line: a command word or a move sequence.
func (m *practiceModel) execute(line string) tea.Cmd {
	m.err = nil
	m.hint = ""
	m.lastMove = ""

	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		m.quitting = true
		return tea.Quit
	case "reset":
		m.puzzle = cubecross.New()
		m.lastMove = "reset to solved"
		m.save()
		return nil
	case "scramble":
		moves := cubecross.ScrambleMoves(20, rand.New(rand.NewSource(rand.Int63())))
		if err := m.puzzle.Apply(moves...); err != nil {
			m.err = err
			return nil
		}
		m.lastMove = "scramble: " + cubecross.FormatMoves(moves)
		m.save()
		return nil
	case "hint":
		m.showHint(false)
		return nil
	case "super", "superhuman":
		m.showHint(true)
		return nil
	}

	moves, err := cubecross.ParseMoves(line)
	if err != nil {
		m.err = err
		return nil
	}
	if err := m.puzzle.Apply(moves...); err != nil {
		m.err = err
		return nil
	}
	m.lastMove = cubecross.FormatMoves(moves)
	m.save()
	return nil
}

func (m *practiceModel) showHint(super bool) {
	prefix, oriented, err := cubecross.Normalize(m.puzzle, cubecross.Green, cubecross.White)
	if err != nil {
		m.err = err
		return
	}
	hold := ""
	if len(prefix) > 0 {
		hold = fmt.Sprintf("hold: %s, then ", cubecross.FormatMoves(prefix))
	}
	if super {
		sol, err := cubecross.SolveOptimal(oriented, cubecross.White)
		if err != nil {
			m.err = err
			return
		}
		if len(sol.Moves) == 0 {
			m.hint = "cross complete: continue to the first two layers"
			return
		}
		m.hint = fmt.Sprintf("%sfull cross in %d: %s", hold, len(sol.Moves), cubecross.FormatMoves(sol.Moves))
		return
	}
	s, err := cubecross.Suggest(oriented, cubecross.White, cubecross.ShortestFirst)
	if err != nil {
		m.err = err
		return
	}
	m.hint = hold + s.Describe()
}

// save persists after every change; practice should survive a dropped
// terminal.
func (m *practiceModel) save() {
	if err := m.repo.Save(m.name, m.puzzle); err != nil {
		m.err = err
	}
}

func (m *practiceModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("cubecross practice - %s", m.name)))
	sb.WriteString("\n\n")
	sb.WriteString(render.Net(m.puzzle, m.color))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(render.CrossStatus(m.puzzle, cubecross.White)))
	sb.WriteString("\n")

	if m.lastMove != "" {
		sb.WriteString(moveStyle.Render("applied: " + m.lastMove))
		sb.WriteString("\n")
	}
	if m.hint != "" {
		sb.WriteString(hintStyle.Render(m.hint))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("enter moves or a command - esc quits"))
	sb.WriteString("\n")
	return sb.String()
}

func runPractice(cmd *cobra.Command, args []string) error {
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
	rememberPuzzle(cfg, name)

	model := newPracticeModel(name, repo, p, cfg.Color)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("practice session failed: %w", err)
	}
	return nil
}
