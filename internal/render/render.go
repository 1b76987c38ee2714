// Package render draws puzzle states for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubetools/cubecross"
)

// Sticker styles: dark text on the sticker's own color, so the net reads
// like the physical puzzle.
var stickerStyles = map[cubecross.Color]lipgloss.Style{
	cubecross.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	cubecross.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("235")),
	cubecross.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("235")),
	cubecross.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cubecross.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")),
	cubecross.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
}

var netFaces = struct {
	up, left, front, right, back, down cubecross.Face
}{
	up:    cubecross.FaceU,
	left:  cubecross.FaceL,
	front: cubecross.FaceF,
	right: cubecross.FaceR,
	back:  cubecross.FaceB,
	down:  cubecross.FaceD,
}

// Net renders the puzzle as an unfolded net: up on top, then
// left/front/right/back side by side, then down. With color enabled each
// sticker is a colored cell; without it the net falls back to the plain
// single-letter rendering.
func Net(p *cubecross.Puzzle, color bool) string {
	if !color {
		return p.String()
	}

	u := mustFace(p, netFaces.up)
	l := mustFace(p, netFaces.left)
	f := mustFace(p, netFaces.front)
	r := mustFace(p, netFaces.right)
	b := mustFace(p, netFaces.back)
	d := mustFace(p, netFaces.down)

	var sb strings.Builder
	pad := strings.Repeat(" ", 9)
	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		writeRow(&sb, u, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		writeRow(&sb, l, row)
		writeRow(&sb, f, row)
		writeRow(&sb, r, row)
		writeRow(&sb, b, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		writeRow(&sb, d, row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func mustFace(p *cubecross.Puzzle, f cubecross.Face) [3][3]cubecross.Color {
	grid, err := p.FaceColors(f)
	if err != nil {
		panic(err)
	}
	return grid
}

func writeRow(sb *strings.Builder, grid [3][3]cubecross.Color, row int) {
	for c := 0; c < 3; c++ {
		sb.WriteString(Sticker(grid[row][c]))
	}
}

// Sticker renders a single sticker cell.
func Sticker(c cubecross.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return " . "
	}
	return style.Render(" " + c.Initial() + " ")
}

// CrossStatus summarizes the cross progress as one line, marking each
// edge solved or pending.
func CrossStatus(p *cubecross.Puzzle, cross cubecross.Color) string {
	solved := make(map[cubecross.Color]bool)
	for _, c := range p.SolvedCrossEdges(cross) {
		solved[c] = true
	}
	parts := make([]string, 0, len(cubecross.CrossEdgeOrder))
	for _, c := range cubecross.CrossEdgeOrder {
		mark := "✗"
		if solved[c] {
			mark = "✓"
		}
		parts = append(parts, fmt.Sprintf("%s %s", c, mark))
	}
	status := strings.Join(parts, "  ")
	if p.IsCrossSolved(cross) {
		return fmt.Sprintf("%s cross: complete (%s)", cross, status)
	}
	return fmt.Sprintf("%s cross: %d/%d (%s)", cross, len(p.SolvedCrossEdges(cross)), len(cubecross.CrossEdgeOrder), status)
}
