package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stateStyle  = lipgloss.NewStyle().MarginRight(3)
)

// styled reports whether stdout is a terminal; pipes and files get plain text.
func styled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func paint(s lipgloss.Style, text string) string {
	if !styled() {
		return text
	}
	return s.Render(text)
}

// paintBoard colors a board dump: placed cells, active piece, ghost.
func paintBoard(dump string) string {
	if !styled() {
		return dump
	}
	r := strings.NewReplacer(
		"██", cellStyle.Render("██"),
		"[]", activeStyle.Render("[]"),
		"::", ghostStyle.Render("::"),
	)
	return r.Replace(dump)
}

// drawCells draws a set of offsets in their bounding box, top row first,
// marking the anchor cell with "<>" when it is empty.
func drawCells(cells []core.Point) string {
	r := core.Bounds(cells).Union(core.NewRect(0, 0, 1, 1))
	filled := make(map[core.Point]bool, len(cells))
	for _, c := range cells {
		filled[c] = true
	}

	var lines []string
	for y := r.Top() - 1; y >= r.Y; y-- {
		var sb strings.Builder
		for x := r.X; x < r.Right(); x++ {
			p := core.P(x, y)
			switch {
			case filled[p]:
				sb.WriteString(paint(cellStyle, "██"))
			case p == (core.Point{}):
				sb.WriteString(paint(dimStyle, "<>"))
			default:
				sb.WriteString(paint(dimStyle, ".."))
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
