package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

// Width of a cell interior in characters.
const cellWidth = 6

// tileStyles maps tile values to lipgloss styles. Values above 2048 share
// the 2048 style.
var tileStyles = map[int]lipgloss.Style{
	0:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	2:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	4:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	8:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	16:   lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	32:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	64:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	128:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	256:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	512:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	1024: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	2048: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func tileStyle(v int) lipgloss.Style {
	if v > game.TargetTile {
		v = game.TargetTile
	}
	if s, ok := tileStyles[v]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// borderLine draws one horizontal grid line using the given junction runes.
func borderLine(left, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for x := range game.Size {
		sb.WriteString(strings.Repeat("─", cellWidth))
		if x < game.Size-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// formatCell centers a tile value in a cell. Empty cells show a dot.
func formatCell(v int) string {
	text := "·"
	width := 1
	if v != 0 {
		text = strconv.Itoa(v)
		width = len(text)
	}
	padLeft := max((cellWidth-width)/2, 0)
	padRight := max(cellWidth-width-padLeft, 0)
	return strings.Repeat(" ", padLeft) + tileStyle(v).Render(text) + strings.Repeat(" ", padRight)
}

// RenderBoard draws the grid with box-drawing borders and styled tiles.
func RenderBoard(g game.Grid) string {
	var sb strings.Builder
	sb.WriteString(borderLine("┌", "┬", "┐"))
	sb.WriteRune('\n')
	for y := range game.Size {
		sb.WriteString("│")
		for x := range game.Size {
			sb.WriteString(formatCell(g[y][x]))
			sb.WriteString("│")
		}
		sb.WriteRune('\n')
		if y < game.Size-1 {
			sb.WriteString(borderLine("├", "┼", "┤"))
		} else {
			sb.WriteString(borderLine("└", "┴", "┘"))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
