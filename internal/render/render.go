// Package render draws a board as text for a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
)

var countColors = [9]lipgloss.Color{
	"8", "12", "2", "9", "4", "1", "6", "13", "7",
}

type Renderer struct {
	plain    bool
	hidden   lipgloss.Style
	mine     lipgloss.Style
	exploded lipgloss.Style
	counts   [9]lipgloss.Style
	header   lipgloss.Style
	message  map[mines.Outcome]lipgloss.Style
}

// New returns a renderer. A plain renderer emits no escape sequences.
func New(plain bool) *Renderer {
	r := &Renderer{
		plain:    plain,
		hidden:   lipgloss.NewStyle().Faint(true),
		mine:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		exploded: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Reverse(true),
		header:   lipgloss.NewStyle().Faint(true),
		message: map[mines.Outcome]lipgloss.Style{
			mines.Continue: lipgloss.NewStyle(),
			mines.Win:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			mines.Loss:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
	}
	for i, c := range countColors {
		r.counts[i] = lipgloss.NewStyle().Foreground(c)
	}
	return r
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) Cell(s mines.CellState) string {
	text := s.String()
	switch {
	case s == mines.Hidden:
		return r.style(r.hidden, text)
	case s == mines.ExplodedMine:
		return r.style(r.exploded, text)
	case s.IsMine():
		return r.style(r.mine, text)
	}
	if n, ok := s.Count(); ok {
		return r.style(r.counts[n], text)
	}
	return text
}

// Board renders the grid with row and column indices.
func (r *Renderer) Board(b *mines.Board) string {
	size := b.Size()
	grid := b.Grid()
	w := len(strconv.Itoa(size - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", w+1))
	for col := range size {
		sb.WriteByte(' ')
		sb.WriteString(r.style(r.header, fmt.Sprintf("%*d", w, col)))
	}
	sb.WriteByte('\n')

	for row := range size {
		sb.WriteString(r.style(r.header, fmt.Sprintf("%*d", w, row)))
		sb.WriteByte(' ')
		for col := range size {
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", w-1))
			sb.WriteString(r.Cell(grid.At(size, row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) Message(outcome mines.Outcome, text string) string {
	return r.style(r.message[outcome], text)
}
