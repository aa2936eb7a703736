package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden       CellState = -2
	RevealedMine CellState = 64
	ExplodedMine CellState = 65
	/*
	 * Each item of a [Grid] is one of the following values:
	 *
	 *  - 0 to 8 mean the cell is revealed and has that many mined
	 *    neighbours.
	 *
	 *  - -2 means the cell is still hidden.
	 *
	 *  - 64 means the cell is a mine revealed after the game.
	 *
	 *  - 65 means the cell is the mine the player revealed.
	 */
)

func (s CellState) Revealed() bool {
	return s != Hidden
}

func (s CellState) IsMine() bool {
	return s == RevealedMine || s == ExplodedMine
}

// Count returns the neighbour mine count of a revealed safe cell.
func (s CellState) Count() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "-"
	case s == ExplodedMine:
		return "X"
	case s == RevealedMine:
		return "*"
	case s == 0:
		return "."
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a row-major projection of a board, one [CellState] per cell.
type Grid []CellState

func (g Grid) At(size, row, col int) CellState {
	return g[row*size+col]
}

func (g Grid) ToString(size int) string {
	var b strings.Builder
	for row := range len(g) / size {
		for col := range size {
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g[row*size+col].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
