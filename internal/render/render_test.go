package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestPlainBoard(t *testing.T) {
	b, err := mines.NewBoard(mines.Params{Size: 3, MineCount: 0}, nil)
	require.NoError(t, err)

	r := New(true)
	assert.Equal(t, "   0 1 2\n0  - - -\n1  - - -\n2  - - -\n", r.Board(b))

	_, err = b.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "   0 1 2\n0  . . .\n1  . . .\n2  . . .\n", r.Board(b))
}

func TestPlainBoardWideIndices(t *testing.T) {
	b, err := mines.NewBoard(mines.Params{Size: 11, MineCount: 0}, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(New(true).Board(b), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "     0  1"))
	assert.True(t, strings.HasSuffix(lines[0], " 10"))
	assert.True(t, strings.HasPrefix(lines[1], " 0   -  -"))
	assert.True(t, strings.HasPrefix(lines[11], "10   -"))
	for _, line := range lines {
		assert.Len(t, line, len(lines[0]))
	}
}

func TestCell(t *testing.T) {
	r := New(true)
	assert.Equal(t, "-", r.Cell(mines.Hidden))
	assert.Equal(t, "*", r.Cell(mines.RevealedMine))
	assert.Equal(t, "X", r.Cell(mines.ExplodedMine))
	assert.Equal(t, ".", r.Cell(0))
	assert.Equal(t, "3", r.Cell(3))

	styled := New(false)
	for _, s := range []mines.CellState{mines.Hidden, mines.ExplodedMine, 0, 8} {
		assert.Contains(t, styled.Cell(s), s.String())
	}
}

func TestRevealedBoardShowsMines(t *testing.T) {
	b, err := mines.NewBoard(mines.Params{Size: 5, MineCount: 5}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b.RevealAll()

	out := New(true).Board(b)
	assert.Equal(t, 5, strings.Count(out, "*"))
	assert.NotContains(t, out, "-")
	assert.Equal(t, "You have won!", New(true).Message(mines.Win, "You have won!"))
}
