package mines

import (
	"log/slog"
	"math/rand/v2"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

type Outcome int8

const (
	Continue Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Over reports whether o ends the game.
func (o Outcome) Over() bool {
	return o == Win || o == Loss
}

// Board is the game-state engine. It is not safe for concurrent use; callers
// must serialize access to a single Board.
type Board struct {
	params   Params
	cells    []Cell /* row-major, size*size */
	outcome  Outcome
	exploded int /* index of the mine that was revealed, -1 if none */
	rnd      *rand.Rand
}

// NewBoard builds a board for params and places its mines. A nil r is
// replaced by a randomly seeded source.
func NewBoard(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	size := params.Size
	b := &Board{
		params:   params,
		cells:    make([]Cell, size*size),
		exploded: -1,
		rnd:      r,
	}
	for i := range b.cells {
		b.cells[i].row = i / size
		b.cells[i].col = i % size
	}
	b.placeMines()
	return b, nil
}

// Reset starts a new game on the same board with a fresh mine layout.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i].reset()
	}
	b.outcome = Continue
	b.exploded = -1
	b.placeMines()
}

func (b *Board) Params() Params { return b.params }

func (b *Board) Size() int { return b.params.Size }

func (b *Board) MineCount() int { return b.params.MineCount }

func (b *Board) LastOutcome() Outcome { return b.outcome }

func (b *Board) index(row, col int) (int, error) {
	if !b.params.InBounds(row, col) {
		return 0, PositionError{Row: row, Col: col, Size: b.params.Size}
	}
	return row*b.params.Size + col, nil
}

func (b *Board) Cell(row, col int) (Cell, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// Reveal opens the cell at (row, col). Revealing an open cell is a no-op that
// returns [Continue]. After a loss, hidden cells stay hidden and [Loss] is
// returned until [Board.Reset].
func (b *Board) Reveal(row, col int) (Outcome, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Continue, err
	}
	c := &b.cells[i]

	if c.revealed {
		return Continue, nil
	}

	/* If the player has already lost, don't let them win as well. */
	if b.outcome == Loss {
		return b.outcome, nil
	}

	switch {
	case c.mine:
		c.revealed = true
		b.exploded = i
		b.outcome = Loss
		Log.Debug("revealed a mine", slog.Int("row", row), slog.Int("col", col))
		return Loss, nil
	case c.count == 0:
		b.cascade(i)
	default:
		c.revealed = true
	}

	if b.CheckWin() {
		b.outcome = Win
	}
	return b.outcome, nil
}

// cascade reveals the connected region of zero-count cells containing start
// along with its non-mine boundary.
func (b *Board) cascade(start int) {
	var frontier deque.Deque[int]
	queued := make([]bool, len(b.cells))

	frontier.PushBack(start)
	queued[start] = true

	opened := 0
	for frontier.Len() > 0 {
		i := frontier.PopFront()
		if !b.cells[i].revealed {
			b.cells[i].revealed = true
			opened++
		}
		for j := range b.neighbors(i) {
			n := &b.cells[j]
			if n.revealed || n.mine || queued[j] {
				continue
			}
			if n.count == 0 {
				queued[j] = true
				frontier.PushBack(j)
			} else {
				n.revealed = true
				opened++
			}
		}
	}

	Log.Debug("cascade",
		slog.Int("row", start/b.params.Size),
		slog.Int("col", start%b.params.Size),
		slog.Int("opened", opened),
	)
}

// CheckWin reports whether every non-mine cell is revealed.
func (b *Board) CheckWin() bool {
	for i := range b.cells {
		if !b.cells[i].mine && !b.cells[i].revealed {
			return false
		}
	}
	return true
}

func (b *Board) IsWon() bool {
	return b.outcome == Win
}

// RevealAll opens every hidden cell, mines included. The outcome is left
// unchanged.
func (b *Board) RevealAll() {
	for i := range b.cells {
		b.cells[i].revealed = true
	}
}

func (b *Board) RevealedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].revealed {
			n++
		}
	}
	return n
}

func (b *Board) state(i int) CellState {
	c := b.cells[i]
	switch {
	case !c.revealed:
		return Hidden
	case i == b.exploded:
		return ExplodedMine
	case c.mine:
		return RevealedMine
	default:
		return CellState(c.count)
	}
}

func (b *Board) DisplayState(row, col int) (CellState, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Hidden, err
	}
	return b.state(i), nil
}

func (b *Board) Grid() Grid {
	g := make(Grid, len(b.cells))
	for i := range g {
		g[i] = b.state(i)
	}
	return g
}

func (b *Board) String() string {
	return b.Grid().ToString(b.params.Size)
}
