package mines

// Cell is a copy of one grid position. Cells are owned by a [Board]; callers
// only ever see copies.
type Cell struct {
	row, col int
	mine     bool
	count    int8
	revealed bool
}

func (c Cell) Row() int { return c.row }

func (c Cell) Col() int { return c.col }

func (c Cell) IsMine() bool { return c.mine }

// NeighborMineCount is meaningless for mines.
func (c Cell) NeighborMineCount() int { return int(c.count) }

func (c Cell) Revealed() bool { return c.revealed }

func (c *Cell) reset() {
	c.mine = false
	c.count = 0
	c.revealed = false
}
