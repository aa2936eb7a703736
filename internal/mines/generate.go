package mines

import (
	"hash/maphash"
	"iter"
	"log/slog"
	"math/rand/v2"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// neighbors yields the linear indices of the in-bounds cells around i.
func (b *Board) neighbors(i int) iter.Seq[int] {
	size := b.params.Size
	row, col := i/size, i%size
	return func(yield func(int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := row+dr, col+dc
				if r < 0 || r >= size || c < 0 || c >= size {
					continue
				}
				if !yield(r*size + c) {
					return
				}
			}
		}
	}
}

func (b *Board) placeMines() {
	size, mineCount := b.params.Unpack()

	/*
	 * Write down the list of possible mine locations, then pick
	 * mineCount off it at random. The chosen candidate is swapped
	 * out of the live prefix so it cannot be drawn again.
	 */
	candidates := make([]int, size*size)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		j := b.rnd.IntN(k)
		i := candidates[j]
		// decode against the grid width, not the shrinking k
		row, col := i/size, i%size
		b.cells[row*size+col].mine = true
		k--
		candidates[j] = candidates[k]
	}

	b.countNeighbors()

	Log.Debug("placed mines", slog.String("params", b.params.String()))
}

func (b *Board) countNeighbors() {
	for i := range b.cells {
		if b.cells[i].mine {
			continue
		}
		var n int8
		for j := range b.neighbors(i) {
			if b.cells[j].mine {
				n++
			}
		}
		b.cells[i].count = n
	}
}
