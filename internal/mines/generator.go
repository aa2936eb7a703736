package mines

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSize      = 20
	DefaultMineCount = 20
)

type Params struct {
	Size      int `schema:"size"`
	MineCount int `schema:"mines"`
}

func DefaultParams() Params {
	return Params{Size: DefaultSize, MineCount: DefaultMineCount}
}

func (p Params) Unpack() (size int, mineCount int) {
	return p.Size, p.MineCount
}

// Validate reports an error wrapping [ErrInvalidConfiguration] unless
// size >= 1 and 0 <= mineCount < size*size.
func (p Params) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("%w: size %d must be at least 1",
			ErrInvalidConfiguration, p.Size)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: mine count %d is negative",
			ErrInvalidConfiguration, p.MineCount)
	}
	if p.MineCount >= p.Size*p.Size {
		return fmt.Errorf("%w: mine count %d must be less than %d cells",
			ErrInvalidConfiguration, p.MineCount, p.Size*p.Size)
	}
	return nil
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d", p.Size, p.MineCount)
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Size, p.Size, p.MineCount)
}

// ParseSeed parses the "size:mines" form produced by [Params.Seed]. The
// result is not validated.
func ParseSeed(seed string) (Params, error) {
	parts := strings.Split(strings.TrimSpace(seed), ":")
	if len(parts) != 2 {
		return Params{}, fmt.Errorf(
			`invalid game params seed (seed = "%s", parts = %d)`, seed, len(parts),
		)
	}
	size, err := strconv.Atoi(parts[0])
	if err != nil {
		return Params{}, fmt.Errorf(`invalid game params seed (seed = "%s"): %w`, seed, err)
	}
	mineCount, err := strconv.Atoi(parts[1])
	if err != nil {
		return Params{}, fmt.Errorf(`invalid game params seed (seed = "%s"): %w`, seed, err)
	}
	return Params{Size: size, MineCount: mineCount}, nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Size && 0 <= col && col < p.Size
}
