package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper/internal/mines"
)

func lookupInt(key string) (int, bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, true, nil
}

// Params reads the board parameters. MINES_PARAMS ("size:mines") takes
// precedence over MINES_SIZE and MINES_COUNT; anything unset falls back to
// [mines.DefaultParams].
func Params() (mines.Params, error) {
	if seed, ok := os.LookupEnv("MINES_PARAMS"); ok {
		p, err := mines.ParseSeed(seed)
		if err != nil {
			return mines.Params{}, fmt.Errorf("unable to parse MINES_PARAMS: %w", err)
		}
		return p, p.Validate()
	}

	p := mines.DefaultParams()

	size, ok, err := lookupInt("MINES_SIZE")
	if err != nil {
		return mines.Params{}, err
	}
	if ok {
		p.Size = size
	}

	count, ok, err := lookupInt("MINES_COUNT")
	if err != nil {
		return mines.Params{}, err
	}
	if ok {
		p.MineCount = count
	}

	return p, p.Validate()
}

// Seed reads MINES_SEED, a fixed seed for reproducible mine layouts.
func Seed() (seed uint64, ok bool, err error) {
	s, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("unable to convert MINES_SEED to uint64: %w", err)
	}
	return seed, true, nil
}

// Development switches logging to a colored console handler at debug level.
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "" && v != "0"
}
