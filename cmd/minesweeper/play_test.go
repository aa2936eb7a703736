package main

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

func feed(input ...string) <-chan string {
	lines := make(chan string, len(input))
	for _, l := range input {
		lines <- l
	}
	close(lines)
	return lines
}

func newExec(t *testing.T, params mines.Params) *commands.Executor {
	t.Helper()
	exec, err := commands.New(params, nil, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return exec
}

func TestPlayWin(t *testing.T) {
	exec := newExec(t, mines.Params{Size: 3, MineCount: 0})
	var out bytes.Buffer

	err := play(context.Background(), exec, render.New(true), feed("o 1 1"), &out)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), commands.MsgWin)
	assert.Contains(t, out.String(), "0  . . .")
	assert.True(t, exec.Board().IsWon())
}

func TestPlayGiveUpRestarts(t *testing.T) {
	exec := newExec(t, mines.Params{Size: 4, MineCount: 3})
	var out bytes.Buffer

	err := play(context.Background(), exec, render.New(true), feed("r", "q", "o 0 0"), &out)
	assert.ErrorIs(t, err, errQuit)

	s := out.String()
	assert.Contains(t, s, commands.MsgGiveUp)
	assert.Equal(t, 3, strings.Count(s[:strings.Index(s, commands.MsgGiveUp)], "*"))
	assert.Contains(t, s, "new game")
	assert.Equal(t, 0, exec.Board().RevealedCount())
}

func TestPlayReportsErrors(t *testing.T) {
	exec := newExec(t, mines.Params{Size: 3, MineCount: 1})
	var out bytes.Buffer

	err := play(context.Background(), exec, render.New(true), feed("o 9 9", "zap"), &out)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "error: invalid cell coordinates")
	assert.Contains(t, out.String(), "error: unknown command")
}

func TestPlayBatchedLine(t *testing.T) {
	exec := newExec(t, mines.Params{Size: 3, MineCount: 0})
	var out bytes.Buffer

	err := play(context.Background(), exec, render.New(true),
		feed("g; o 0 0; o 2 2", "g ;; q; o 1 1"), &out)
	assert.ErrorIs(t, err, errQuit)

	s := out.String()
	assert.Equal(t, 1, strings.Count(s, commands.MsgWin))
	assert.True(t, exec.Board().IsWon())
	assert.NotContains(t, s, "error:")
}

func TestPlayBatchReportsError(t *testing.T) {
	exec := newExec(t, mines.Params{Size: 3, MineCount: 1})
	var out bytes.Buffer

	err := play(context.Background(), exec, render.New(true), feed("n; zap; o 0 0"), &out)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), `error: unknown command: "zap"`)
	assert.Equal(t, 0, exec.Board().RevealedCount())
}

func TestPlayCancelled(t *testing.T) {
	exec := newExec(t, mines.DefaultParams())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := play(ctx, exec, render.New(true), make(chan string), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
