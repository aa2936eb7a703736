package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/render"
)

var errQuit = errors.New("quit")

const help = `commands:
  o <row> <col>        reveal a cell
  r                    give up and reveal the board
  n [size=S] [mines=M] new game
  g                    show the board
  q                    quit
several commands may share a line separated by ';'
`

// play drives one executor from input lines until the input ends, the player
// quits or ctx is done.
func play(
	ctx context.Context,
	exec *commands.Executor,
	r *render.Renderer,
	lines <-chan string,
	out io.Writer,
) error {
	fmt.Fprint(out, help)
	fmt.Fprint(out, r.Board(exec.Board()))

	for {
		fmt.Fprint(out, "> ")
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return io.EOF
			}
			line = l
		}

		results, err := exec.ExecuteBatch(line)
		if len(results) > 0 {
			/* only the last command of a batch can end the game */
			res := results[len(results)-1]
			if res.Quit {
				return errQuit
			}

			fmt.Fprint(out, r.Board(exec.Board()))
			if res.Message != "" {
				fmt.Fprintln(out, r.Message(res.Outcome, res.Message))
			}
			if res.Restart {
				exec.Restart()
				fmt.Fprintln(out, "new game")
				fmt.Fprint(out, r.Board(exec.Board()))
			}
		}
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}
	}
}
