// Package commands implements the line-oriented command language used to
// play a game from a terminal.
package commands

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidArgCount    = errors.New("invalid number of arguments")
	ErrInvalidCoordinates = errors.New("invalid cell coordinates")
	ErrInvalidParams      = errors.New("invalid game parameters")
)

const (
	MsgLoss   = "You clicked on a mine!"
	MsgWin    = "You have won!"
	MsgGiveUp = "You gave up!"
)

// Maps known commands to number of arguments, -1 for any.
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"r": 0,
	"n": -1,
	"q": 0,
}

type Result struct {
	Outcome mines.Outcome
	// Message is set when the game ended or was abandoned.
	Message string
	// Restart asks the caller to call [Executor.Restart] once the result
	// has been shown.
	Restart bool
	Quit    bool
}

type Executor struct {
	board   *mines.Board
	journal *journal.Journal
	rnd     *rand.Rand
	decoder *schema.Decoder
}

// New starts a game with params. A nil j discards journal entries and a nil
// rnd is replaced by a randomly seeded source.
func New(params mines.Params, j *journal.Journal, rnd *rand.Rand) (*Executor, error) {
	if j == nil {
		var err error
		if j, err = journal.New(nil); err != nil {
			return nil, err
		}
	}
	if rnd == nil {
		rnd = mines.NewRand()
	}
	board, err := mines.NewBoard(params, rnd)
	if err != nil {
		return nil, err
	}
	e := &Executor{
		board:   board,
		journal: j,
		rnd:     rnd,
		decoder: schema.NewDecoder(),
	}
	e.journal.NewGame(params)
	return e, nil
}

func (e *Executor) Board() *mines.Board {
	return e.board
}

// Restart resets the board for a new game with the same parameters.
func (e *Executor) Restart() {
	e.board.Reset()
	e.journal.NewGame(e.board.Params())
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int: %w", err)
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int: %w", err)
		return
	}
	return
}

// parseParams decodes "key=value" arguments on top of base.
func (e *Executor) parseParams(base mines.Params, args []string) (mines.Params, error) {
	values := url.Values{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return base, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidParams, arg)
		}
		values.Set(k, v)
	}
	p := base
	if err := e.decoder.Decode(&p, values); err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return p, nil
}

func (e *Executor) Execute(c string) (Result, error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return Result{Outcome: e.board.LastOutcome()}, nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return Result{}, fmt.Errorf("%w: %q takes %d", ErrInvalidArgCount, parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return Result{Outcome: e.board.LastOutcome()}, nil
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return Result{}, err
		}
		return e.open(row, col)
	case "r":
		e.board.RevealAll()
		e.journal.RevealAll("gave up")
		return Result{
			Outcome: e.board.LastOutcome(),
			Message: MsgGiveUp,
			Restart: true,
		}, nil
	case "n":
		if len(parts) == 1 {
			e.Restart()
			return Result{Outcome: mines.Continue}, nil
		}
		p, err := e.parseParams(e.board.Params(), parts[1:])
		if err != nil {
			return Result{}, err
		}
		board, err := mines.NewBoard(p, e.rnd)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
		e.board = board
		e.journal.NewGame(p)
		return Result{Outcome: mines.Continue}, nil
	case "q":
		return Result{Outcome: e.board.LastOutcome(), Quit: true}, nil
	}
	return Result{}, ErrUnknownCommand
}

func (e *Executor) open(row, col int) (Result, error) {
	wasLost := e.board.LastOutcome() == mines.Loss
	outcome, err := e.board.Reveal(row, col)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}
	e.journal.Reveal(row, col, outcome)
	if wasLost {
		return Result{Outcome: outcome}, nil
	}

	switch outcome {
	case mines.Loss:
		e.board.RevealAll()
		e.journal.RevealAll("clicked on a mine")
		e.journal.Outcome(e.board)
		return Result{Outcome: outcome, Message: MsgLoss, Restart: true}, nil
	case mines.Win:
		e.journal.Outcome(e.board)
		return Result{Outcome: outcome, Message: MsgWin}, nil
	}
	return Result{Outcome: outcome}, nil
}

// ExecuteBatch runs the commands of text split by [Pieces], stopping after
// the first one that ends the game or asks to quit. Results of the commands
// run before an error are returned along with it.
func (e *Executor) ExecuteBatch(text string) ([]Result, error) {
	var results []Result
	for _, c := range Pieces(text) {
		res, err := e.Execute(c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if res.Message != "" || res.Quit {
			break
		}
	}
	return results, nil
}
