package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var (
	size        int
	mineCount   int
	journalFile string
	plain       bool
	seed        uint64
)

func init() {
	const (
		sizeUsage    = "grid size"
		minesUsage   = "number of mines"
		journalUsage = "game journal file"
	)
	flag.IntVar(&size, "size", mines.DefaultSize, sizeUsage)
	flag.IntVar(&size, "s", mines.DefaultSize, sizeUsage+" (shorthand)")
	flag.IntVar(&mineCount, "mines", mines.DefaultMineCount, minesUsage)
	flag.IntVar(&mineCount, "m", mines.DefaultMineCount, minesUsage+" (shorthand)")
	flag.StringVar(&journalFile, "journal", "", journalUsage)
	flag.StringVar(&journalFile, "j", "", journalUsage+" (shorthand)")
	flag.BoolVar(&plain, "plain", false, "disable colors")
	flag.Uint64Var(&seed, "seed", 0, "fixed seed for mine placement")
}

func newLogger() *slog.Logger {
	if config.Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// loadParams merges env configuration with flags given on the command line.
func loadParams() (mines.Params, *config.Journal, *rand.Rand, error) {
	params, err := config.Params()
	if err != nil {
		return params, nil, nil, err
	}
	journalCfg, err := config.NewJournal()
	if err != nil {
		return params, nil, nil, err
	}
	envSeed, hasSeed, err := config.Seed()
	if err != nil {
		return params, nil, nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size", "s":
			params.Size = size
		case "mines", "m":
			params.MineCount = mineCount
		case "journal", "j":
			journalCfg.Filename = journalFile
		case "seed":
			envSeed, hasSeed = seed, true
		}
	})

	var rnd *rand.Rand
	if hasSeed {
		rnd = rand.New(rand.NewPCG(envSeed, envSeed))
	}
	return params, journalCfg, rnd, params.Validate()
}

func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

func main() {
	flag.Parse()

	logger := newLogger()
	mines.Log = logger.With(slog.String("component", "mines"))

	params, journalCfg, rnd, err := loadParams()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	j, err := journal.New(journalCfg)
	if err != nil {
		logger.Error("unable to open journal", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := j.Close(); err != nil {
			logger.Error("unable to close journal", "error", err)
		}
	}()

	exec, err := commands.New(params, j, rnd)
	if err != nil {
		logger.Error("unable to start a game", "error", err)
		j.Close()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	logger.Debug("starting up",
		slog.String("params", params.String()),
		slog.Bool("journal", journalCfg.Enabled()),
	)

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return play(gCtx, exec, render.New(plain), lines, os.Stdout)
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Debug("shutting down", slog.Any("cause", context.Cause(gCtx)))
		return nil
	})

	if err := run(g); err != nil {
		fmt.Fprintf(os.Stderr, "exit reason: %s\n", err)
		j.Close()
		os.Exit(1)
	}
}

// run waits for g and drops the errors that mean a normal exit.
func run(g *errgroup.Group) error {
	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
