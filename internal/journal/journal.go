// Package journal records game events (new games, reveals, outcomes) to a
// rotating log file. It is a log of play, not a save file: nothing is ever
// read back.
package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Journal struct {
	log    *logrus.Logger
	hook   logrus.Hook /* file hook, nil when disabled */
	gameID uuid.UUID
}

// New builds a journal writing to the file named by cfg. A disabled cfg yields
// a journal that discards everything.
func New(cfg *config.Journal) (*Journal, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)

	if cfg == nil || !cfg.Enabled() {
		return NewWithLogger(log), nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create journal file hook: %w", err)
	}
	log.AddHook(hook)

	j := NewWithLogger(log)
	j.hook = hook
	return j, nil
}

func NewWithLogger(log *logrus.Logger) *Journal {
	return &Journal{log: log}
}

// Close detaches the file hook so nothing more is written, and closes it if
// it holds a closable writer. Entries recorded after Close are dropped.
func (j *Journal) Close() error {
	if j.hook == nil {
		return nil
	}
	j.log.ReplaceHooks(make(logrus.LevelHooks))
	hook := j.hook
	j.hook = nil
	if c, ok := hook.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (j *Journal) GameID() uuid.UUID {
	return j.gameID
}

func (j *Journal) entry() *logrus.Entry {
	return j.log.WithField("game_id", j.gameID.String())
}

// NewGame starts a new game id and records its parameters.
func (j *Journal) NewGame(p mines.Params) {
	j.gameID = uuid.New()
	j.entry().WithFields(logrus.Fields{
		"size":       p.Size,
		"mine_count": p.MineCount,
	}).Info("new game")
}

func (j *Journal) Reveal(row, col int, outcome mines.Outcome) {
	e := j.entry().WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"outcome": outcome.String(),
	})
	if outcome == mines.Loss {
		e.Warn("reveal")
		return
	}
	e.Info("reveal")
}

func (j *Journal) RevealAll(reason string) {
	j.entry().WithField("reason", reason).Info("reveal all")
}

func (j *Journal) Outcome(b *mines.Board) {
	j.entry().WithFields(logrus.Fields{
		"outcome":  b.LastOutcome().String(),
		"revealed": b.RevealedCount(),
	}).Info("game over")
}
