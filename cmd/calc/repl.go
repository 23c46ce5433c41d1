package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/60-lines-of-python/calculator"
)

// historyWriter is the part of liner.State needed to persist history.
type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// repl reads expressions line by line and prints each result, or the syntax
// error, until end of input. History persists across sessions, including
// sessions ended by SIGTERM or SIGHUP.
func repl(cfg Config, logger zerolog.Logger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				logger.Warn().Err(err).Str("path", cfg.History).Msg("reading history")
			}
			f.Close()
		}
	}
	defer saveHistory(ln, cfg.History, logger)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		saveHistory(ln, cfg.History, logger)
		ln.Close()
		os.Exit(130)
	}()

	logger.Debug().Str("history", cfg.History).Msg("starting interactive session")
	ev := calculator.New()
	for {
		line, err := ln.Prompt(cfg.Prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		default:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ev.Parse(line)
		if err != nil {
			fmt.Println("syntax error:", err)
			continue
		}
		fmt.Println(v)
		ln.AppendHistory(line)
	}
}

// saveHistory writes the session history to path. Best-effort: failures are
// logged, never fatal. An empty path disables persistence.
func saveHistory(ln historyWriter, path string, logger zerolog.Logger) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("saving history")
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("saving history")
	}
}
