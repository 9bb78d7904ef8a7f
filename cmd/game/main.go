package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/tomz197/mythbusters/internal/audio"
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/logger"
	"github.com/tomz197/mythbusters/internal/loop"
	"golang.org/x/term"
)

func main() {
	// The terminal is the screen, so logs go to LOG_FILE or nowhere.
	out, closeLog, err := logger.OpenFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()
	logger.Init(out)
	log := logger.Component("game")

	db, err := data.Load()
	if err != nil {
		log.WithError(err).Fatal("load item database")
	}
	def, err := dungeon.LoadDefinition()
	if err != nil {
		log.WithError(err).Fatal("load dungeon")
	}

	var music audio.Player = audio.Mute{}
	if config.GetEnvBool("MYTH_MUSIC", true) {
		m := audio.NewMusic()
		if err := m.Init(); err != nil {
			log.WithError(err).Warn("audio unavailable, playing muted")
		} else {
			defer m.Close()
			music = m
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	game := loop.NewGame(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		DB:         db,
		Definition: def,
		Music:      music,
		Debug:      config.GetEnvBool("MYTH_DEBUG", false),
		Seed:       int64(config.GetEnvInt("MYTH_SEED", 0)),
		Log:        log,
	})
	if err := game.Run(context.Background()); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
