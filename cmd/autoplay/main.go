package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/automatic"
	"github.com/domino14/draughts/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.KeyDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logchan := make(chan string, 100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fmt.Println("result,plies")
		for line := range logchan {
			fmt.Println(line)
		}
	}()

	tally, err := automatic.StartCompVCompGames(ctx, cfg,
		cfg.GetInt(config.KeyNumGames), cfg.GetInt(config.KeyThreads), logchan)
	<-done
	if err != nil {
		log.Err(err).Msg("self-play stopped")
		os.Exit(1)
	}
	log.Info().Msgf("tally: %v", tally)
}
