package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/arena"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/config"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/events"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/listener"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/session"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logFile := InitializeLogger(cfg)

	ch := events.NewChannel()
	done := listener.StartEventListening(ch)

	err = run(context.Background(), cfg, ch)
	close(ch)
	<-done

	if err != nil {
		log.Error().Err(err).Msg("Game ended abnormally")
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, ch chan<- events.GameEvent) error {
	if cfg.SelfPlayGames > 0 {
		summary, err := arena.Run(ctx, cfg.SelfPlayGames, cfg.SelfPlayWorkers, ch)
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	}

	opts := session.Options{
		GameID:   utils.GenerateUUIDString(),
		Human:    cfg.Human,
		Parallel: cfg.ParallelSearch,
		Events:   ch,
	}
	log.Info().Str("gameID", opts.GameID).Bool("parallel", opts.Parallel).Msg("Starting App")
	_, err := session.Run(ctx, opts, os.Stdin, os.Stdout)
	return err
}

// InitializeLogger keeps stdout for the board. With LOGGING=true every
// event goes to the log file; otherwise only warnings reach stderr.
func InitializeLogger(cfg config.Config) *os.File {
	if !cfg.LoggingEnabled {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		return nil
	}

	runLogFile, err := os.OpenFile(
		cfg.LogFile,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0664,
	)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("Failed to open log file")
	}
	log.Logger = zerolog.New(runLogFile).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return runLogFile
}
