package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/game"
)

const (
	DefaultLogFile         = "tictactoe.log"
	DefaultSelfPlayWorkers = 4
)

type Config struct {
	LoggingEnabled  bool
	LogFile         string
	Human           game.Player
	ParallelSearch  bool
	SelfPlayGames   int
	SelfPlayWorkers int
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromEnv(os.LookupEnv)
}

// FromEnv reads the configuration through lookup, which has the shape of
// os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		LogFile:         DefaultLogFile,
		SelfPlayWorkers: DefaultSelfPlayWorkers,
	}

	var err error
	if cfg.LoggingEnabled, err = boolVar(lookup, "LOGGING"); err != nil {
		return cfg, err
	}
	if v, ok := lookup("LOG_FILE"); ok && v != "" {
		cfg.LogFile = v
	}
	if v, ok := lookup("HUMAN_SYMBOL"); ok && v != "" {
		p, valid := game.ParsePlayer(v)
		if !valid {
			return cfg, fmt.Errorf("HUMAN_SYMBOL must be X or O, got %q", v)
		}
		cfg.Human = p
	}
	if cfg.ParallelSearch, err = boolVar(lookup, "PARALLEL_SEARCH"); err != nil {
		return cfg, err
	}
	if cfg.SelfPlayGames, err = intVar(lookup, "SELFPLAY_GAMES", 0); err != nil {
		return cfg, err
	}
	if cfg.SelfPlayWorkers, err = intVar(lookup, "SELFPLAY_WORKERS", DefaultSelfPlayWorkers); err != nil {
		return cfg, err
	}
	if cfg.SelfPlayGames < 0 {
		return cfg, fmt.Errorf("SELFPLAY_GAMES must not be negative, got %d", cfg.SelfPlayGames)
	}
	if cfg.SelfPlayWorkers < 1 {
		return cfg, fmt.Errorf("SELFPLAY_WORKERS must be at least 1, got %d", cfg.SelfPlayWorkers)
	}
	return cfg, nil
}

func boolVar(lookup func(string) (string, bool), name string) (bool, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

func intVar(lookup func(string) (string, bool), name string, def int) (int, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
