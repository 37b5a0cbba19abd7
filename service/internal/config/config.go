// Package config loads arcade host settings from the environment, with an
// optional .env file layered underneath.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names.
const (
	EnvSeed       = "ARCADE_SEED"
	EnvDifficulty = "ARCADE_DIFFICULTY"
	EnvLogLevel   = "ARCADE_LOG_LEVEL"
	EnvAIDelay    = "ARCADE_AI_DELAY"
	EnvWorkers    = "ARCADE_WORKERS"
	EnvGames      = "ARCADE_GAMES"
)

// Config holds host-level settings. Game rules are not configurable.
type Config struct {
	Seed       uint64
	Difficulty engine.Difficulty
	LogLevel   logrus.Level
	AIDelay    time.Duration // artificial thinking pause before AI moves
	Workers    int           // parallel self-play games
	Games      int           // self-play games per run
}

// Default returns the settings used when nothing is set.
func Default() Config {
	return Config{
		Seed:       1,
		Difficulty: engine.Normal,
		LogLevel:   logrus.InfoLevel,
		AIDelay:    500 * time.Millisecond,
		Workers:    4,
		Games:      10,
	}
}

// Load reads the given .env files (".env" when none are named; a missing
// file is not an error) and then the process environment, which wins.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a lookup function such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvDifficulty); ok {
		d, err := engine.ParseDifficulty(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvDifficulty, err)
		}
		cfg.Difficulty = d
	}
	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(EnvAIDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvAIDelay, err)
		}
		cfg.AIDelay = d
	}
	var err error
	if cfg.Workers, err = intVar(lookup, EnvWorkers, cfg.Workers); err != nil {
		return cfg, err
	}
	if cfg.Games, err = intVar(lookup, EnvGames, cfg.Games); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func intVar(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	return n, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Difficulty > engine.Hard:
		return fmt.Errorf("%w: difficulty %d", ErrInvalidConfig, c.Difficulty)
	case c.AIDelay < 0:
		return fmt.Errorf("%w: negative AI delay %s", ErrInvalidConfig, c.AIDelay)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.Games < 1:
		return fmt.Errorf("%w: games must be at least 1, got %d", ErrInvalidConfig, c.Games)
	}
	return nil
}
