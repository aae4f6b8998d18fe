package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	SpeciesSource string
	SpeciesFile   string
	SpeciesURL    string
	LogLevel      zapcore.Level
	LogFile       string
	PauseDelay    time.Duration
	RollDelay     time.Duration
	Seed          int64
}

// LoadConfig reads the environment. Every setting is optional; .env is loaded
// by the root command before this runs.
func LoadConfig() (*Config, error) {
	source := strings.ToLower(strings.TrimSpace(os.Getenv("SPECIES_SOURCE")))
	if source == "" {
		source = "builtin"
	}

	speciesFile := os.Getenv("SPECIES_FILE")
	switch source {
	case "builtin", "remote":
	case "file":
		if speciesFile == "" {
			return nil, fmt.Errorf("SPECIES_SOURCE=file requires SPECIES_FILE")
		}
	default:
		return nil, fmt.Errorf("unknown SPECIES_SOURCE %q", source)
	}

	level := zapcore.WarnLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	pauseMs, err := loadInt("PAUSE_DELAY_MS", 1000)
	if err != nil {
		return nil, err
	}
	rollMs, err := loadInt("ROLL_DELAY_MS", 500)
	if err != nil {
		return nil, err
	}
	seed, err := loadInt("SEED", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		SpeciesSource: source,
		SpeciesFile:   speciesFile,
		SpeciesURL:    os.Getenv("SPECIES_URL"),
		LogLevel:      level,
		LogFile:       os.Getenv("LOG_FILE"),
		PauseDelay:    time.Duration(pauseMs) * time.Millisecond,
		RollDelay:     time.Duration(rollMs) * time.Millisecond,
		Seed:          int64(seed),
	}, nil
}

func loadInt(key string, defValue int) (int, error) {
	value := os.Getenv(key)
	if value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return n, nil
	}

	return defValue, nil
}
