package app

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"ogame_battle/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	CatalogFile string
	Rules       config.BattleRules
	Workers     int
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	production := os.Getenv("ENV") == "production"
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	level, known := logLevel(levelStr, production)
	zerolog.SetGlobalLevel(level)
	if !known {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// logging is configured now, so the .env outcome can be reported
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// logLevel maps a LOGLEVEL value to a zerolog level. An empty value means
// warn in production and info elsewhere; unknown values fall back to info.
func logLevel(name string, production bool) (zerolog.Level, bool) {
	switch name {
	case "":
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	case "warning":
		return zerolog.WarnLevel, true
	case "disabled":
		return zerolog.Disabled, true
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel || level == zerolog.TraceLevel {
		return zerolog.InfoLevel, false
	}
	return level, true
}

// LoadConfig loads configuration from environment variables. Unset
// variables fall back to the default battle rules.
func LoadConfig() (*Config, error) {
	rules := config.DefaultBattleRules

	percentages := []struct {
		key    string
		target *int
	}{
		{"BATTLE_DEBRIS_PERCENTAGE", &rules.DebrisPercentage},
		{"BATTLE_DEFENSE_REPAIR_PERCENTAGE", &rules.DefenseRepairPercentage},
		{"BATTLE_LOOT_PERCENTAGE", &rules.LootPercentage},
	}
	for _, p := range percentages {
		value, ok, err := envInt(p.key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("%s must be between 0 and 100, got %d", p.key, value)
		}
		*p.target = value
	}

	if raw := os.Getenv("BATTLE_RAPID_FIRE"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("BATTLE_RAPID_FIRE must be a boolean, got %q", raw)
		}
		rules.RapidFire = enabled
	}

	workers := runtime.NumCPU()
	value, ok, err := envInt("BATTLE_WORKERS")
	if err != nil {
		return nil, err
	}
	if ok {
		if value < 1 {
			return nil, fmt.Errorf("BATTLE_WORKERS must be at least 1, got %d", value)
		}
		workers = value
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid battle rules: %w", err)
	}

	return &Config{
		CatalogFile: os.Getenv("BATTLE_CATALOG_FILE"),
		Rules:       rules,
		Workers:     workers,
	}, nil
}

// envInt reads an integer variable. ok is false when the variable is unset.
func envInt(key string) (int, bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, true, nil
}
