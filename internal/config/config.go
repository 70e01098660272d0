package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"inndiff/internal"
)

type Config struct {
	OutputDir  string
	StagingDir string

	TableStrategy      internal.TableStrategy
	TableSnapTolerance float64
	TableLineTolerance float64
	TableWordGap       float64
	TableColumnGap     float64

	LogLevel string
	LogJSON  bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir:  getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		StagingDir: getEnv("STAGING_DIR", ""),

		TableStrategy:      internal.TableStrategy(strings.ToLower(strings.TrimSpace(getEnv("TABLE_STRATEGY", string(internal.StrategyLines))))),
		TableSnapTolerance: getEnvFloat("TABLE_SNAP_TOLERANCE", 3),
		TableLineTolerance: getEnvFloat("TABLE_LINE_TOLERANCE", 3),
		TableWordGap:       getEnvFloat("TABLE_WORD_GAP", 3),
		TableColumnGap:     getEnvFloat("TABLE_COLUMN_GAP", 12),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getEnvBool("LOG_JSON", false),
	}

	switch cfg.TableStrategy {
	case internal.StrategyLines, internal.StrategyText, internal.StrategyAuto:
	default:
		return Config{}, fmt.Errorf("unsupported TABLE_STRATEGY: %s", cfg.TableStrategy)
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required value: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
