// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/danielhkuo/pulse-compare/survey"
)

type Config struct {
	Port         int
	CSVPath      string
	DatabaseURL  string
	DatabaseType string
	Import       bool
	MajorRegions []string
	ColorA       string
	ColorB       string
	LogLevel     string
	LogFormat    string
}

// UseDatabase reports whether the survey is served from the database
func (c Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, major string

	flags := flag.NewFlagSet("pulse-compare", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.CSVPath, "f", "", "Survey CSV file")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (serve from database when set)")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	flags.BoolVar(&cfg.Import, "import", false, "Copy the CSV into the database and exit")
	flags.StringVar(&major, "major", "", "Comma-separated major region columns, national first")
	flags.StringVar(&cfg.ColorA, "color-a", "", "Candidate 1 color")
	flags.StringVar(&cfg.ColorB, "color-b", "", "Candidate 2 color")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	flags.StringVar(&envFile, "env", ".env", "Optional dotenv file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Never overrides variables already set in the environment
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8050 // default
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	cfg.CSVPath = firstNonEmpty(cfg.CSVPath, os.Getenv("SURVEY_CSV"), "data/Pulse_Feb_Regional.csv")
	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), "sqlite")
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.Import && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for -import (use -d or DATABASE_URL env)")
	}

	cfg.MajorRegions = splitList(firstNonEmpty(major, os.Getenv("MAJOR_REGIONS")))
	if len(cfg.MajorRegions) == 0 {
		cfg.MajorRegions = survey.DefaultMajorRegions
	}

	cfg.ColorA = firstNonEmpty(cfg.ColorA, os.Getenv("CANDIDATE_A_COLOR"), "#1e88e5")
	cfg.ColorB = firstNonEmpty(cfg.ColorB, os.Getenv("CANDIDATE_B_COLOR"), "#e53935")
	for _, c := range []string{cfg.ColorA, cfg.ColorB} {
		if _, err := colorful.Hex(c); err != nil {
			return Config{}, fmt.Errorf("invalid color %q: want #rrggbb", c)
		}
	}

	cfg.LogLevel = firstNonEmpty(cfg.LogLevel, os.Getenv("LOG_LEVEL"), "info")
	cfg.LogFormat = firstNonEmpty(cfg.LogFormat, os.Getenv("LOG_FORMAT"), "text")

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// splitList parses a comma-separated list, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
