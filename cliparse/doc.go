// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8050)
  - CSVPath: Survey CSV (default: data/Pulse_Feb_Regional.csv)
  - DatabaseURL: Serve the survey from this database when set
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Import: Copy the CSV into the database and exit
  - MajorRegions: Major region columns, national figure first
  - ColorA, ColorB: Candidate colors (default: #1e88e5, #e53935)
  - LogLevel, LogFormat: slog level and handler (default: info, text)

# CLI Flags

	-p           Server port
	-f           Survey CSV file
	-d           Database URL
	-t           Database type
	-import      Import CSV into the database and exit
	-major       Comma-separated major regions
	-color-a     Candidate 1 color
	-color-b     Candidate 2 color
	-log-level   debug, info, warn, error
	-log-format  text or json
	-env         Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	SURVEY_CSV        → -f
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	MAJOR_REGIONS     → -major
	CANDIDATE_A_COLOR → -color-a
	CANDIDATE_B_COLOR → -color-b
	LOG_LEVEL         → -log-level
	LOG_FORMAT        → -log-format

CLI flags take precedence over environment variables. Variables from the
dotenv file only fill in what the environment does not already set; a
missing dotenv file is not an error.

# Logging

SetupLogging installs a slog handler on stderr for the configured level
and format:

	if err := cliparse.SetupLogging(cfg); err != nil {
		log.Fatal(err)
	}
*/
package cliparse
