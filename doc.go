// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Philippines candidate
comparison dashboard.

The server loads a regional survey table once at startup and serves a
dashboard comparing any two candidates: a national overview, a grouped
regional bar chart and a diverging advantage chart.

# Starting the Server

With the defaults the survey is read from data/Pulse_Feb_Regional.csv:

	go run .

Or with flags:

	go run . -p 8050 -f survey.csv -color-a "#1e88e5" -color-b "#e53935"

# Database Mode

The survey can be copied into SQLite or PostgreSQL and served from there:

	go run . -import -t sqlite -d survey.db -f survey.csv
	go run . -t sqlite -d survey.db

# Configuration

All settings have a flag and an environment variable. A .env file is read
when present.

  - PORT (-p): Server port (default: 8050)
  - SURVEY_CSV (-f): Survey CSV path
  - DATABASE_URL (-d): Serve from this database instead of the CSV
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAJOR_REGIONS (-major): Major region columns, national first
  - CANDIDATE_A_COLOR, CANDIDATE_B_COLOR (-color-a, -color-b): Candidate colors
  - LOG_LEVEL, LOG_FORMAT (-log-level, -log-format): slog settings

# Architecture

  - survey: CSV loading and the immutable survey table
  - compare: Overview, comparison and advantage computations
  - charts: gonum/plot renderings of both charts
  - db: Optional SQLite/PostgreSQL storage for the survey
  - handlers: Dashboard, JSON API and chart endpoints
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Response and page types
  - cliparse: Configuration parsing and logger setup

See package documentation for each component.
*/
package main
