// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- One cell of the survey table per row; NULL support is a missing value
CREATE TABLE IF NOT EXISTS survey_result (
    candidate TEXT NOT NULL,
    candidate_pos INTEGER NOT NULL,
    region TEXT NOT NULL,
    region_pos INTEGER NOT NULL,
    support REAL CHECK (support IS NULL OR (support >= 0 AND support <= 100)),
    PRIMARY KEY (candidate_pos, region_pos)
);

CREATE INDEX IF NOT EXISTS idx_survey_result_candidate ON survey_result(candidate);
CREATE INDEX IF NOT EXISTS idx_survey_result_region ON survey_result(region_pos, region);
`
