// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the survey table in PostgreSQL or SQLite.

# Connecting

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:survey.db")

Open registers both drivers (lib/pq and modernc.org/sqlite) and pings the
database before returning.

# Schema

CreateSchema creates the survey_result table. Safe to call repeatedly.

The table is stored one cell per row:

	survey_result
	  candidate      TEXT     candidate name
	  candidate_pos  INTEGER  row position in the source
	  region         TEXT     region column name
	  region_pos     INTEGER  column position in the source
	  support        REAL     percentage, NULL when missing

Positions keep the source order, so duplicate names and duplicate-marker
columns round-trip unchanged.

# Import and Load

	err := db.ImportStore(ctx, conn, store)     // replace the stored table
	store, err := db.LoadStore(ctx, conn, src, major)

ImportStore runs in one transaction. LoadStore returns a *survey.DataLoadError
when the table is absent, empty, or inconsistent.
*/
package db
