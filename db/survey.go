// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"github.com/danielhkuo/pulse-compare/survey"
)

// ImportStore replaces the stored survey with every row of store.
// Row and column order are kept through candidate_pos and region_pos.
func ImportStore(ctx context.Context, db *sql.DB, store *survey.Store) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM survey_result`); err != nil {
		return fmt.Errorf("failed to clear survey_result: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO survey_result (candidate, candidate_pos, region, region_pos, support)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	columns := store.Columns()
	for i, row := range store.Rows() {
		for j, region := range columns {
			var support sql.NullFloat64
			if v, ok := row.Support[region]; ok {
				support = sql.NullFloat64{Float64: v, Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, row.Name, i, region, j, support); err != nil {
				return fmt.Errorf("failed to insert %q/%q: %w", row.Name, region, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// LoadStore rebuilds a survey store from survey_result.
func LoadStore(ctx context.Context, db *sql.DB, source string, major []string) (*survey.Store, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT candidate, candidate_pos, region, region_pos, support
		FROM survey_result
		ORDER BY candidate_pos, region_pos
	`)
	if err != nil {
		return nil, &survey.DataLoadError{Source: source, Reason: "failed to query survey_result", Err: err}
	}
	defer rows.Close()

	var (
		regionPos = make(map[int]string)
		table     []survey.Row
		lastPos   = -1
	)
	for rows.Next() {
		var (
			candidate, region string
			cPos, rPos        int
			support           sql.NullFloat64
		)
		if err := rows.Scan(&candidate, &cPos, &region, &rPos, &support); err != nil {
			return nil, &survey.DataLoadError{Source: source, Reason: "failed to scan survey_result", Err: err}
		}

		if prev, ok := regionPos[rPos]; !ok {
			regionPos[rPos] = region
		} else if prev != region {
			return nil, &survey.DataLoadError{
				Source: source,
				Reason: fmt.Sprintf("region position %d is both %q and %q", rPos, prev, region),
			}
		}

		if cPos != lastPos {
			table = append(table, survey.Row{Name: candidate, Support: make(map[string]float64)})
			lastPos = cPos
		}
		if support.Valid {
			table[len(table)-1].Support[region] = support.Float64
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &survey.DataLoadError{Source: source, Reason: "failed to read survey_result", Err: err}
	}

	positions := slices.Sorted(maps.Keys(regionPos))
	columns := make([]string, 0, len(positions))
	for _, pos := range positions {
		columns = append(columns, regionPos[pos])
	}

	return survey.NewStore(source, columns, table, major)
}
