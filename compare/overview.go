// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compare

import (
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/pulse-compare/survey"
)

// TopRegionCount is how many best regions the overview lists per candidate.
const TopRegionCount = 3

type RegionValue struct {
	Region string  `json:"region"`
	Value  float64 `json:"value"`
}

type CandidateOverview struct {
	Name       string        `json:"name"`
	National   float64       `json:"national"`
	TopRegions []RegionValue `json:"top_regions"`
}

type OverviewResult struct {
	A          CandidateOverview `json:"a"`
	B          CandidateOverview `json:"b"`
	Difference float64           `json:"difference"` // national A - national B
	Favored    string            `json:"favored"`
	Summary    string            `json:"summary"`
}

// FavorsA reports whether the overview favors the first candidate.
func (o OverviewResult) FavorsA() bool {
	return favorsA(o.Difference)
}

// Overview computes national figures, each candidate's best regions, and
// the signed national difference.
func Overview(store *survey.Store, pair Pair) (OverviewResult, error) {
	a, b, err := pair.resolve(store)
	if err != nil {
		return OverviewResult{}, err
	}

	pool := rankableRegions(store)
	diff := a.National - b.National

	favored := b.Name
	if favorsA(diff) {
		favored = a.Name
	}

	return OverviewResult{
		A: CandidateOverview{
			Name:       a.Name,
			National:   a.National,
			TopRegions: topRegions(a, pool, TopRegionCount),
		},
		B: CandidateOverview{
			Name:       b.Name,
			National:   b.National,
			TopRegions: topRegions(b, pool, TopRegionCount),
		},
		Difference: diff,
		Favored:    favored,
		Summary:    fmt.Sprintf("%.1f%% in favor of %s", math.Abs(diff), favored),
	}, nil
}

// rankableRegions is every region column except the national figure and
// duplicate copies, in column order.
func rankableRegions(store *survey.Store) []string {
	national := store.NationalColumn()
	var pool []string
	for _, col := range store.Columns() {
		if col == national || survey.IsDuplicateColumn(col) {
			continue
		}
		pool = append(pool, col)
	}
	return pool
}

// topRegions returns the n highest values in pool. Ties keep pool order.
// Regions the row has no value for are skipped.
func topRegions(row survey.Row, pool []string, n int) []RegionValue {
	values := make([]RegionValue, 0, len(pool))
	for _, region := range pool {
		v, err := row.Value(region)
		if err != nil {
			continue
		}
		values = append(values, RegionValue{Region: region, Value: v})
	}

	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Value > values[j].Value
	})

	if len(values) > n {
		values = values[:n]
	}
	return values
}
