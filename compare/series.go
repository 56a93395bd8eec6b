// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compare

import (
	"fmt"
	"math"

	"github.com/danielhkuo/pulse-compare/survey"
)

type ComparisonPoint struct {
	Region string  `json:"region"`
	ValueA float64 `json:"value_a"`
	ValueB float64 `json:"value_b"`
	LabelA string  `json:"label_a"`
	LabelB string  `json:"label_b"`
}

// ComparisonSeries pairs both candidates' support per region, in the
// order of the selected region list.
type ComparisonSeries struct {
	A      string            `json:"a"`
	B      string            `json:"b"`
	View   ViewMode          `json:"view"`
	Points []ComparisonPoint `json:"points"`
}

type AdvantagePoint struct {
	Region     string  `json:"region"`
	ValueA     float64 `json:"value_a"`
	ValueB     float64 `json:"value_b"`
	Difference float64 `json:"difference"` // A - B
	Favored    string  `json:"favored"`
	Color      string  `json:"color"`
	Label      string  `json:"label"`
}

// AdvantageSeries is the signed per-region difference between a pair.
type AdvantageSeries struct {
	A      string           `json:"a"`
	B      string           `json:"b"`
	View   ViewMode         `json:"view"`
	Points []AdvantagePoint `json:"points"`
}

// Comparison builds the grouped-bar series for a pair.
func Comparison(store *survey.Store, pair Pair, view ViewMode) (ComparisonSeries, error) {
	a, b, err := pair.resolve(store)
	if err != nil {
		return ComparisonSeries{}, err
	}

	regions := view.Regions(store.Regions())
	points := make([]ComparisonPoint, 0, len(regions))
	for _, region := range regions {
		va, vb, err := values(a, b, region)
		if err != nil {
			return ComparisonSeries{}, err
		}
		points = append(points, ComparisonPoint{
			Region: region,
			ValueA: va,
			ValueB: vb,
			LabelA: FormatPercent(va),
			LabelB: FormatPercent(vb),
		})
	}

	return ComparisonSeries{A: a.Name, B: b.Name, View: view, Points: points}, nil
}

// Advantage builds the diverging-bar series for a pair. A region where
// both candidates are equal favors A.
func Advantage(store *survey.Store, pair Pair, view ViewMode, palette Palette) (AdvantageSeries, error) {
	a, b, err := pair.resolve(store)
	if err != nil {
		return AdvantageSeries{}, err
	}

	regions := view.Regions(store.Regions())
	points := make([]AdvantagePoint, 0, len(regions))
	for _, region := range regions {
		va, vb, err := values(a, b, region)
		if err != nil {
			return AdvantageSeries{}, err
		}

		diff := va - vb
		favored, color := b.Name, palette.B
		if favorsA(diff) {
			favored, color = a.Name, palette.A
		}

		points = append(points, AdvantagePoint{
			Region:     region,
			ValueA:     va,
			ValueB:     vb,
			Difference: diff,
			Favored:    favored,
			Color:      color,
			Label:      fmt.Sprintf("%.1f%% advantage for %s", math.Abs(diff), favored),
		})
	}

	return AdvantageSeries{A: a.Name, B: b.Name, View: view, Points: points}, nil
}

func values(a, b survey.Row, region string) (float64, float64, error) {
	va, err := a.Value(region)
	if err != nil {
		return 0, 0, err
	}
	vb, err := b.Value(region)
	if err != nil {
		return 0, 0, err
	}
	return va, vb, nil
}
