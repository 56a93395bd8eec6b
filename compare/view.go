// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compare

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/pulse-compare/survey"
)

// ViewMode selects which region list the charts display
type ViewMode string

const (
	ViewMajor    ViewMode = "major"
	ViewDetailed ViewMode = "detailed"
)

var ErrInvalidView = errors.New("invalid view mode")

// ParseViewMode accepts "major" and "detailed". Empty means major.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewMajor:
		return ViewMajor, nil
	case ViewDetailed:
		return ViewDetailed, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidView, s, ViewMajor, ViewDetailed)
	}
}

// Regions picks the list for this view from set
func (v ViewMode) Regions(set survey.RegionSet) []string {
	if v == ViewDetailed {
		return set.Detailed
	}
	return set.Major
}

// Label is the human-readable name used by selectors.
func (v ViewMode) Label() string {
	if v == ViewDetailed {
		return "Detailed Regions"
	}
	return "Major Regions"
}

// Palette holds the display color of each side of a pair.
type Palette struct {
	A string `json:"a"`
	B string `json:"b"`
}

var DefaultPalette = Palette{
	A: "#1e88e5", // blue
	B: "#e53935", // red
}

// Pair is the two candidates being compared.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// resolve looks up both rows
func (p Pair) resolve(store *survey.Store) (survey.Row, survey.Row, error) {
	a, err := store.RowFor(p.A)
	if err != nil {
		return survey.Row{}, survey.Row{}, err
	}
	b, err := store.RowFor(p.B)
	if err != nil {
		return survey.Row{}, survey.Row{}, err
	}
	return a, b, nil
}

// favorsA is the single tie rule for every comparison: a zero difference
// favors the first candidate.
func favorsA(difference float64) bool {
	return difference >= 0
}

// FormatPercent renders a support value with one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
