// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"
)

const (
	// NameColumn holds the candidate identifier in every source.
	NameColumn = "Name"

	// DuplicateSuffix marks a secondary copy of another column.
	DuplicateSuffix = ".1"
)

// DefaultMajorRegions are the national figure followed by the four major areas.
var DefaultMajorRegions = []string{
	"PHILIPPINES (100%)",
	"NCR (11%)",
	"BALANCE LUZON (45%)",
	"VISAYAS (20%)",
	"MINDANAO (24%)",
}

// Row is one candidate's record
type Row struct {
	Name     string
	National float64
	Support  map[string]float64
}

// Value returns the candidate's support in region
func (r Row) Value(region string) (float64, error) {
	v, ok := r.Support[region]
	if !ok {
		return 0, &MissingFieldError{Candidate: r.Name, Region: region}
	}
	return v, nil
}

// RegionSet holds the two disjoint, ordered region catalogs.
type RegionSet struct {
	Major    []string `json:"major"`
	Detailed []string `json:"detailed"`
}

// IsDuplicateColumn reports whether a column is a secondary copy of another.
func IsDuplicateColumn(column string) bool {
	return strings.HasSuffix(column, DuplicateSuffix)
}

// ClassifyRegions derives the detailed regions from the source columns:
// every column except Name, except the major regions, except duplicates.
// Order follows columns.
func ClassifyRegions(columns, major []string) RegionSet {
	excluded := make(map[string]bool, len(major)+1)
	excluded[NameColumn] = true
	for _, m := range major {
		excluded[m] = true
	}

	detailed := []string{}
	for _, col := range columns {
		if excluded[col] || IsDuplicateColumn(col) {
			continue
		}
		detailed = append(detailed, col)
	}

	return RegionSet{
		Major:    slices.Clone(major),
		Detailed: detailed,
	}
}

// Store is the immutable survey table. It is safe for concurrent readers.
type Store struct {
	source     string
	columns    []string
	rows       []Row
	index      map[string]int
	regions    RegionSet
	duplicates []string
	loadedAt   time.Time
	sizeBytes  int64
}

// NewStore validates parsed rows and builds a Store. columns are the region
// columns in source order, without Name. The first major region is the
// national figure.
func NewStore(source string, columns []string, rows []Row, major []string) (*Store, error) {
	if len(major) == 0 {
		major = DefaultMajorRegions
	}
	if len(rows) == 0 {
		return nil, &DataLoadError{Source: source, Reason: "no candidate rows"}
	}

	known := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col == NameColumn {
			return nil, &DataLoadError{Source: source, Reason: "Name listed as a region column"}
		}
		if known[col] {
			return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("duplicate column %q", col)}
		}
		known[col] = true
	}
	for _, m := range major {
		if !known[m] {
			return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("missing required column %q", m)}
		}
	}

	national := major[0]
	s := &Store{
		source:   source,
		columns:  slices.Clone(columns),
		rows:     make([]Row, 0, len(rows)),
		index:    make(map[string]int, len(rows)),
		regions:  ClassifyRegions(columns, major),
		loadedAt: time.Now(),
	}

	for i, row := range rows {
		if row.Name == "" {
			return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("row %d has an empty Name", i+1)}
		}
		nat, ok := row.Support[national]
		if !ok {
			return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("row %q has no value for %q", row.Name, national)}
		}
		for region, v := range row.Support {
			if !known[region] {
				return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("row %q references unknown column %q", row.Name, region)}
			}
			if math.IsNaN(v) || v < 0 || v > 100 {
				return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("row %q: %q value %.2f outside [0, 100]", row.Name, region, v)}
			}
		}

		// First match in source order wins lookups
		if _, seen := s.index[row.Name]; seen {
			if !slices.Contains(s.duplicates, row.Name) {
				s.duplicates = append(s.duplicates, row.Name)
			}
		} else {
			s.index[row.Name] = len(s.rows)
		}

		s.rows = append(s.rows, Row{
			Name:     row.Name,
			National: nat,
			Support:  maps.Clone(row.Support),
		})
	}

	return s, nil
}

// RowFor returns the first row named name.
func (s *Store) RowFor(name string) (Row, error) {
	i, ok := s.index[name]
	if !ok {
		return Row{}, &UnknownCandidateError{Name: name}
	}
	row := s.rows[i]
	row.Support = maps.Clone(row.Support)
	return row, nil
}

// Candidates lists every distinct name in source order.
func (s *Store) Candidates() []string {
	names := make([]string, 0, len(s.index))
	for i, row := range s.rows {
		if s.index[row.Name] == i {
			names = append(names, row.Name)
		}
	}
	return names
}

// Rows returns a copy of every row, duplicates included.
func (s *Store) Rows() []Row {
	out := make([]Row, len(s.rows))
	for i, row := range s.rows {
		row.Support = maps.Clone(row.Support)
		out[i] = row
	}
	return out
}

func (s *Store) Regions() RegionSet {
	return RegionSet{
		Major:    slices.Clone(s.regions.Major),
		Detailed: slices.Clone(s.regions.Detailed),
	}
}

// Columns returns the region columns in source order.
func (s *Store) Columns() []string { return slices.Clone(s.columns) }

// NationalColumn is the column holding the national figure.
func (s *Store) NationalColumn() string { return s.regions.Major[0] }

// Duplicates lists names that appear on more than one row.
func (s *Store) Duplicates() []string { return slices.Clone(s.duplicates) }

func (s *Store) Len() int { return len(s.rows) }

func (s *Store) Source() string { return s.source }

func (s *Store) LoadedAt() time.Time { return s.loadedAt }

// SizeBytes is the size of the source file, or zero when not file backed.
func (s *Store) SizeBytes() int64 { return s.sizeBytes }
