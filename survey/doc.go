// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey loads and holds the regional survey table.

# Loading

A survey is a CSV with a Name column and one percentage column per region:

	store, err := survey.LoadFile("data/Pulse_Feb_Regional.csv", nil)

A nil major list selects DefaultMajorRegions. The first major region is the
national figure. Loading fails with a *DataLoadError when the source is
unreadable, a required column is absent, or a value is not a number in
[0, 100]. Empty cells are kept as missing values.

Repeated header names are renamed the way spreadsheet exports expect
("NCR (11%)" twice becomes "NCR (11%)" and "NCR (11%).1").

# Regions

ClassifyRegions splits the columns into two disjoint lists:

  - Major: the configured list, in configured order
  - Detailed: every other column in source order, skipping any column
    ending in ".1"

# Lookup

	row, err := store.RowFor("Cand1")
	v, err := row.Value("NCR (11%)")

RowFor returns *UnknownCandidateError for unknown names. When a name occurs
twice the first row wins; Duplicates reports such names. Value returns
*MissingFieldError when the row has no value for the region.

A Store is never modified after construction and may be shared between
goroutines.
*/
package survey
