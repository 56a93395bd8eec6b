// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%),Region I,Region II,NCR (11%)
Cand1,45.0,50.0,44.0,40.0,46.0,38.5,52.0,50.0
Cand2,40.0,35.0,42.0,40.0,41.0,44.0,30.0,35.0
Cand3,12.3,10.1,11.0,15.2,13.4,,8.8,10.1
`

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := LoadTable(strings.NewReader(testCSV), "test.csv", nil)
	require.NoError(t, err)
	return store
}

func TestLoadTable(t *testing.T) {
	store := loadTestStore(t)

	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"Cand1", "Cand2", "Cand3"}, store.Candidates())
	assert.Equal(t, "PHILIPPINES (100%)", store.NationalColumn())
	assert.Equal(t, "test.csv", store.Source())
	assert.Empty(t, store.Duplicates())

	// Repeated header is renamed to carry the duplicate marker
	cols := store.Columns()
	assert.Equal(t, "NCR (11%).1", cols[len(cols)-1])

	row, err := store.RowFor("Cand1")
	require.NoError(t, err)
	assert.Equal(t, 45.0, row.National)

	v, err := row.Value("NCR (11%)")
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)
}

func TestLoadTable_EmptyCellIsMissing(t *testing.T) {
	store := loadTestStore(t)

	row, err := store.RowFor("Cand3")
	require.NoError(t, err)

	_, err = row.Value("Region I")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))

	var mfe *MissingFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "Cand3", mfe.Candidate)
	assert.Equal(t, "Region I", mfe.Region)
}

func TestLoadTable_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing Name", "Candidate,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,1,2,3,4,5\n"},
		{"missing major column", "Name,PHILIPPINES (100%),NCR (11%),VISAYAS (20%),MINDANAO (24%)\nA,1,2,4,5\n"},
		{"no rows", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\n"},
		{"non numeric", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,1,two,3,4,5\n"},
		{"out of range", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,1,2,300,4,5\n"},
		{"missing national", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,,2,3,4,5\n"},
		{"nan cell", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,NaN,2,3,4,5\n"},
		{"nan region", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,1,2,nan,4,5\n"},
		{"infinite cell", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\nA,1,2,3,-Inf,5\n"},
		{"empty name", "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\n ,1,2,3,4,5\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tc.input), "bad.csv", nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDataLoad), "expected DataLoadError, got %v", err)

			var dle *DataLoadError
			require.True(t, errors.As(err, &dle))
			assert.Equal(t, "bad.csv", dle.Source)
		})
	}
}

func TestLoadTable_CustomMajorRegions(t *testing.T) {
	input := "Name,Total,North,South,East\nA,50,60,40,30\n"
	store, err := LoadTable(strings.NewReader(input), "custom.csv", []string{"Total", "North"})
	require.NoError(t, err)

	regions := store.Regions()
	assert.Equal(t, []string{"Total", "North"}, regions.Major)
	assert.Equal(t, []string{"South", "East"}, regions.Detailed)
	assert.Equal(t, "Total", store.NationalColumn())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	store, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(len(testCSV)), store.SizeBytes())
	assert.False(t, store.LoadedAt().IsZero())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRowFor_Unknown(t *testing.T) {
	store := loadTestStore(t)

	_, err := store.RowFor("Nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCandidate))

	var uce *UnknownCandidateError
	require.True(t, errors.As(err, &uce))
	assert.Equal(t, "Nobody", uce.Name)
}

func TestRowFor_DuplicateNamesFirstMatchWins(t *testing.T) {
	input := "Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%)\n" +
		"A,10,1,1,1,1\n" +
		"B,20,2,2,2,2\n" +
		"A,30,3,3,3,3\n"
	store, err := LoadTable(strings.NewReader(input), "dup.csv", nil)
	require.NoError(t, err)

	row, err := store.RowFor("A")
	require.NoError(t, err)
	assert.Equal(t, 10.0, row.National)

	assert.Equal(t, []string{"A"}, store.Duplicates())
	assert.Equal(t, []string{"A", "B"}, store.Candidates())
	assert.Len(t, store.Rows(), 3)
}

func TestClassifyRegions(t *testing.T) {
	columns := []string{
		"Name", "PHILIPPINES (100%)", "Region I", "NCR (11%)", "Region I.1",
		"BALANCE LUZON (45%)", "CALABARZON", "VISAYAS (20%)", "MINDANAO (24%)",
		"NCR (11%).1", "Davao Region",
	}

	set := ClassifyRegions(columns, DefaultMajorRegions)

	assert.Equal(t, DefaultMajorRegions, set.Major)
	assert.Equal(t, []string{"Region I", "CALABARZON", "Davao Region"}, set.Detailed)

	major := make(map[string]bool)
	for _, m := range set.Major {
		major[m] = true
	}
	for _, d := range set.Detailed {
		assert.False(t, strings.HasSuffix(d, DuplicateSuffix), "%q has duplicate suffix", d)
		assert.False(t, major[d], "%q is a major region", d)
		assert.NotEqual(t, NameColumn, d)
	}
}

func TestClassifyRegions_Deterministic(t *testing.T) {
	columns := []string{"Name", "PHILIPPINES (100%)", "B", "A", "C"}
	first := ClassifyRegions(columns, DefaultMajorRegions)
	second := ClassifyRegions(columns, DefaultMajorRegions)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"B", "A", "C"}, first.Detailed)
}

func TestStoreIsNotMutatedThroughAccessors(t *testing.T) {
	store := loadTestStore(t)

	rows := store.Rows()
	rows[0].Support["NCR (11%)"] = 99
	regions := store.Regions()
	regions.Major[0] = "changed"
	looked, err := store.RowFor("Cand1")
	require.NoError(t, err)
	looked.Support["NCR (11%)"] = 98
	delete(looked.Support, "MINDANAO (24%)")

	row, err := store.RowFor("Cand1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, row.Support["NCR (11%)"])
	assert.Contains(t, row.Support, "MINDANAO (24%)")
	assert.Equal(t, 50.0, store.Rows()[0].Support["NCR (11%)"])
	assert.Equal(t, "PHILIPPINES (100%)", store.Regions().Major[0])
}
