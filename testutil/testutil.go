// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/survey"
	_ "modernc.org/sqlite"
)

// FixtureCSV is a small survey with every major region, five detailed
// regions and one duplicate column.
//
//   - Cand1 leads Cand2 nationally by 5.0 and in NCR by 15.0
//   - Cand1 and Cand2 tie in VISAYAS and Central Visayas
//   - Cand2 ties MINDANAO and Central Visayas at 41.0
const FixtureCSV = `Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%),Region I,Region II,CALABARZON,Central Visayas,Davao Region,NCR (11%).1
Cand1,45.0,50.0,44.0,40.0,46.0,38.5,52.0,47.5,41.0,49.0,50.0
Cand2,40.0,35.0,42.0,40.0,41.0,44.0,30.0,39.0,41.0,36.0,35.0
Cand3,12.3,10.1,11.0,15.2,13.4,9.0,8.8,12.0,16.1,14.4,10.1
`

// FixtureDetailed is the detailed region list derived from FixtureCSV.
var FixtureDetailed = []string{"Region I", "Region II", "CALABARZON", "Central Visayas", "Davao Region"}

// FixtureStore loads FixtureCSV
func FixtureStore(t *testing.T) *survey.Store {
	t.Helper()
	return StoreFromCSV(t, FixtureCSV)
}

// StoreFromCSV loads a store from inline CSV and fails the test on error
func StoreFromCSV(t *testing.T, csv string) *survey.Store {
	t.Helper()

	store, err := survey.LoadTable(strings.NewReader(csv), "fixture.csv", nil)
	if err != nil {
		t.Fatalf("Failed to load fixture table: %v", err)
	}
	return store
}

// SetupTestDB opens a fresh SQLite database in the test's temp dir
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "survey.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8050,
		CSVPath:      "fixture.csv",
		DatabaseType: "sqlite",
		MajorRegions: survey.DefaultMajorRegions,
		ColorA:       "#1e88e5",
		ColorB:       "#e53935",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// MakeRequest creates an HTTP test request without a body
func MakeRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
