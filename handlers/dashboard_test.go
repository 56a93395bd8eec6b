// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pulse-compare/testutil"
)

func TestGetDashboard(t *testing.T) {
	store := testutil.FixtureStore(t)
	handler := NewDashboardHandler(store, testutil.GetTestConfig())

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		contains       []string
		excludes       []string
	}{
		{
			name:           "defaults to first two candidates",
			query:          "",
			expectedStatus: http.StatusOK,
			contains: []string{
				"Philippines Candidate Comparison Dashboard",
				"5.0% in favor of Cand1",
				`<option value="Cand1" selected>`,
				`<option value="Cand2" selected>`,
				"/charts/comparison.svg?a=Cand1&amp;b=Cand2&amp;view=major",
				"/charts/advantage.svg?a=Cand1&amp;b=Cand2&amp;view=major",
				"3 candidates from fixture.csv",
			},
			excludes: []string{`class="error"`},
		},
		{
			name:           "explicit selection",
			query:          "?a=Cand3&b=Cand2&view=detailed",
			expectedStatus: http.StatusOK,
			contains: []string{
				"27.7% in favor of Cand2",
				`<option value="Cand3" selected>`,
				"view=detailed",
				"Top Performing Regions",
			},
		},
		{
			name:           "top regions listed",
			query:          "?a=Cand1&b=Cand2",
			expectedStatus: http.StatusOK,
			contains:       []string{"Region II: 52.0%", "NCR (11%): 50.0%"},
		},
		{
			name:           "unknown candidate shows inline error",
			query:          "?a=Nobody&b=Cand2",
			expectedStatus: http.StatusNotFound,
			contains:       []string{`class="error"`, "Nobody"},
			excludes:       []string{"/charts/comparison.svg"},
		},
		{
			name:           "invalid view shows inline error",
			query:          "?a=Cand1&b=Cand2&view=provinces",
			expectedStatus: http.StatusBadRequest,
			contains:       []string{`class="error"`, "provinces"},
			excludes:       []string{"/charts/advantage.svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/"+tt.query)
			w := httptest.NewRecorder()
			handler.GetDashboard(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Expected HTML content type, got %s", ct)
			}

			body := w.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("Expected page to contain %q", want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(body, unwanted) {
					t.Errorf("Expected page not to contain %q", unwanted)
				}
			}
		})
	}
}

func TestGetDashboardMissingField(t *testing.T) {
	store := testutil.StoreFromCSV(t, missingNCR)
	handler := NewDashboardHandler(store, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/?a=Cand1&b=Cand2")
	w := httptest.NewRecorder()
	handler.GetDashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	body := w.Body.String()
	if !strings.Contains(body, `class="error"`) {
		t.Error("Expected inline error")
	}
	if strings.Contains(body, "/charts/comparison.svg") {
		t.Error("Expected charts to be hidden")
	}
	// Overview still renders from the national column
	if !strings.Contains(body, "5.0% in favor of Cand1") {
		t.Error("Expected overview to render")
	}
}

func TestGetDashboardNoDetailedRegions(t *testing.T) {
	majorsOnly := `Name,PHILIPPINES (100%),NCR (11%),BALANCE LUZON (45%),VISAYAS (20%),MINDANAO (24%),NCR (11%).1
Cand1,45.0,50.0,44.0,40.0,46.0,50.0
Cand2,40.0,35.0,42.0,40.0,41.0,35.0
`
	store := testutil.StoreFromCSV(t, majorsOnly)
	handler := NewDashboardHandler(store, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/?a=Cand1&b=Cand2&view=detailed")
	w := httptest.NewRecorder()
	handler.GetDashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	body := w.Body.String()
	if !strings.Contains(body, "no regions to chart for the detailed view") {
		t.Error("Expected inline message about the empty region list")
	}
	if strings.Contains(body, "/charts/advantage.svg") {
		t.Error("Expected charts to be hidden")
	}

	// The major view of the same table still renders both charts
	req = testutil.MakeRequest("GET", "/?a=Cand1&b=Cand2&view=major")
	w = httptest.NewRecorder()
	handler.GetDashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "/charts/advantage.svg") {
		t.Error("Expected charts for the major view")
	}
}

// failingWriter accepts headers but rejects every body write
type failingWriter struct {
	header http.Header
	status int
	writes int
}

func (w *failingWriter) Header() http.Header { return w.header }

func (w *failingWriter) WriteHeader(code int) { w.status = code }

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("connection reset")
}

func TestGetDashboardWriteFailure(t *testing.T) {
	store := testutil.FixtureStore(t)
	handler := NewDashboardHandler(store, testutil.GetTestConfig())

	w := &failingWriter{header: http.Header{}}
	handler.GetDashboard(w, testutil.MakeRequest("GET", "/?a=Cand1&b=Cand2"))

	if w.status != http.StatusOK {
		t.Errorf("Expected status 200 before the write failed, got %d", w.status)
	}
	if w.writes != 1 {
		t.Errorf("Expected a single write attempt, got %d", w.writes)
	}
}
