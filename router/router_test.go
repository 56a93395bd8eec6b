// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pulse-compare/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	store := testutil.FixtureStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	store := testutil.FixtureStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "Philippines Candidate Comparison Dashboard") {
		t.Error("Expected dashboard page")
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Error("Expected X-Request-ID header from logging middleware")
	}
}

func TestRouteExistence(t *testing.T) {
	store := testutil.FixtureStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store, cfg)

	testCases := []struct {
		path           string
		expectedStatus int
	}{
		{"/health", http.StatusOK},
		{"/", http.StatusOK},
		{"/api/candidates", http.StatusOK},
		{"/api/overview?a=Cand1&b=Cand2", http.StatusOK},
		{"/api/comparison?a=Cand1&b=Cand2", http.StatusOK},
		{"/api/advantage?a=Cand1&b=Cand2&view=detailed", http.StatusOK},
		{"/charts/comparison.svg?a=Cand1&b=Cand2", http.StatusOK},
		{"/charts/advantage.png?a=Cand1&b=Cand2", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run("GET "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s, got %d. Body: %s", tc.expectedStatus, tc.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestUnknownPaths(t *testing.T) {
	store := testutil.FixtureStore(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	// GET /{$} matches only the root, not every path
	for _, path := range []string{"/favicon.ico", "/api/unknown", "/dashboard"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Expected 404 for %s, got %d", path, w.Code)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	store := testutil.FixtureStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store, cfg)

	// Every route is read-only
	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"POST to dashboard", "POST", "/", http.StatusMethodNotAllowed},
		{"PUT to overview", "PUT", "/api/overview", http.StatusMethodNotAllowed},
		{"DELETE chart", "DELETE", "/charts/comparison.svg", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}
