// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pulse-compare/charts"
	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/compare"
	"github.com/danielhkuo/pulse-compare/middleware"
	"github.com/danielhkuo/pulse-compare/survey"
)

var errMissingPair = errors.New("query parameters a and b are required")

// parseSelection reads the request-scoped pair and view from the query string
func parseSelection(r *http.Request) (compare.Pair, compare.ViewMode, error) {
	q := r.URL.Query()
	pair := compare.Pair{A: q.Get("a"), B: q.Get("b")}
	if pair.A == "" || pair.B == "" {
		return compare.Pair{}, "", errMissingPair
	}

	view, err := compare.ParseViewMode(q.Get("view"))
	if err != nil {
		return compare.Pair{}, "", err
	}
	return pair, view, nil
}

func paletteFor(cfg cliparse.Config) compare.Palette {
	return compare.Palette{A: cfg.ColorA, B: cfg.ColorB}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingPair),
		errors.Is(err, compare.ErrInvalidView),
		errors.Is(err, charts.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, survey.ErrUnknownCandidate):
		return http.StatusNotFound
	case errors.Is(err, survey.ErrMissingField),
		errors.Is(err, charts.ErrNoRegions):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it as a JSON error response
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, status, "Internal error")
		return
	}

	slog.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	middleware.ErrorResponse(w, status, err.Error())
}
