// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"gonum.org/v1/plot"

	"github.com/danielhkuo/pulse-compare/charts"
	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/compare"
	"github.com/danielhkuo/pulse-compare/middleware"
	"github.com/danielhkuo/pulse-compare/survey"
)

// Chart names served under /charts/
const (
	ChartComparison = "comparison"
	ChartAdvantage  = "advantage"
)

type ChartHandler struct {
	store *survey.Store
	cfg   cliparse.Config
}

func NewChartHandler(store *survey.Store, cfg cliparse.Config) *ChartHandler {
	return &ChartHandler{store: store, cfg: cfg}
}

// GetChart handles GET /charts/{file}
// file is "comparison" or "advantage" with a .svg or .png extension
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	name, ext, ok := strings.Cut(r.PathValue("file"), ".")
	if !ok || (name != ChartComparison && name != ChartAdvantage) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Chart not found")
		return
	}

	format, err := charts.ParseFormat(ext)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, view, err := parseSelection(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var (
		p       *plot.Plot
		regions int
	)
	palette := paletteFor(h.cfg)
	switch name {
	case ChartComparison:
		series, err := compare.Comparison(h.store, pair, view)
		if err != nil {
			writeError(w, r, err)
			return
		}
		regions = len(series.Points)
		p, err = charts.Comparison(series, palette)
		if err != nil {
			writeError(w, r, err)
			return
		}
	case ChartAdvantage:
		series, err := compare.Advantage(h.store, pair, view, palette)
		if err != nil {
			writeError(w, r, err)
			return
		}
		regions = len(series.Points)
		p, err = charts.Advantage(series)
		if err != nil {
			writeError(w, r, err)
			return
		}
	}

	// Render fully before writing so failures still get a status code
	var buf bytes.Buffer
	if err := charts.Render(&buf, p, regions, format); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write chart", "chart", name, "error", err)
	}
}
