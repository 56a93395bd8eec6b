// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pulse-compare/charts"
	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/compare"
	"github.com/danielhkuo/pulse-compare/models"
	"github.com/danielhkuo/pulse-compare/survey"
)

const dashboardTitle = "Philippines Candidate Comparison Dashboard"

//go:embed templates/dashboard.html
var dashboardHTML string

// candidateCard is one side of the overview block
type candidateCard struct {
	Candidate compare.CandidateOverview
	Color     string
}

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"percent": compare.FormatPercent,
	"card": func(c compare.CandidateOverview, color string) candidateCard {
		return candidateCard{Candidate: c, Color: color}
	},
}).Parse(dashboardHTML))

type DashboardHandler struct {
	store *survey.Store
	cfg   cliparse.Config
}

func NewDashboardHandler(store *survey.Store, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{store: store, cfg: cfg}
}

// GetDashboard handles GET /
// Selection lives in the query string (a, b, view); missing values fall
// back to the first two candidates and the major view. Errors render
// inline instead of failing the page.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	candidates := h.store.Candidates()

	page := models.DashboardPage{
		Title:      dashboardTitle,
		Candidates: candidates,
		A:          q.Get("a"),
		B:          q.Get("b"),
		Palette:    paletteFor(h.cfg),
		Source:     h.store.Source(),
		LoadedAgo:  humanize.Time(h.store.LoadedAt()),
		RowCount:   humanize.Comma(int64(len(candidates))),
	}
	if page.A == "" {
		page.A = candidates[0]
	}
	if page.B == "" {
		page.B = candidates[min(1, len(candidates)-1)]
	}

	status := http.StatusOK
	view, err := compare.ParseViewMode(q.Get("view"))
	if err != nil {
		status = statusFor(err)
		page.Error = err.Error()
		view = compare.ViewMajor
	}
	page.View = view
	for _, v := range []compare.ViewMode{compare.ViewMajor, compare.ViewDetailed} {
		page.Views = append(page.Views, models.ViewOption{Value: v, Label: v.Label(), Selected: v == view})
	}

	pair := compare.Pair{A: page.A, B: page.B}
	if page.Error == "" {
		overview, err := overviewFor(h.store, pair, page.Palette)
		if err != nil {
			status = statusFor(err)
			page.Error = err.Error()
		} else {
			page.Overview = overview
		}
	}
	// Surface a malformed row here; the chart images cannot show text
	if page.Error == "" {
		series, err := compare.Comparison(h.store, pair, view)
		if err == nil && len(series.Points) == 0 {
			err = fmt.Errorf("%w for the %s view", charts.ErrNoRegions, view)
		}
		if err != nil {
			status = statusFor(err)
			page.Error = err.Error()
		}
	}

	if page.Error == "" {
		query := url.Values{"a": {pair.A}, "b": {pair.B}, "view": {string(view)}}.Encode()
		page.ComparisonChart = template.URL("/charts/" + ChartComparison + ".svg?" + query)
		page.AdvantageChart = template.URL("/charts/" + ChartAdvantage + ".svg?" + query)
	} else {
		slog.Warn("dashboard selection rejected", "a", pair.A, "b", pair.B, "error", page.Error)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		slog.Error("failed to render dashboard", "error", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write dashboard", "error", err)
	}
}
