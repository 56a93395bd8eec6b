// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/compare"
	"github.com/danielhkuo/pulse-compare/middleware"
	"github.com/danielhkuo/pulse-compare/models"
	"github.com/danielhkuo/pulse-compare/survey"
)

type APIHandler struct {
	store *survey.Store
	cfg   cliparse.Config
}

func NewAPIHandler(store *survey.Store, cfg cliparse.Config) *APIHandler {
	return &APIHandler{store: store, cfg: cfg}
}

// GetCandidates handles GET /api/candidates
// Returns every candidate name and both region lists
func (h *APIHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	regions := h.store.Regions()

	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{
		Candidates: h.store.Candidates(),
		Regions: models.RegionsResponse{
			National: h.store.NationalColumn(),
			Major:    regions.Major,
			Detailed: regions.Detailed,
		},
		Palette:  paletteFor(h.cfg),
		Source:   h.store.Source(),
		LoadedAt: h.store.LoadedAt(),
	})
}

// GetOverview handles GET /api/overview?a=&b=
func (h *APIHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	pair, _, err := parseSelection(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	overview, err := overviewFor(h.store, pair, paletteFor(h.cfg))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, overview)
}

// GetComparison handles GET /api/comparison?a=&b=&view=
func (h *APIHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	pair, view, err := parseSelection(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	series, err := compare.Comparison(h.store, pair, view)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ComparisonResponse{
		ComparisonSeries: series,
		Palette:          paletteFor(h.cfg),
	})
}

// GetAdvantage handles GET /api/advantage?a=&b=&view=
func (h *APIHandler) GetAdvantage(w http.ResponseWriter, r *http.Request) {
	pair, view, err := parseSelection(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	series, err := compare.Advantage(h.store, pair, view, paletteFor(h.cfg))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdvantageResponse(series))
}

// overviewFor computes the overview and attaches the favored color
func overviewFor(store *survey.Store, pair compare.Pair, palette compare.Palette) (*models.OverviewResponse, error) {
	overview, err := compare.Overview(store, pair)
	if err != nil {
		return nil, err
	}

	color := palette.B
	if overview.FavorsA() {
		color = palette.A
	}
	return &models.OverviewResponse{OverviewResult: overview, Color: color}, nil
}
