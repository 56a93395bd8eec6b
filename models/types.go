package models

import (
	"html/template"
	"time"

	"github.com/danielhkuo/pulse-compare/compare"
)

// Response types

type RegionsResponse struct {
	National string   `json:"national"`
	Major    []string `json:"major"`
	Detailed []string `json:"detailed"`
}

type CandidatesResponse struct {
	Candidates []string        `json:"candidates"`
	Regions    RegionsResponse `json:"regions"`
	Palette    compare.Palette `json:"palette"`
	Source     string          `json:"source"`
	LoadedAt   time.Time       `json:"loaded_at"`
}

type OverviewResponse struct {
	compare.OverviewResult
	Color string `json:"color"` // color of the favored candidate
}

type ComparisonResponse struct {
	compare.ComparisonSeries
	Palette compare.Palette `json:"palette"`
}

type AdvantageResponse = compare.AdvantageSeries

// Dashboard page types

// ViewOption is one entry of the view selector
type ViewOption struct {
	Value    compare.ViewMode
	Label    string
	Selected bool
}

// DashboardPage is everything the dashboard template renders
type DashboardPage struct {
	Title      string
	Candidates []string
	A          string
	B          string
	View       compare.ViewMode
	Views      []ViewOption
	Palette    compare.Palette
	Overview   *OverviewResponse
	Error      string
	Source     string
	LoadedAgo  string
	RowCount   string

	ComparisonChart template.URL
	AdvantageChart  template.URL
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
