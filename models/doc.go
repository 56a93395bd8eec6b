// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response and page types for the HTTP surface.

# Response Types

Types for JSON responses:

  - CandidatesResponse: candidates, regions, palette, source, loaded_at
  - RegionsResponse: national, major, detailed
  - OverviewResponse: compare.OverviewResult plus the favored color
  - ComparisonResponse: compare.ComparisonSeries plus the palette
  - AdvantageResponse: compare.AdvantageSeries
  - ErrorResponse: error, message

# Page Types

  - DashboardPage: selector state, overview, chart query and footer text
  - ViewOption: one entry of the view selector
*/
package models
