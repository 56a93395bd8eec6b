// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the comparison dashboard.

# Handler Types

Each handler is a struct holding the loaded survey and the config:

  - DashboardHandler: the server-rendered HTML page
  - APIHandler: JSON views of the overview and both chart series
  - ChartHandler: SVG and PNG renderings of the two charts

Handlers are created via constructor functions:

	api := handlers.NewAPIHandler(store, cfg)

# Selection

Every comparison endpoint reads its selection from the query string:

	a     first candidate name (required)
	b     second candidate name (required)
	view  "major" (default) or "detailed"

Selection is request-scoped. Nothing is kept between requests.

# Errors

Domain errors map to status codes in one place:

	400  missing a or b, unknown view, unknown image format
	404  candidate not in the survey
	422  candidate row lacks a region value, empty region list
	500  anything else (message hidden, error logged)

The dashboard renders the same errors inline above the charts instead of
returning a JSON body.
*/
package handlers
