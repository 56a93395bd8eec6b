// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the comparison dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux over a loaded survey:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Dashboard:

	GET /?a=&b=&view=  - HTML page with overview and both charts

JSON API:

	GET /api/candidates             - Candidate names and region lists
	GET /api/overview?a=&b=         - National overview
	GET /api/comparison?a=&b=&view= - Grouped comparison series
	GET /api/advantage?a=&b=&view=  - Diverging advantage series

Charts:

	GET /charts/comparison.svg  (or .png)
	GET /charts/advantage.svg   (or .png)

All routes except /health are wrapped with request logging. Wrap the
returned mux with middleware.CORS for cross-origin reads.
*/
package router
