// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the folio server.

# Route Registration

NewRouter creates a chi router with all endpoints:

	r := router.NewRouter(db, cfg)

Every response carries Access-Control-Allow-Origin: * and panics in
handlers are recovered into 500 responses.

# Endpoints

Health:

	GET /health

Visit counter:

	GET /api/hit    - Record a visit and return counters (public)
	GET /api/visits - Recent visits (requires X-Admin-Token)

Site:

	GET /* - Files from StaticDir, / maps to index.html

Without StaticDir, GET / answers with a version banner.
*/
package router
