// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the folio API.

# Handler Types

  - VisitHandler: visit recording and listing

Handlers are created via constructor functions that accept *sql.DB and Config:

	visitHandler := handlers.NewVisitHandler(db, cfg)

# Visit Counter

	GET /api/hit?key=&client_id= → Hit (public)
	GET /api/visits?limit=&key=  → List (admin)

Hit appends one row to the visit log and answers with the counters for
the key and for the whole site. A missing key counts as "default".

List requires the X-Admin-Token header to match the configured token.
Any mismatch, or no configured token, is answered with a plain-text 403
Forbidden; the two cases are told apart only in the logs. The limit is
clamped to 1..1000 and defaults to 100.

Store errors are answered with 500; callers treat that as an unknown
count.
*/
package handlers
