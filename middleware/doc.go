// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/api/hit", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Every response permits any origin:

	r.Use(middleware.CORS)

Built on github.com/go-chi/cors, which also answers preflight requests
for GET with the X-Admin-Token header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Request Metadata

Get the original client IP (CF-Connecting-IP, X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

RequestMetadata adds user agent, referer and the edge's geo and network
headers (CF-IPCountry, CF-IPCity, CF-ASN, CF-AS-Organization).
*/
package middleware
