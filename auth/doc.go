// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin token checks and client identifiers.

# Admin Token

The visit listing is gated by a static token sent in X-Admin-Token:

	err := auth.CheckAdminToken(cfg.AdminToken, r.Header.Get("X-Admin-Token"))

The comparison is constant time. ErrAdminDisabled is returned when no
token is configured and ErrInvalidAdminToken on mismatch; callers reject
both the same way.

# Client IDs

Random UUIDv4 identifiers persisted by the browser to approximate unique
visitors:

	id := auth.NewClientID()
*/
package auth
