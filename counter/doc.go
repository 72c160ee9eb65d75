// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package counter is the client side of the visit counter.

A Client keeps a persisted client id in a nav.Storage, reports one visit
per page view to GET /api/hit and renders the display text:

	c := counter.New("https://example.com", storage)
	label := c.Display(ctx, "/") // "Unique: 42"

The site root counts under the key "home". Display prefers the unique
count for the key, then the site-wide one. Any failure (network, status,
malformed body) renders the placeholder instead of a number.
*/
package counter
