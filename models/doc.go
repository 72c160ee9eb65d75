// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response and domain types for the API.

# Response Types

  - CounterSnapshot: key, totalForKey, totalAll, uniqueForKey, uniqueAll
  - ErrorResponse: error, message

# Domain Types

  - VisitRecord: one row of the append-only visit log
  - VisitMetadata: request metadata captured with a hit

# Constants

	DefaultKey       = "default"
	DefaultListLimit = 100
	MaxListLimit     = 1000
*/
package models
