// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the visit store and creates its schema.

# Drivers

Two database types are supported:

  - sqlite (default): modernc.org/sqlite, pure Go
  - postgres: github.com/lib/pq

	conn, err := db.Open(db.TypeSQLite, "file:folio.db")
	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call CreateSchema multiple times - uses IF NOT EXISTS for the
table and indexes. Queries use $N placeholders, which both drivers accept.

# SQLite

A SQLite store is opened with one connection, WAL journaling and a busy
timeout, so concurrent hits from the HTTP server queue instead of failing.

# Tables

  - visits: append-only visit log; rows are never updated or deleted

# Indexes

  - visits.key
  - visits.client_id
*/
package db
