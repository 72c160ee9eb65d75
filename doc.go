// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the folio server.

Folio is a personal portfolio site: an about screen with tiles that open
a CV screen and a blog screen, plus a privacy-light visit counter. The
server stores visits and optionally serves the built site.

# Starting the Server

With no configuration the server keeps visits in a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -static ./dist

Settings may also come from a .env file in the working directory.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:folio.db for sqlite)
  - ADMIN_TOKEN (-admin-token): Token for GET /api/visits; unset disables it
  - STATIC_DIR (-static): Directory of the built site to serve at /

# Architecture

  - nav: Screen navigation state machine and its browser ports
  - counter: Visit counter client used by the site
  - handlers: HTTP request handlers
  - visits: Visit recording and listing
  - router: Route definitions using chi
  - middleware: CORS, logging, client metadata, JSON helpers
  - models: Request/response types
  - auth: Admin token check and client ids
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
