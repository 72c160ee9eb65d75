// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: connection string (default file:folio.db for sqlite)
  - AdminToken: Secret for the visit listing (optional)
  - StaticDir: Built site served at / (optional)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin-token  Admin token
	-static       Static site directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_TOKEN   → -admin-token
	STATIC_DIR    → -static

CLI flags take precedence over environment variables. main loads a .env
file with godotenv before parsing, without overriding variables that are
already set.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or outside 1..65535
  - the database type is not sqlite or postgres
  - postgres is selected without a database URL

Without ADMIN_TOKEN the listing endpoint rejects every request.
*/
package cliparse
