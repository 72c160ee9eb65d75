// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == TypeSQLite {
		// One connection: writers queue in the pool instead of failing with
		// SQLITE_BUSY, and :memory: stays a single database.
		conn.SetMaxOpenConns(1)
		if err := applyPragmas(conn); err != nil {
			conn.Close()
			return nil, err
		}
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// SQLiteBusyTimeout is how long a SQLite writer waits for a lock held by
// another process.
const SQLiteBusyTimeout = 10 * time.Second

func applyPragmas(conn *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", SQLiteBusyTimeout.Milliseconds()),
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %s: %w", p, err)
		}
	}
	return nil
}

// CreateSchema creates the visits table for the given database type.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == TypePostgres {
		schema = postgresSchema
	}

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func driverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite, "":
		return TypeSQLite, nil
	case TypePostgres:
		return TypePostgres, nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ts INTEGER NOT NULL,
    key TEXT NOT NULL,
    ip TEXT NOT NULL,
    user_agent TEXT NOT NULL DEFAULT '',
    country TEXT,
    city TEXT,
    referer TEXT,
    asn INTEGER,
    as_org TEXT,
    client_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_visits_key ON visits(key);
CREATE INDEX IF NOT EXISTS idx_visits_client_id ON visits(client_id);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS visits (
    id BIGSERIAL PRIMARY KEY,
    ts BIGINT NOT NULL,
    key TEXT NOT NULL,
    ip TEXT NOT NULL,
    user_agent TEXT NOT NULL DEFAULT '',
    country TEXT,
    city TEXT,
    referer TEXT,
    asn BIGINT,
    as_org TEXT,
    client_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_visits_key ON visits(key);
CREATE INDEX IF NOT EXISTS idx_visits_client_id ON visits(client_id);
`
