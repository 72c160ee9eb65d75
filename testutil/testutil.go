// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/folio/cliparse"
	"github.com/danielhkuo/folio/db"
)

// TestDBURL is an in-memory SQLite database, private to each SetupTestDB call
const TestDBURL = ":memory:"

// TestAdminToken is the admin token of GetTestConfig
const TestAdminToken = "test-admin-token"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupFileTestDB creates a test database in a SQLite file under
// t.TempDir(), opened the way the server opens it
func SetupFileTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "folio.db")
	conn, err := db.Open(db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		AdminToken:   TestAdminToken,
	}
}

// InsertTestVisits appends n visits for key directly, bypassing the service.
// clientID may be empty for anonymous visits.
func InsertTestVisits(t *testing.T, conn *sql.DB, key, clientID string, n int) {
	t.Helper()

	var cid sql.NullString
	if clientID != "" {
		cid = sql.NullString{String: clientID, Valid: true}
	}

	for i := 0; i < n; i++ {
		_, err := conn.Exec(`
			INSERT INTO visits (ts, key, ip, user_agent, referer, client_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, time.Now().UnixMilli(), key, fmt.Sprintf("10.0.0.%d", i+1), "test-agent", nil, cid)
		if err != nil {
			t.Fatalf("Failed to create test visit: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
