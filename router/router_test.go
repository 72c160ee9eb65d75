// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/folio/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "folio API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method         string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{"GET", "/health", nil, http.StatusOK},
		{"GET", "/", nil, http.StatusOK},
		{"GET", "/api/hit?key=home", nil, http.StatusOK},
		{"GET", "/api/visits", map[string]string{"X-Admin-Token": testutil.TestAdminToken}, http.StatusOK},
		{"GET", "/api/visits", nil, http.StatusForbidden},
		{"POST", "/api/hit", nil, http.StatusMethodNotAllowed},
		{"GET", "/api/unknown", nil, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, tc.headers))

			testutil.AssertStatus(t, w, tc.expectedStatus)

			// CORS applies to every response
			if w.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Errorf("Expected Access-Control-Allow-Origin '*', got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestStaticSite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>folio</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cv.pdf"), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testutil.GetTestConfig()
	cfg.StaticDir = dir
	mux := NewRouter(db, cfg)

	testCases := []struct {
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"/", http.StatusOK, "<h1>folio</h1>"},
		{"/cv.pdf", http.StatusOK, "%PDF-1.4"},
		{"/missing.html", http.StatusNotFound, ""},
		{"/../../etc/passwd", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", tc.path, nil))

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedBody != "" && w.Body.String() != tc.expectedBody {
				t.Errorf("Expected body '%s', got '%s'", tc.expectedBody, w.Body.String())
			}
		})
	}

	// API routes still win over the file server
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/hit?key=home", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}
