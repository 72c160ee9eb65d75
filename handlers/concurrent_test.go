// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/folio/models"
	"github.com/danielhkuo/folio/testutil"
)

// TestConcurrentHits verifies that simultaneous hits each append exactly
// one row and that every response counts at least its own visit
func TestConcurrentHits(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	runConcurrentHits(t, db, 20)
}

// TestConcurrentHits_FileStore runs the same load against an on-disk
// SQLite store, where writers contend for the file lock
func TestConcurrentHits_FileStore(t *testing.T) {
	db := testutil.SetupFileTestDB(t)

	runConcurrentHits(t, db, 50)
}

func runConcurrentHits(t *testing.T, db *sql.DB, numVisitors int) {
	t.Helper()

	handler := NewVisitHandler(db, testutil.GetTestConfig())

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVisitors; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			path := fmt.Sprintf("/api/hit?key=home&client_id=visitor-%d", idx%5)
			w := httptest.NewRecorder()
			handler.Hit(w, httptest.NewRequest("GET", path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("Hit %d: expected status 200, got %d", idx, w.Code)
				return
			}

			var snap models.CounterSnapshot
			if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
				t.Errorf("Hit %d: failed to decode response: %v", idx, err)
				return
			}
			if snap.TotalForKey < 1 || snap.UniqueForKey < 1 {
				t.Errorf("Hit %d: counters do not include own visit: %+v", idx, snap)
				return
			}
			successCount.Add(1)
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVisitors {
		t.Errorf("Expected %d successful hits, got %d", numVisitors, successCount.Load())
	}

	var total, unique int
	if err := db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT client_id) FROM visits`).Scan(&total, &unique); err != nil {
		t.Fatalf("Failed to count visits: %v", err)
	}
	if total != numVisitors {
		t.Errorf("Expected %d rows, got %d", numVisitors, total)
	}
	if unique != 5 {
		t.Errorf("Expected 5 unique clients, got %d", unique)
	}
}
