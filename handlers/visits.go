// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/folio/auth"
	"github.com/danielhkuo/folio/cliparse"
	"github.com/danielhkuo/folio/middleware"
	"github.com/danielhkuo/folio/visits"
)

type VisitHandler struct {
	svc *visits.Service
}

func NewVisitHandler(db *sql.DB, cfg cliparse.Config) *VisitHandler {
	return &VisitHandler{svc: visits.NewService(db, cfg.AdminToken)}
}

// Hit handles GET /api/hit
// Records one visit for ?key= and returns the counters
func (h *VisitHandler) Hit(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	key := query.Get("key")
	clientID := query.Get("client_id")

	snap, err := h.svc.RecordVisit(r.Context(), key, clientID, middleware.RequestMetadata(r))
	if err != nil {
		slog.Error("failed to record visit", "key", key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}

// List handles GET /api/visits
// Returns the most recent visits; requires the X-Admin-Token header
func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := visits.ParseLimit(query.Get("limit"))
	key := query.Get("key")

	records, err := h.svc.ListVisits(r.Context(), limit, key, r.Header.Get("X-Admin-Token"))
	if errors.Is(err, auth.ErrAdminDisabled) || errors.Is(err, auth.ErrInvalidAdminToken) {
		slog.Warn("visit listing rejected", "reason", err, "remote", middleware.GetClientIP(r))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Forbidden"))
		return
	}
	if err != nil {
		slog.Error("failed to list visits", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}
