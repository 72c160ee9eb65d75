// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/folio/cliparse"
	"github.com/danielhkuo/folio/handlers"
	"github.com/danielhkuo/folio/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Initialize handlers
	visitHandler := handlers.NewVisitHandler(db, cfg)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Visit counter
	r.Get("/api/hit", middleware.WithLogging(visitHandler.Hit))
	r.Get("/api/visits", middleware.WithLogging(visitHandler.List))

	// Built site, when configured
	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
		return r
	}

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("folio API v1"))
	})

	return r
}
