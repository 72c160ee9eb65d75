// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visits

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/folio/auth"
	"github.com/danielhkuo/folio/models"
)

// Service records visits and computes counters over the visit log.
type Service struct {
	db         *sql.DB
	adminToken string
	now        func() time.Time
}

func NewService(db *sql.DB, adminToken string) *Service {
	return &Service{db: db, adminToken: adminToken, now: time.Now}
}

// RecordVisit appends one visit and returns the counters, which include
// the visit just written. The first failing statement aborts the call.
func (s *Service) RecordVisit(ctx context.Context, key, clientID string, meta models.VisitMetadata) (models.CounterSnapshot, error) {
	if key == "" {
		key = models.DefaultKey
	}
	ip := meta.IP
	if ip == "" {
		ip = "unknown"
	}
	clientID = auth.NormalizeClientID(clientID)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits
			(ts, key, ip, user_agent, country, city, referer, asn, as_org, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		s.now().UnixMilli(),
		key,
		ip,
		meta.UserAgent,
		nullString(meta.Country),
		nullString(meta.City),
		nullString(meta.Referer),
		nullInt(meta.ASN),
		nullString(meta.ASOrg),
		nullString(clientID),
	)
	if err != nil {
		return models.CounterSnapshot{}, fmt.Errorf("failed to insert visit: %w", err)
	}

	snap := models.CounterSnapshot{Key: key}
	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&snap.TotalForKey, `SELECT COUNT(*) FROM visits WHERE key = $1`, []any{key}},
		{&snap.TotalAll, `SELECT COUNT(*) FROM visits`, nil},
		{&snap.UniqueForKey, `SELECT COUNT(DISTINCT client_id) FROM visits WHERE key = $1 AND client_id IS NOT NULL`, []any{key}},
		{&snap.UniqueAll, `SELECT COUNT(DISTINCT client_id) FROM visits WHERE client_id IS NOT NULL`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return models.CounterSnapshot{}, fmt.Errorf("failed to count visits: %w", err)
		}
	}

	return snap, nil
}

// ListVisits returns the most recent visits first, optionally filtered by
// key. The admin token is checked before the store is touched.
func (s *Service) ListVisits(ctx context.Context, limit int, key, adminToken string) ([]models.VisitRecord, error) {
	if err := auth.CheckAdminToken(s.adminToken, adminToken); err != nil {
		return nil, err
	}
	limit = ClampLimit(limit)

	var (
		rows *sql.Rows
		err  error
	)
	if key != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT ts, key, ip, country, city, referer, user_agent, asn, as_org, client_id
			FROM visits
			WHERE key = $1
			ORDER BY id DESC
			LIMIT $2
		`, key, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT ts, key, ip, country, city, referer, user_agent, asn, as_org, client_id
			FROM visits
			ORDER BY id DESC
			LIMIT $1
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	records := []models.VisitRecord{}
	for rows.Next() {
		var (
			rec                                  models.VisitRecord
			country, city, referer, asOrg, cliID sql.NullString
			asn                                  sql.NullInt64
		)
		if err := rows.Scan(
			&rec.Timestamp,
			&rec.Key,
			&rec.IP,
			&country,
			&city,
			&referer,
			&rec.UserAgent,
			&asn,
			&asOrg,
			&cliID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		rec.Country = stringPtr(country)
		rec.City = stringPtr(city)
		rec.Referer = stringPtr(referer)
		rec.ASOrg = stringPtr(asOrg)
		rec.ClientID = stringPtr(cliID)
		if asn.Valid {
			rec.ASN = &asn.Int64
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visits: %w", err)
	}

	return records, nil
}

// ClampLimit bounds a listing size to [1, MaxListLimit]. Values below 1
// mean "not given" and fall back to DefaultListLimit.
func ClampLimit(limit int) int {
	if limit < 1 {
		return models.DefaultListLimit
	}
	if limit > models.MaxListLimit {
		return models.MaxListLimit
	}
	return limit
}

// ParseLimit parses a query parameter; anything unparsable yields the
// default.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return models.DefaultListLimit
	}
	return ClampLimit(n)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n != 0}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
