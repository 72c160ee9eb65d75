// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrAdminDisabled     = errors.New("admin access disabled")
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// CheckAdminToken compares the provided token with the configured secret.
// An empty secret disables admin access entirely.
func CheckAdminToken(configured, provided string) error {
	if configured == "" {
		return ErrAdminDisabled
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminToken
	}
	return nil
}

// NewClientID creates a random identifier for approximating unique
// visitors.
func NewClientID() string {
	return uuid.NewString()
}

// MaxClientIDLength bounds stored client ids; longer values are dropped.
const MaxClientIDLength = 128

// NormalizeClientID canonicalises a client-supplied id. UUIDs in any
// accepted spelling (upper case, braces, urn:uuid:) become the lower-case
// hyphenated form, so one browser counts once. Other ids are kept trimmed.
// An empty or oversized id yields "", which records the visit as
// anonymous.
func NormalizeClientID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > MaxClientIDLength {
		return ""
	}
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}
