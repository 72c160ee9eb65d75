package models

// DefaultKey is used when a hit carries no key.
const DefaultKey = "default"

// Listing limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// VisitMetadata is what the edge knows about the request being counted.
// Empty optional fields are stored as NULL.
type VisitMetadata struct {
	IP        string
	UserAgent string
	Referer   string
	Country   string
	City      string
	ASN       int64
	ASOrg     string
}

// Response types

type CounterSnapshot struct {
	Key          string `json:"key"`
	TotalForKey  int64  `json:"totalForKey"`
	TotalAll     int64  `json:"totalAll"`
	UniqueForKey int64  `json:"uniqueForKey"`
	UniqueAll    int64  `json:"uniqueAll"`
}

// Domain types

// VisitRecord is one immutable row of the visit log. The row id orders
// records but is never exposed.
type VisitRecord struct {
	Timestamp int64   `json:"ts"`
	Key       string  `json:"key"`
	IP        string  `json:"ip"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Referer   *string `json:"referer"`
	UserAgent string  `json:"user_agent"`
	ASN       *int64  `json:"asn"`
	ASOrg     *string `json:"as_org"`
	ClientID  *string `json:"client_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
