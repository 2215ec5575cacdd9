// Package storage defines the persistence contracts for the scrambler
// service. Stored records are operational audit events only; identifiers are
// never persisted here.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// AuditEvent captures one handled RPC for operational telemetry.
type AuditEvent struct {
	EventName string
	Severity  string
	Method    string
	GRPCCode  string
	TraceID   string
	SpanID    string
	Timestamp time.Time
}

// AuditEventStore persists operational audit events.
type AuditEventStore interface {
	AppendAuditEvent(ctx context.Context, evt AuditEvent) error
	ListRecentAuditEvents(ctx context.Context, limit int) ([]AuditEvent, error)
}
