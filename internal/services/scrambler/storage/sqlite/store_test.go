package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/veilnum/veilnum/internal/services/scrambler/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestAppendAndListAuditEvents(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := storage.AuditEvent{
		EventName: "grpc.call",
		Severity:  "INFO",
		Method:    "/scrambler.v1.ScramblerService/MapIndex",
		GRPCCode:  "OK",
		TraceID:   "0123456789abcdef0123456789abcdef",
		SpanID:    "0123456789abcdef",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	second := storage.AuditEvent{
		EventName: "grpc.call",
		Severity:  "ERROR",
		Method:    "/scrambler.v1.ScramblerService/MapIndex",
		GRPCCode:  "OutOfRange",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
	}

	if err := store.AppendAuditEvent(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.AppendAuditEvent(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := store.ListRecentAuditEvents(ctx, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].GRPCCode != "OutOfRange" {
		t.Fatalf("expected newest event first, got code %q", events[0].GRPCCode)
	}
	if !events[1].Timestamp.Equal(first.Timestamp) {
		t.Fatalf("expected timestamp %v, got %v", first.Timestamp, events[1].Timestamp)
	}
	if events[0].TraceID != "" {
		t.Fatalf("expected empty trace id, got %q", events[0].TraceID)
	}
	if events[1].SpanID != first.SpanID {
		t.Fatalf("expected span id %q, got %q", first.SpanID, events[1].SpanID)
	}
}

func TestAppendAuditEventValidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := storage.AuditEvent{
		EventName: "grpc.call",
		Severity:  "INFO",
		Method:    "/scrambler.v1.ScramblerService/GetTableInfo",
		GRPCCode:  "OK",
		Timestamp: time.Now(),
	}

	cases := []struct {
		name   string
		mutate func(*storage.AuditEvent)
	}{
		{"missing event name", func(evt *storage.AuditEvent) { evt.EventName = " " }},
		{"missing severity", func(evt *storage.AuditEvent) { evt.Severity = "" }},
		{"missing method", func(evt *storage.AuditEvent) { evt.Method = "" }},
		{"missing grpc code", func(evt *storage.AuditEvent) { evt.GRPCCode = "" }},
		{"missing timestamp", func(evt *storage.AuditEvent) { evt.Timestamp = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			evt := base
			tc.mutate(&evt)
			if err := store.AppendAuditEvent(ctx, evt); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestListRecentAuditEventsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		evt := storage.AuditEvent{
			EventName: "grpc.call",
			Severity:  "INFO",
			Method:    "/scrambler.v1.ScramblerService/MapIndex",
			GRPCCode:  "OK",
			Timestamp: time.Now(),
		}
		if err := store.AppendAuditEvent(ctx, evt); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := store.ListRecentAuditEvents(ctx, 3)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if err := reopened.Close(); err != nil {
		t.Fatalf("close reopened: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
