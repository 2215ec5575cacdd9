// Package sqlite provides SQLite-backed persistence for scrambler audit
// events.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/veilnum/veilnum/internal/platform/storage/sqlitemigrate"
	"github.com/veilnum/veilnum/internal/services/scrambler/storage"
	"github.com/veilnum/veilnum/internal/services/scrambler/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store provides SQLite-backed persistence for scrambler audit events.
type Store struct {
	sqlDB *sql.DB
}

// DB returns the underlying sql.DB instance.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS, "")
}

// AppendAuditEvent persists an audit event.
func (s *Store) AppendAuditEvent(ctx context.Context, evt storage.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(evt.EventName) == "" {
		return fmt.Errorf("event name is required")
	}
	if strings.TrimSpace(evt.Severity) == "" {
		return fmt.Errorf("severity is required")
	}
	if strings.TrimSpace(evt.Method) == "" {
		return fmt.Errorf("method is required")
	}
	if strings.TrimSpace(evt.GRPCCode) == "" {
		return fmt.Errorf("grpc code is required")
	}
	if evt.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO scrambler_audit_events (
	event_name, severity, method, grpc_code, trace_id, span_id, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		strings.TrimSpace(evt.EventName),
		strings.TrimSpace(evt.Severity),
		strings.TrimSpace(evt.Method),
		strings.TrimSpace(evt.GRPCCode),
		strings.TrimSpace(evt.TraceID),
		strings.TrimSpace(evt.SpanID),
		toMillis(evt.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListRecentAuditEvents returns up to limit events, newest first.
func (s *Store) ListRecentAuditEvents(ctx context.Context, limit int) ([]storage.AuditEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT event_name, severity, method, grpc_code, trace_id, span_id, created_at
FROM scrambler_audit_events
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []storage.AuditEvent
	for rows.Next() {
		var evt storage.AuditEvent
		var createdAt int64
		if err := rows.Scan(&evt.EventName, &evt.Severity, &evt.Method, &evt.GRPCCode, &evt.TraceID, &evt.SpanID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		evt.Timestamp = fromMillis(createdAt)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
