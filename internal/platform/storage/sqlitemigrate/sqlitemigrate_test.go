package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func migrationFS(name, body string) fstest.MapFS {
	return fstest.MapFS{
		name: &fstest.MapFile{Data: []byte("-- +migrate Up\n" + body)},
	}
}

func countMigrations(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	return count
}

func tableExists(t *testing.T, db *sql.DB, tableName string) bool {
	t.Helper()
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", tableName).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("check table exists: %v", err)
	}
	return true
}

func TestApplyMigrationsCreatesAndRecords(t *testing.T) {
	db := openInMemoryDB(t)

	fsys := migrationFS("0001_audit.sql", "CREATE TABLE audit_rows(id TEXT PRIMARY KEY);")
	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if got := countMigrations(t, db); got != 1 {
		t.Fatalf("expected 1 migration row, got %d", got)
	}
	if !tableExists(t, db, "audit_rows") {
		t.Fatal("expected migrated table to exist")
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := openInMemoryDB(t)

	fsys := migrationFS("0001_audit.sql", "CREATE TABLE audit_rows(id TEXT PRIMARY KEY);")
	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("replay should be idempotent: %v", err)
	}

	if got := countMigrations(t, db); got != 1 {
		t.Fatalf("expected single migration row after replay, got %d", got)
	}
}

func TestApplyMigrationsLeavesFailedMigrationUnrecorded(t *testing.T) {
	db := openInMemoryDB(t)

	bad := migrationFS("0001_bad.sql", "CREAT table broken(id INT);")
	if err := ApplyMigrations(db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := countMigrations(t, db); got != 0 {
		t.Fatalf("expected failed migration to stay unrecorded, got %d rows", got)
	}

	fixed := migrationFS("0001_bad.sql", "CREATE TABLE broken(id INTEGER PRIMARY KEY);")
	if err := ApplyMigrations(db, fixed, ""); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if got := countMigrations(t, db); got != 1 {
		t.Fatalf("expected fixed migration to be recorded, got %d rows", got)
	}
}

func TestApplyMigrationsKeysByRootPath(t *testing.T) {
	db := openInMemoryDB(t)

	fsys := fstest.MapFS{
		"audit/0001_events.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE event_rows(id TEXT PRIMARY KEY);"),
		},
	}
	if err := ApplyMigrations(db, fsys, "audit"); err != nil {
		t.Fatalf("apply migrations with root: %v", err)
	}

	var key string
	if err := db.QueryRow("SELECT name FROM schema_migrations LIMIT 1").Scan(&key); err != nil {
		t.Fatalf("read migration key: %v", err)
	}
	if key != "audit/0001_events.sql" {
		t.Fatalf("expected migration key with root path, got %q", key)
	}
	if !tableExists(t, db, "event_rows") {
		t.Fatal("expected migrated table in root-based migration")
	}
}

func TestExtractUpMigrationStopsAtDownSection(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;"
	up := ExtractUpMigration(content)
	if up != "\nCREATE TABLE a(id INT);\n" {
		t.Fatalf("unexpected up section: %q", up)
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	if !IsAlreadyExistsError(errTable{"table audit_rows already exists"}) {
		t.Fatal("expected already-exists detection")
	}
	if IsAlreadyExistsError(errTable{"syntax error"}) {
		t.Fatal("expected non-match for unrelated error")
	}
}

type errTable struct{ msg string }

func (e errTable) Error() string { return e.msg }
