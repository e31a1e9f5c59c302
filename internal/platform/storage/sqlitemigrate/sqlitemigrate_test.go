package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db := openInMemoryDB(t)
	fsys := fstest.MapFS{
		"migrations/001_init.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE widgets (id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE widgets;\n")},
		"migrations/002_more.sql": {Data: []byte("CREATE TABLE gadgets (id TEXT PRIMARY KEY);")},
		"migrations/README.md":    {Data: []byte("ignored")},
		"migrations/nested/x.sql": {Data: []byte("CREATE TABLE nested (id TEXT);")},
	}

	applied, err := ApplyMigrations(context.Background(), db, fsys, "migrations")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 2 || applied[0] != "migrations/001_init.sql" || applied[1] != "migrations/002_more.sql" {
		t.Fatalf("applied = %v, want both top-level migrations in order", applied)
	}
	if got := queryInt64(t, db, `SELECT COUNT(*) FROM schema_migrations`); got != 2 {
		t.Fatalf("schema_migrations rows = %d, want 2", got)
	}
	for _, table := range []string{"widgets", "gadgets"} {
		if !tableExists(t, db, table) {
			t.Fatalf("expected table %s", table)
		}
	}
	if tableExists(t, db, "nested") {
		t.Fatal("nested directory should not be applied")
	}
}

func TestApplyMigrationsSkipsAlreadyApplied(t *testing.T) {
	db := openInMemoryDB(t)
	fsys := fstest.MapFS{
		"m/001_counter.sql": {Data: []byte("CREATE TABLE counter (n INTEGER); INSERT INTO counter (n) VALUES (1);")},
	}
	ctx := context.Background()
	if _, err := ApplyMigrations(ctx, db, fsys, "m"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	applied, err := ApplyMigrations(ctx, db, fsys, "m")
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("applied = %v, want none on rerun", applied)
	}
	if got := queryInt64(t, db, `SELECT COUNT(*) FROM counter`); got != 1 {
		t.Fatalf("counter rows = %d, want 1", got)
	}
}

func TestApplyMigrationsDoesNotRecordFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)
	fsys := fstest.MapFS{
		"m/001_bad.sql": {Data: []byte("CREATE TABLE broken (;")},
	}
	if _, err := ApplyMigrations(context.Background(), db, fsys, "m"); err == nil {
		t.Fatal("expected error for invalid sql")
	}
	if got := queryInt64(t, db, `SELECT COUNT(*) FROM schema_migrations`); got != 0 {
		t.Fatalf("schema_migrations rows = %d, want 0", got)
	}
}

func TestApplyMigrationsHonorsCanceledContext(t *testing.T) {
	db := openInMemoryDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fsys := fstest.MapFS{"m/001.sql": {Data: []byte("CREATE TABLE t (id TEXT);")}}
	if _, err := ApplyMigrations(ctx, db, fsys, "m"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	if _, err := ApplyMigrations(context.Background(), nil, fstest.MapFS{}, "."); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- header\n-- +migrate Up\nCREATE TABLE a (id TEXT);\n-- +migrate Down\nDROP TABLE a;\n"
	if got := ExtractUpMigration(content); got != "\nCREATE TABLE a (id TEXT);\n" {
		t.Fatalf("ExtractUpMigration = %q", got)
	}
	plain := "CREATE TABLE b (id TEXT);"
	if got := ExtractUpMigration(plain); got != plain {
		t.Fatalf("ExtractUpMigration(plain) = %q, want %q", got, plain)
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("table exists %q: %v", name, err)
	}
	return true
}
