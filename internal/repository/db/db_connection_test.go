package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aura.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	for _, name := range []string{"settings", "display_events", "idx_display_events_type"} {
		var got string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE name = ?`, name).Scan(&got)
		if err != nil {
			t.Fatalf("%s missing: %v", name, err)
		}
	}

	// Reopening an existing file keeps the schema idempotent.
	again, err := InitDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = again.Close()
}

func TestInitDB_BadPath(t *testing.T) {
	if _, err := InitDB(filepath.Join(t.TempDir(), "missing", "dir", "aura.db")); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
