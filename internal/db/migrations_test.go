package db_test

import (
	"path/filepath"
	"testing"

	"github.com/denizcan/drip-cli/internal/db"
)

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "drip.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	for i := 0; i < 2; i++ {
		if err := db.ApplyMigrations(sqldb); err != nil {
			t.Fatalf("apply migrations (pass %d): %v", i+1, err)
		}
	}

	var count int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 recorded migrations, got %d", count)
	}
}

func TestMigrationsCreateCoreTables(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "drip.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	for _, table := range []string{"days", "portions", "goal_overrides", "app_config", "profile", "analysis_cache"} {
		var name string
		err := sqldb.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestPortionsCascadeOnDayDelete(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "drip.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := sqldb.Exec(`INSERT INTO days(day, goal_ml) VALUES('2026-03-01', 2500)`); err != nil {
		t.Fatalf("insert day: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO portions(day, amount_ml, drink, logged_at) VALUES('2026-03-01', 250, 'water', '2026-03-01T09:00:00Z')`); err != nil {
		t.Fatalf("insert portion: %v", err)
	}
	if _, err := sqldb.Exec(`DELETE FROM days WHERE day = '2026-03-01'`); err != nil {
		t.Fatalf("delete day: %v", err)
	}
	var count int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM portions`).Scan(&count); err != nil {
		t.Fatalf("count portions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected portions to cascade, got %d rows", count)
	}
}
