package shared

import (
	"testing"
)

func TestRunMigrations(t *testing.T) {
	t.Run("applies migrations to a fresh database", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM artists").Scan(&count); err != nil {
			t.Errorf("artists table missing: %v", err)
		}

		var seq int
		if err := db.QueryRow("SELECT value FROM artists_sequence WHERE id = 1").Scan(&seq); err != nil {
			t.Errorf("sequence table missing: %v", err)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}
	})
}

func TestRollbackMigration(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	t.Run("errors with nothing applied", func(t *testing.T) {
		if err := createMigrationsTable(db); err != nil {
			t.Fatalf("failed to create migrations table: %v", err)
		}
		if err := RollbackMigration(db); err == nil {
			t.Error("expected error with no applied migrations")
		}
	})

	t.Run("removes the artists table", func(t *testing.T) {
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM artists").Scan(&count); err == nil {
			t.Error("expected artists table to be dropped")
		}
	})
}
