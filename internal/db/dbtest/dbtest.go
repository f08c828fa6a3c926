// Package dbtest opens migrated SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"fitclass/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Open returns a migrated database stored in the test's temp dir. It is
// closed when the test ends.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Connect(filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database))
	return database
}

// Seed inserts instructors Alice (1) and Bob (2) and locations Downtown (1)
// and Uptown (2).
func Seed(t *testing.T, database *sqlx.DB) {
	t.Helper()

	stmts := []string{
		`INSERT INTO instructors (id, name, email, specialty) VALUES (1, 'Alice Johnson', 'alice@example.com', 'Yoga')`,
		`INSERT INTO instructors (id, name, email, specialty) VALUES (2, 'Bob Smith', 'bob@example.com', 'HIIT')`,
		`INSERT INTO locations (id, gym_name, address, capacity) VALUES (1, 'Downtown Gym', '123 Main St', 50)`,
		`INSERT INTO locations (id, gym_name, address, capacity) VALUES (2, 'Uptown Studio', '456 Elm St', 30)`,
	}
	for _, stmt := range stmts {
		_, err := database.Exec(stmt)
		require.NoError(t, err)
	}
}
