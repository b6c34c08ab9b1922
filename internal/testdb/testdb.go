package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/phrazzld/holocron-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds setup operations against the test database.
const TestTimeout = 10 * time.Second

// GetTestDatabaseURL returns HOLOCRON_TEST_DB_URL, falling back to DATABASE_URL.
func GetTestDatabaseURL() string {
	if u := os.Getenv("HOLOCRON_TEST_DB_URL"); u != "" {
		return u
	}
	return os.Getenv("DATABASE_URL")
}

// Open connects to the test database, migrates it to the latest version and
// closes it when the test ends. The test is skipped when no URL is configured.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("no test database configured (set HOLOCRON_TEST_DB_URL)")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, db.PingContext(ctx), "failed to ping test database")
	require.NoError(t, postgres.Migrate(ctx, db, "up", Logger()), "failed to migrate test database")
	return db
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// Truncate empties the given tables now and again when the test ends. Tests
// that must commit, such as concurrency tests, use it instead of WithTx.
func Truncate(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()

	truncate := func() error {
		for _, table := range tables {
			if _, err := db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE"); err != nil {
				return err
			}
		}
		return nil
	}
	require.NoError(t, truncate(), "failed to truncate tables")
	t.Cleanup(func() {
		if err := truncate(); err != nil {
			t.Logf("failed to truncate tables after test: %v", err)
		}
	})
}

// Logger returns a logger that discards output, for constructing stores.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
