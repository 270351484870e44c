// Package database provides the SQLite connection, schema migrations, the
// session/profile/consultation models and the Store used by the dialogue engine.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/Sanyamodi/arogya-sakhi-bot/migrations"

	_ "modernc.org/sqlite" //revive:disable:blank-imports
)

// pragmas are applied once after connecting. Failures are logged only.
var pragmas = []string{
	"PRAGMA busy_timeout = 5000;",
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
}

// NewDB opens the SQLite database at path and brings its schema up to date.
func NewDB(path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			slog.Warn("Failed to apply pragma", "pragma", pragma, "error", err)
		}
	}

	if err := ApplyMigrations(db.DB); err != nil {
		CloseDB(db)
		return nil, err
	}

	slog.Info("Database ready", "path", path)
	return db, nil
}

// CloseDB closes the database connection pool.
func CloseDB(db *sqlx.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Error closing database connection", "error", err)
		return
	}
	slog.Info("Database connection closed")
}

// ApplyMigrations runs the embedded migrations that db has not seen yet.
func ApplyMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("cannot migrate a nil database")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	target, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", target)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	from, _, _ := m.Version()
	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Debug("Database schema is up to date", "version", from)
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	to, _, _ := m.Version()
	slog.Info("Applied database migrations", "from_version", from, "to_version", to)
	return nil
}
