package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

var ErrNilDB = errors.New("db is nil")

// MigratePostgres applies the remote vault document schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, dialectPostgres, "postgres")
}

// MigrateSQLite applies the local key-value schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, dialectSQLite, "sqlite")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
