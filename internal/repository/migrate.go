package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// gooseDialect maps a dialect to the name goose expects.
func gooseDialect(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectMySQL:
		return "mysql", nil
	case DialectSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", dialect)
	}
}

// Migrate creates the users and sensor tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	name, err := gooseDialect(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(name); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
