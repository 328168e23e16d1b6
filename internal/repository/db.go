package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

// driverName maps a dialect to its registered database/sql driver.
func driverName(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "pgx", nil
	case DialectMySQL:
		return "mysql", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", dialect)
	}
}

// NewDB creates a connection pool for the given dialect and DSN.
func NewDB(dialect, dsn string) (*sql.DB, error) {
	driver, err := driverName(dialect)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if dialect == DialectSQLite {
		// A single connection keeps ":memory:" databases shared and serializes writers.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed, queries will fail until it is reachable", "dialect", dialect, "error", err)
	}

	return db, nil
}
