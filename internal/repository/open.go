package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DriverSupabase selects the Supabase REST backend.
const DriverSupabase = "supabase"

// Options selects and configures a Store backend.
type Options struct {
	Driver      string
	DSN         string
	SupabaseURL string
	SupabaseKey string
	Timeout     time.Duration
	AutoMigrate bool
}

// Open builds the Store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverSupabase:
		if opts.SupabaseURL == "" || opts.SupabaseKey == "" {
			return nil, errors.New("supabase url and key are required")
		}
		return NewSupabaseStore(opts.SupabaseURL, opts.SupabaseKey, opts.Timeout), nil

	case DialectPostgres, DialectMySQL, DialectSQLite:
		if opts.DSN == "" {
			return nil, fmt.Errorf("dsn is required for %s", opts.Driver)
		}
		db, err := NewDB(opts.Driver, opts.DSN)
		if err != nil {
			return nil, err
		}
		if opts.AutoMigrate {
			if err := Migrate(ctx, db, opts.Driver); err != nil {
				db.Close()
				return nil, err
			}
		}
		return NewSQLStore(db, opts.Driver), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", opts.Driver)
	}
}
