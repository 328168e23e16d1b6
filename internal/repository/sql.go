package repository

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/probox/probox-api/internal/model"
)

// SQLStore serves users and readings from a database/sql connection pool.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// NewSQLStore creates a new SQLStore. Queries are written with "?" placeholders
// and rebound for dialects that use numbered ones.
func NewSQLStore(db *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// scanReadings reads every column of every row into a Reading.
func scanReadings(rows *sql.Rows) ([]model.Reading, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	readings := []model.Reading{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		r := make(model.Reading, len(cols))
		for i, col := range cols {
			// Text columns arrive as []byte from some drivers and would be base64 encoded in JSON.
			if b, ok := values[i].([]byte); ok {
				r[col] = string(b)
				continue
			}
			r[col] = values[i]
		}
		readings = append(readings, r)
	}

	return readings, rows.Err()
}
