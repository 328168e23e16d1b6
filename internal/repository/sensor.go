package repository

import (
	"context"
	"fmt"

	"github.com/probox/probox-api/internal/model"
)

// Latest retrieves the sensor row with the highest id.
func (s *SQLStore) Latest(ctx context.Context) (model.Reading, error) {
	readings, err := s.window(ctx, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}
	return readings[0], nil
}

// History retrieves the HistorySize rows preceding the newest one, newest first.
func (s *SQLStore) History(ctx context.Context) ([]model.Reading, error) {
	return s.window(ctx, historyOffset, HistorySize)
}

func (s *SQLStore) window(ctx context.Context, offset, limit int) ([]model.Reading, error) {
	query := fmt.Sprintf(`SELECT * FROM sensor ORDER BY id DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReadings(rows)
}
