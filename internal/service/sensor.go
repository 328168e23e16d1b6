package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/probox/probox-api/internal/model"
	"github.com/probox/probox-api/internal/repository"
	"github.com/probox/probox-api/internal/timefmt"
)

var ErrNoData = errors.New("no data found")

// SensorService serves sensor readings with display timestamps.
type SensorService struct {
	readings repository.ReadingStore
}

// NewSensorService creates a new SensorService.
func NewSensorService(readings repository.ReadingStore) *SensorService {
	return &SensorService{readings: readings}
}

// Latest returns the most recently inserted reading.
func (s *SensorService) Latest(ctx context.Context) (model.Reading, error) {
	r, err := s.readings.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoReadings) {
			return nil, ErrNoData
		}
		return nil, err
	}

	if err := formatTimestamp(r); err != nil {
		return nil, err
	}
	return r, nil
}

// History returns the 24 readings that precede the latest one, newest first.
func (s *SensorService) History(ctx context.Context) ([]model.Reading, error) {
	readings, err := s.readings.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoData
	}

	for _, r := range readings {
		if err := formatTimestamp(r); err != nil {
			return nil, err
		}
	}
	return readings, nil
}

// formatTimestamp rewrites the timestamp column in place. Rows without one are left as-is.
func formatTimestamp(r model.Reading) error {
	raw, ok := r.Timestamp()
	if !ok {
		return nil
	}

	formatted, err := timefmt.Format(raw)
	if err != nil {
		id, _ := r.ID()
		return fmt.Errorf("reading %d: %w", id, err)
	}
	r.SetTimestamp(formatted)
	return nil
}
