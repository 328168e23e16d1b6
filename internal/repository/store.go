package repository

import (
	"context"
	"errors"

	"github.com/probox/probox-api/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoReadings   = errors.New("no sensor readings")
)

// HistorySize is the number of readings returned by History.
const HistorySize = 24

// historyOffset skips the newest reading, which Latest already serves.
const historyOffset = 1

// UserStore looks up users by email.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// ReadingStore reads sensor rows ordered by descending id.
type ReadingStore interface {
	Latest(ctx context.Context) (model.Reading, error)
	History(ctx context.Context) ([]model.Reading, error)
}

// Store is a backend serving both users and readings.
type Store interface {
	UserStore
	ReadingStore
	Close() error
}
