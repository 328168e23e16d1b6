package service

import (
	"context"

	"github.com/probox/probox-api/internal/model"
	"github.com/probox/probox-api/internal/repository"
)

type fakeUsers struct {
	emails map[string]bool
	err    error
	calls  int
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if !f.emails[email] {
		return nil, repository.ErrUserNotFound
	}
	return &model.User{Email: email}, nil
}

type fakeReadings struct {
	latest  model.Reading
	history []model.Reading
	err     error
}

func (f *fakeReadings) Latest(context.Context) (model.Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.latest == nil {
		return nil, repository.ErrNoReadings
	}
	return f.latest, nil
}

func (f *fakeReadings) History(context.Context) ([]model.Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}
