package service

import (
	"context"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Snapshot() *domain.State {
	args := m.Called()
	return args.Get(0).(*domain.State)
}

func (m *MockStateStore) Mutate(fn func(state *domain.State) error) error {
	args := m.Called(fn)
	return args.Error(0)
}

func (m *MockStateStore) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}
