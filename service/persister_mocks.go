package service

import (
	"context"
	"time"

	"mingle/models"

	"github.com/stretchr/testify/mock"
)

// MockPersister is a mock implementation of Persister
type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Load(ctx context.Context) (*models.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Snapshot), args.Error(1)
}

func (m *MockPersister) SaveBalances(ctx context.Context, balances map[string]int64) error {
	args := m.Called(ctx, balances)
	return args.Error(0)
}

func (m *MockPersister) SaveDailyCooldowns(ctx context.Context, cooldowns map[string]time.Time) error {
	args := m.Called(ctx, cooldowns)
	return args.Error(0)
}

func (m *MockPersister) SaveDivorceCooldowns(ctx context.Context, cooldowns map[string]time.Time) error {
	args := m.Called(ctx, cooldowns)
	return args.Error(0)
}

func (m *MockPersister) SaveInventory(ctx context.Context, inventory map[string][]models.Gift) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}

func (m *MockPersister) SaveShips(ctx context.Context, ships map[string]*models.Ship) error {
	args := m.Called(ctx, ships)
	return args.Error(0)
}

func (m *MockPersister) SaveMarriages(ctx context.Context, marriages map[string]*models.Marriage) error {
	args := m.Called(ctx, marriages)
	return args.Error(0)
}

func (m *MockPersister) SaveCalls(ctx context.Context, calls map[string]*models.Call) error {
	args := m.Called(ctx, calls)
	return args.Error(0)
}

func (m *MockPersister) SaveParticipants(ctx context.Context, participants map[string][]string) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}
