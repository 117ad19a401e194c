package repository

import (
	"context"
	"testing"

	"gearshare/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRentalRepository is a mock of repository.RentalRepository.
type MockRentalRepository struct {
	mock.Mock
}

// NewMockRentalRepository creates the mock and asserts its expectations on cleanup.
func NewMockRentalRepository(t *testing.T) *MockRentalRepository {
	m := &MockRentalRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	args := m.Called(ctx, rental)

	return args.Error(0)
}

func (m *MockRentalRepository) ListByRenter(ctx context.Context, renterID int64) ([]*entity.Rental, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Rental), args.Error(1)
}

func (m *MockRentalRepository) DeleteByItem(ctx context.Context, itemID, renterID int64) error {
	args := m.Called(ctx, itemID, renterID)

	return args.Error(0)
}
