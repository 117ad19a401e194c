package repository

import (
	"context"
	"testing"

	"gearshare/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock of repository.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

// NewMockItemRepository creates the mock and asserts its expectations on cleanup.
func NewMockItemRepository(t *testing.T) *MockItemRepository {
	m := &MockItemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockItemRepository) Create(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *MockItemRepository) List(ctx context.Context) ([]*entity.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id int64) ([]*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateOwned(ctx context.Context, id, ownerID int64, changes entity.ItemChanges) error {
	args := m.Called(ctx, id, ownerID, changes)

	return args.Error(0)
}

func (m *MockItemRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}
