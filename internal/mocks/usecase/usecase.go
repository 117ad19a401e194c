// Package usecase provides testify mocks of the application usecases.
package usecase

import (
	"context"
	"testing"

	"gearshare/internal/domain/entity"
	"gearshare/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newMock[T interface {
	Test(mock.TestingT)
	AssertExpectations(mock.TestingT) bool
}](t *testing.T, m T) T {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	return newMock(t, &MockAuthUsecase{})
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

// MockProfileUsecase is a mock of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func NewMockProfileUsecase(t *testing.T) *MockProfileUsecase {
	return newMock(t, &MockProfileUsecase{})
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, identity entity.Identity) (*entity.Principal, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, identity entity.Identity, input *usecase.UpdateProfileInput) error {
	args := m.Called(ctx, identity, input)

	return args.Error(0)
}

func (m *MockProfileUsecase) DeleteProfile(ctx context.Context, identity entity.Identity) error {
	args := m.Called(ctx, identity)

	return args.Error(0)
}

// MockItemUsecase is a mock of usecase.ItemUsecase.
type MockItemUsecase struct {
	mock.Mock
}

func NewMockItemUsecase(t *testing.T) *MockItemUsecase {
	return newMock(t, &MockItemUsecase{})
}

func (m *MockItemUsecase) CreateItem(ctx context.Context, identity entity.Identity, input *usecase.CreateItemInput) (*entity.Item, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) ListItems(ctx context.Context) ([]*entity.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) GetItem(ctx context.Context, itemID int64) ([]*entity.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) ListOwnerItems(ctx context.Context, identity entity.Identity, ownerID int64) ([]*entity.Item, error) {
	args := m.Called(ctx, identity, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) UpdateItem(ctx context.Context, identity entity.Identity, itemID int64, changes entity.ItemChanges) (*entity.Item, error) {
	args := m.Called(ctx, identity, itemID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) DeleteItem(ctx context.Context, identity entity.Identity, itemID int64) error {
	args := m.Called(ctx, identity, itemID)

	return args.Error(0)
}

// MockRentalUsecase is a mock of usecase.RentalUsecase.
type MockRentalUsecase struct {
	mock.Mock
}

func NewMockRentalUsecase(t *testing.T) *MockRentalUsecase {
	return newMock(t, &MockRentalUsecase{})
}

func (m *MockRentalUsecase) RentItem(ctx context.Context, identity entity.Identity, itemID int64, input *usecase.RentItemInput) (*entity.Rental, error) {
	args := m.Called(ctx, identity, itemID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Rental), args.Error(1)
}

func (m *MockRentalUsecase) ListRentals(ctx context.Context, identity entity.Identity) ([]*entity.Rental, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Rental), args.Error(1)
}

func (m *MockRentalUsecase) ListRenterRentals(ctx context.Context, identity entity.Identity, renterID int64) ([]*entity.Rental, error) {
	args := m.Called(ctx, identity, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Rental), args.Error(1)
}

func (m *MockRentalUsecase) ReturnItem(ctx context.Context, identity entity.Identity, itemID int64) error {
	args := m.Called(ctx, identity, itemID)

	return args.Error(0)
}
