// Package repository provides testify mocks of the domain repositories.
package repository

import (
	"context"
	"testing"

	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockPrincipalRepository is a mock of repository.PrincipalRepository.
type MockPrincipalRepository struct {
	mock.Mock
}

// NewMockPrincipalRepository creates the mock and asserts its expectations on cleanup.
func NewMockPrincipalRepository(t *testing.T) *MockPrincipalRepository {
	m := &MockPrincipalRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPrincipalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	args := m.Called(ctx, principal)

	return args.Error(0)
}

func (m *MockPrincipalRepository) FindByID(ctx context.Context, id int64) (*entity.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}

func (m *MockPrincipalRepository) FindByEmail(ctx context.Context, email string) (*entity.Principal, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}

func (m *MockPrincipalRepository) Update(ctx context.Context, id int64, changes entity.PrincipalChanges) error {
	args := m.Called(ctx, id, changes)

	return args.Error(0)
}

func (m *MockPrincipalRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockPrincipalRepositories is a mock of repository.PrincipalRepositories.
type MockPrincipalRepositories struct {
	mock.Mock
}

// NewMockPrincipalRepositories creates the mock and asserts its expectations on cleanup.
func NewMockPrincipalRepositories(t *testing.T) *MockPrincipalRepositories {
	m := &MockPrincipalRepositories{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPrincipalRepositories) For(namespace entity.Namespace) (repository.PrincipalRepository, error) {
	args := m.Called(namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(repository.PrincipalRepository), args.Error(1)
}
