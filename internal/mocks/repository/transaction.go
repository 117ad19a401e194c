package repository

import (
	"context"
	"testing"

	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
// Execute records the call and then runs fn with the configured factory,
// so the callback's repository calls are still checked.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates the mock and asserts its expectations on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute returns the configured error if set, otherwise the callback's error.
// Configure with On("Execute", ctx, mock.Anything).Return(factory, nil).
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(1); err != nil {
		return err
	}

	factory, _ := args.Get(0).(repository.RepositoryFactory)

	return fn(factory)
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates the mock and asserts its expectations on cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) For(namespace entity.Namespace) (repository.PrincipalRepository, error) {
	args := m.Called(namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(repository.PrincipalRepository), args.Error(1)
}
