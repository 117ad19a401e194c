// Package service provides testify mocks of the domain services.
package service

import (
	"testing"
	"time"

	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates the mock and asserts its expectations on cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and asserts its expectations on cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(principalID int64, namespace entity.Namespace, ttl time.Duration) (string, error) {
	args := m.Called(principalID, namespace, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

// MockAccessPolicy is a mock of service.AccessPolicy.
type MockAccessPolicy struct {
	mock.Mock
}

// NewMockAccessPolicy creates the mock and asserts its expectations on cleanup.
func NewMockAccessPolicy(t *testing.T) *MockAccessPolicy {
	m := &MockAccessPolicy{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccessPolicy) Allowed(namespace entity.Namespace, resource, action string) (bool, error) {
	args := m.Called(namespace, resource, action)

	return args.Bool(0), args.Error(1)
}
