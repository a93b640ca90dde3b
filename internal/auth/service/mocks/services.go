// Package mocks provides mock authentication services for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
)

// MockTokenService is a mock implementation of TokenService for testing.
type MockTokenService struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenService.
func (m *MockTokenService) Issue(subject, name string) (*authDomain.IssuedToken, error) {
	args := m.Called(subject, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

// Validate mocks the Validate method of TokenService.
func (m *MockTokenService) Validate(token string) (*authDomain.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

// MockPasswordService is a mock implementation of PasswordService for testing.
type MockPasswordService struct {
	mock.Mock
}

// Hash mocks the Hash method of PasswordService.
func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Compare mocks the Compare method of PasswordService.
func (m *MockPasswordService) Compare(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}
