// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gearshare/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register an owner or a renter.
type RegisterInput struct {
	Namespace entity.Namespace
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a principal to log in.
type LoginInput struct {
	Namespace entity.Namespace
	Email     string
	Password  string
}

// --- Output DTOs ---

// RegisterOutput returns the new principal and its first session token.
type RegisterOutput struct {
	Principal *entity.Principal
	Token     string
}

// LoginOutput returns the authenticated principal and a fresh session token.
type LoginOutput struct {
	Principal *entity.Principal
	Token     string
}

// AuthUsecase registers principals and exchanges credentials for session tokens.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
