package usecase

import (
	"context"

	"gearshare/internal/domain/entity"
)

// UpdateProfileInput carries a partial profile update. Nil or empty fields keep the stored value.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// ProfileUsecase manages the caller's own profile. Every operation is scoped to the identity.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, identity entity.Identity) (*entity.Principal, error)
	UpdateProfile(ctx context.Context, identity entity.Identity, input *UpdateProfileInput) error
	DeleteProfile(ctx context.Context, identity entity.Identity) error
}
