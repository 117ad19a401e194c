package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gearshare/internal/delivery/context"
	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/domain/service"
	"gearshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	principals repository.PrincipalRepositories
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Principals repository.PrincipalRepositories
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		principals: params.Principals,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (s *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *profileService) repoFor(identity entity.Identity) (repository.PrincipalRepository, error) {
	repo, err := s.principals.For(identity.Namespace)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage(err.Error())
	}

	return repo, nil
}

// GetProfile returns the caller's own record.
func (s *profileService) GetProfile(ctx context.Context, identity entity.Identity) (*entity.Principal, error) {
	repo, err := s.repoFor(identity)
	if err != nil {
		return nil, err
	}

	principal, err := repo.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, mapPrincipalError(err, "failed to get profile")
	}

	return principal, nil
}

// UpdateProfile writes the supplied fields in one statement. A new password is re-hashed.
func (s *profileService) UpdateProfile(ctx context.Context, identity entity.Identity, input *usecase.UpdateProfileInput) error {
	repo, err := s.repoFor(identity)
	if err != nil {
		return err
	}

	changes, err := s.buildChanges(input)
	if err != nil {
		return err
	}

	if err := repo.Update(ctx, identity.ID, changes); err != nil {
		return mapPrincipalError(err, "failed to update profile")
	}

	s.log(ctx).Info("Profile updated",
		slog.String("namespace", identity.Namespace.String()),
		slog.Int64("principalID", identity.ID),
		slog.Bool("passwordChanged", changes.PasswordHash != nil),
	)

	return nil
}

// DeleteProfile removes the caller's record. Issued tokens stay valid until they expire.
func (s *profileService) DeleteProfile(ctx context.Context, identity entity.Identity) error {
	repo, err := s.repoFor(identity)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, identity.ID); err != nil {
		return mapPrincipalError(err, "failed to delete profile")
	}

	s.log(ctx).Info("Profile deleted", slog.String("namespace", identity.Namespace.String()), slog.Int64("principalID", identity.ID))

	return nil
}

func (s *profileService) buildChanges(input *usecase.UpdateProfileInput) (entity.PrincipalChanges, error) {
	var changes entity.PrincipalChanges
	if input == nil {
		return changes, nil
	}

	changes.FirstName = nonEmpty(input.FirstName)
	changes.LastName = nonEmpty(input.LastName)

	if email := nonEmpty(input.Email); email != nil {
		normalized := normalizeEmail(*email)
		changes.Email = &normalized
	}

	if password := nonEmpty(input.Password); password != nil {
		hash, err := s.hasher.Hash(*password)
		if err != nil {
			return changes, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		changes.PasswordHash = &hash
	}

	return changes, nil
}

// nonEmpty treats an empty or blank value like an absent one.
func nonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}

	return value
}

func mapPrincipalError(err error, message string) error {
	if errors.Is(err, repository.ErrPrincipalNotFound) {
		return domainerrors.ErrPrincipalNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
