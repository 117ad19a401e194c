package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gearshare/config"
	deliverycontext "gearshare/internal/delivery/context"
	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/domain/service"
	"gearshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRegistrationTokenTTL = time.Hour
	defaultLoginTokenTTL        = 24 * time.Hour

	// timingPassword is hashed once and checked for unknown emails, so both
	// login failures cost one bcrypt comparison.
	timingPassword = "gearshare-unknown-principal"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager       repository.TransactionManager
	principals      repository.PrincipalRepositories
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	registrationTTL time.Duration
	loginTTL        time.Duration
	logger          *slog.Logger

	timingHashOnce sync.Once
	timingHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Principals   repository.PrincipalRepositories
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	registrationTTL := defaultRegistrationTokenTTL
	loginTTL := defaultLoginTokenTTL
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.RegistrationTokenTTL > 0 {
			registrationTTL = params.Config.Auth.RegistrationTokenTTL
		}
		if params.Config.Auth.LoginTokenTTL > 0 {
			loginTTL = params.Config.Auth.LoginTokenTTL
		}
	}

	return &authService{
		txManager:       params.TxManager,
		principals:      params.Principals,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		registrationTTL: registrationTTL,
		loginTTL:        loginTTL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores a new principal in its namespace and issues a short-lived token.
// The duplicate check and the insert share one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Namespace.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown namespace")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("namespace", input.Namespace.String()), slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	principal := &entity.Principal{
		Namespace:    input.Namespace,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principalRepo, err := repoFactory.For(input.Namespace)
		if err != nil {
			return err
		}

		_, err = principalRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered in namespace")
		}
		if !errors.Is(err, repository.ErrPrincipalNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		return principalRepo.Create(ctx, principal)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("namespace", input.Namespace.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.Issue(principal.ID, principal.Namespace, srv.registrationTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("principalID", principal.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Registration completed", slog.String("namespace", principal.Namespace.String()), slog.Int64("principalID", principal.ID))

	return &usecase.RegisterOutput{Principal: principal, Token: token}, nil
}

// Login verifies the credentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	principalRepo, err := srv.principals.For(input.Namespace)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	principal, err := principalRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrPrincipalNotFound) {
		srv.hasher.Check(input.Password, srv.unknownPrincipalHash(ctx))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find principal by email")
	}

	if !srv.hasher.Check(input.Password, principal.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("namespace", input.Namespace.String()), slog.Int64("principalID", principal.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(principal.ID, principal.Namespace, srv.loginTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("principalID", principal.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("namespace", principal.Namespace.String()), slog.Int64("principalID", principal.ID))

	return &usecase.LoginOutput{Principal: principal, Token: token}, nil
}

func (srv *authService) unknownPrincipalHash(ctx context.Context) string {
	srv.timingHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		srv.timingHash = hash
	})

	return srv.timingHash
}
