// Package store implements the domain repositories on GORM. The same code
// runs on PostgreSQL and SQLite.
package store

import (
	"context"
	"time"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// principalRepository serves one namespace; table is owners or renters.
type principalRepository struct {
	db        *gorm.DB
	namespace entity.Namespace
	table     string
}

// principalRepositories resolves a namespace to its table-bound repository.
type principalRepositories struct {
	db *gorm.DB
}

// NewPrincipalRepositories returns the namespace resolver over db.
func NewPrincipalRepositories(db *gorm.DB) repository.PrincipalRepositories {
	return &principalRepositories{db: db}
}

// For returns the credential store of the namespace.
func (r *principalRepositories) For(namespace entity.Namespace) (repository.PrincipalRepository, error) {
	return newPrincipalRepository(r.db, namespace)
}

func newPrincipalRepository(db *gorm.DB, namespace entity.Namespace) (*principalRepository, error) {
	table, err := principalTable(namespace)
	if err != nil {
		return nil, err
	}

	return &principalRepository{db: db, namespace: namespace, table: table}, nil
}

func principalTable(namespace entity.Namespace) (string, error) {
	switch namespace {
	case entity.NamespaceOwner:
		return model.OwnersTable, nil
	case entity.NamespaceRenter:
		return model.RentersTable, nil
	default:
		return "", errors.Errorf("unknown namespace %q", namespace)
	}
}

func (repo *principalRepository) query(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.table)
}

// Create inserts the principal and copies back the generated id and timestamps.
func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	principalM := fromPrincipalDomain(principal)

	if err := repo.query(ctx).Create(principalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required principal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+repo.namespace.String())
	}

	principal.ID = principalM.ID
	principal.Namespace = repo.namespace
	principal.CreatedAt = principalM.CreatedAt
	principal.UpdatedAt = principalM.UpdatedAt

	return nil
}

// FindByID retrieves a single principal by id.
func (repo *principalRepository) FindByID(ctx context.Context, id int64) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	if err := repo.query(ctx).Where("id = ?", id).Take(&principalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.namespace.String()+" by id")
	}

	return toPrincipalDomain(&principalM, repo.namespace), nil
}

// FindByEmail retrieves a single principal by its normalized email.
func (repo *principalRepository) FindByEmail(ctx context.Context, email string) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	if err := repo.query(ctx).Where("email = ?", email).Take(&principalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.namespace.String()+" by email")
	}

	return toPrincipalDomain(&principalM, repo.namespace), nil
}

// Update writes only the supplied columns in one UPDATE statement.
func (repo *principalRepository) Update(ctx context.Context, id int64, changes entity.PrincipalChanges) error {
	if changes.IsEmpty() {
		_, err := repo.FindByID(ctx, id)

		return err
	}

	result := repo.query(ctx).Where("id = ?", id).Updates(principalColumns(changes))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+repo.namespace.String())
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrincipalNotFound
	}

	return nil
}

// Delete removes the principal row.
func (repo *principalRepository) Delete(ctx context.Context, id int64) error {
	result := repo.query(ctx).Where("id = ?", id).Delete(&model.PrincipalModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.namespace.String())
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrincipalNotFound
	}

	return nil
}

func principalColumns(changes entity.PrincipalChanges) map[string]any {
	columns := map[string]any{"updated_at": time.Now()}
	if changes.FirstName != nil {
		columns["first_name"] = *changes.FirstName
	}
	if changes.LastName != nil {
		columns["last_name"] = *changes.LastName
	}
	if changes.Email != nil {
		columns["email"] = *changes.Email
	}
	if changes.PasswordHash != nil {
		columns["password"] = *changes.PasswordHash
	}

	return columns
}

func fromPrincipalDomain(principal *entity.Principal) *model.PrincipalModel {
	return &model.PrincipalModel{
		ID:        principal.ID,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		Email:     principal.Email,
		Password:  principal.PasswordHash,
		CreatedAt: principal.CreatedAt,
		UpdatedAt: principal.UpdatedAt,
	}
}

func toPrincipalDomain(principalM *model.PrincipalModel, namespace entity.Namespace) *entity.Principal {
	return &entity.Principal{
		ID:           principalM.ID,
		Namespace:    namespace,
		FirstName:    principalM.FirstName,
		LastName:     principalM.LastName,
		Email:        principalM.Email,
		PasswordHash: principalM.Password,
		CreatedAt:    principalM.CreatedAt,
		UpdatedAt:    principalM.UpdatedAt,
	}
}
