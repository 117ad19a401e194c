// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gearshare/internal/domain/entity"
)

// ErrPrincipalNotFound is returned when no principal row matches.
var ErrPrincipalNotFound = errors.New("principal not found")

// PrincipalRepository is the credential store for one namespace.
// Every method works inside the namespace it was built for; ids from the
// other namespace simply do not exist there.
type PrincipalRepository interface {
	// Create inserts a principal and fills in its generated ID and timestamps.
	Create(ctx context.Context, principal *entity.Principal) error

	// FindByID retrieves a principal by id.
	FindByID(ctx context.Context, id int64) (*entity.Principal, error)

	// FindByEmail retrieves a principal by its (normalized) email.
	FindByEmail(ctx context.Context, email string) (*entity.Principal, error)

	// Update writes the supplied columns of one principal in a single statement.
	Update(ctx context.Context, id int64, changes entity.PrincipalChanges) error

	// Delete removes the principal.
	Delete(ctx context.Context, id int64) error
}

// PrincipalRepositories resolves the credential store of a namespace.
type PrincipalRepositories interface {
	For(namespace entity.Namespace) (PrincipalRepository, error)
}
