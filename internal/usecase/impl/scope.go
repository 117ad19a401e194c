// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
)

// requireNamespace rejects identities from the other namespace. Owner and
// renter ids are never interchangeable, so a mismatch is always forbidden.
func requireNamespace(identity entity.Identity, namespace entity.Namespace) error {
	if identity.Namespace != namespace {
		return domainerrors.ErrForbidden.WrapMessage("operation requires a " + namespace.String() + " session")
	}

	return nil
}

// requireSelf rejects requests addressing another principal's resources.
func requireSelf(identity entity.Identity, namespace entity.Namespace, id int64) error {
	if !identity.Is(namespace, id) {
		return domainerrors.ErrForbidden.WrapMessage("principal may only access its own resources")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
