package repository

import (
	"context"
	"errors"

	"gearshare/internal/domain/entity"
)

// ErrItemNotFound is returned when no item row matches the predicate.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository persists items. Mutations take the owner id and match on it,
// so a row owned by someone else behaves exactly like a missing row.
type ItemRepository interface {
	// Create inserts an item and fills in its generated ID.
	Create(ctx context.Context, item *entity.Item) error

	// List returns every item, newest first.
	List(ctx context.Context) ([]*entity.Item, error)

	// FindByID returns the items with the given id (zero or one).
	FindByID(ctx context.Context, id int64) ([]*entity.Item, error)

	// ListByOwner returns the items of one owner, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Item, error)

	// UpdateOwned writes the supplied columns WHERE id = ? AND owner_id = ?.
	UpdateOwned(ctx context.Context, id, ownerID int64, changes entity.ItemChanges) error

	// DeleteOwned deletes WHERE id = ? AND owner_id = ?.
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}
