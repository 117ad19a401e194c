package store

import (
	"context"
	"time"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/infra/persistence/model"
	"gearshare/internal/infra/persistence/store/query"

	"gorm.io/gorm"
)

type itemRepository struct {
	q *query.Query
}

// NewItemRepository is the constructor for itemRepository.
// It builds the gorm/gen query set over db, which may be a transaction.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{q: query.Use(db)}
}

func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.q.ItemModel.WithContext(ctx).Create(itemM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) List(ctx context.Context) ([]*entity.Item, error) {
	itemsM, err := repo.q.ItemModel.WithContext(ctx).
		Order(repo.q.ItemModel.ID.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list items")
	}

	return toItemsDomain(itemsM), nil
}

func (repo *itemRepository) FindByID(ctx context.Context, id int64) ([]*entity.Item, error) {
	itemsM, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.q.ItemModel.ID.Eq(id)).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find item")
	}

	return toItemsDomain(itemsM), nil
}

func (repo *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Item, error) {
	itemsM, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.q.ItemModel.OwnerID.Eq(ownerID)).
		Order(repo.q.ItemModel.ID.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list items by owner")
	}

	return toItemsDomain(itemsM), nil
}

// UpdateOwned matches on both id and owner, so foreign rows are reported as missing.
func (repo *itemRepository) UpdateOwned(ctx context.Context, id, ownerID int64, changes entity.ItemChanges) error {
	if changes.IsEmpty() {
		return domainerrors.ErrValidationFailed.WrapMessage("no item fields to update")
	}

	result, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.q.ItemModel.ID.Eq(id), repo.q.ItemModel.OwnerID.Eq(ownerID)).
		Updates(itemColumns(changes))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

func (repo *itemRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	result, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.q.ItemModel.ID.Eq(id), repo.q.ItemModel.OwnerID.Eq(ownerID)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

func itemColumns(changes entity.ItemChanges) map[string]any {
	columns := map[string]any{"updated_at": time.Now()}
	if changes.Title != nil {
		columns["title"] = *changes.Title
	}
	if changes.Description != nil {
		columns["description"] = *changes.Description
	}
	if changes.Make != nil {
		columns["make"] = *changes.Make
	}
	if changes.Model != nil {
		columns["model"] = *changes.Model
	}
	if changes.ImgURL != nil {
		columns["img_url"] = *changes.ImgURL
	}
	if changes.DailyCost != nil {
		columns["daily_cost"] = *changes.DailyCost
	}
	if changes.Available != nil {
		columns["available"] = *changes.Available
	}
	if changes.Condition != nil {
		columns["condition"] = *changes.Condition
	}

	return columns
}

func fromItemDomain(item *entity.Item) *model.ItemModel {
	return &model.ItemModel{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Title:       item.Title,
		Description: item.Description,
		Make:        item.Make,
		Model:       item.Model,
		ImgURL:      item.ImgURL,
		DailyCost:   item.DailyCost,
		Available:   item.Available,
		Condition:   item.Condition,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toItemDomain(itemM *model.ItemModel) *entity.Item {
	return &entity.Item{
		ID:          itemM.ID,
		OwnerID:     itemM.OwnerID,
		Title:       itemM.Title,
		Description: itemM.Description,
		Make:        itemM.Make,
		Model:       itemM.Model,
		ImgURL:      itemM.ImgURL,
		DailyCost:   itemM.DailyCost,
		Available:   itemM.Available,
		Condition:   itemM.Condition,
		CreatedAt:   itemM.CreatedAt,
		UpdatedAt:   itemM.UpdatedAt,
	}
}

func toItemsDomain(itemsM []*model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, 0, len(itemsM))
	for _, itemM := range itemsM {
		items = append(items, toItemDomain(itemM))
	}

	return items
}
