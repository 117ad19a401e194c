package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gearshare/internal/delivery/context"
	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type itemService struct {
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService creates a new item service
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

func (s *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateItem lists a new item under the calling owner.
func (s *itemService) CreateItem(ctx context.Context, identity entity.Identity, input *usecase.CreateItemInput) (*entity.Item, error) {
	if err := requireNamespace(identity, entity.NamespaceOwner); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}

	item := &entity.Item{
		OwnerID:     identity.ID,
		Title:       input.Title,
		Description: input.Description,
		Make:        input.Make,
		Model:       input.Model,
		ImgURL:      input.ImgURL,
		DailyCost:   input.DailyCost,
		Available:   input.Available,
		Condition:   input.Condition,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	s.log(ctx).Info("Item created", slog.Int64("itemID", item.ID), slog.Int64("ownerID", item.OwnerID))

	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// GetItem returns the matching items, an empty list when there is none.
func (s *itemService) GetItem(ctx context.Context, itemID int64) ([]*entity.Item, error) {
	items, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}

	return items, nil
}

// ListOwnerItems lists an owner's items; only the owner may ask.
func (s *itemService) ListOwnerItems(ctx context.Context, identity entity.Identity, ownerID int64) ([]*entity.Item, error) {
	if err := requireSelf(identity, entity.NamespaceOwner, ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner items")
	}

	return items, nil
}

// UpdateItem applies the changes to an item the caller owns and returns the stored result.
func (s *itemService) UpdateItem(ctx context.Context, identity entity.Identity, itemID int64, changes entity.ItemChanges) (*entity.Item, error) {
	if err := requireNamespace(identity, entity.NamespaceOwner); err != nil {
		return nil, err
	}
	if changes.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no item fields to update")
	}
	if changes.Title != nil && strings.TrimSpace(*changes.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title cannot be empty")
	}

	if err := s.itemRepo.UpdateOwned(ctx, itemID, identity.ID, changes); err != nil {
		return nil, mapItemError(err, "failed to update item")
	}

	items, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload item")
	}
	if len(items) == 0 {
		// Deleted between the update and the reload.
		return nil, domainerrors.ErrItemNotFound.WrapMessage("item vanished after update")
	}

	s.log(ctx).Info("Item updated", slog.Int64("itemID", itemID), slog.Int64("ownerID", identity.ID))

	return items[0], nil
}

// DeleteItem removes an item the caller owns.
func (s *itemService) DeleteItem(ctx context.Context, identity entity.Identity, itemID int64) error {
	if err := requireNamespace(identity, entity.NamespaceOwner); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteOwned(ctx, itemID, identity.ID); err != nil {
		return mapItemError(err, "failed to delete item")
	}

	s.log(ctx).Info("Item deleted", slog.Int64("itemID", itemID), slog.Int64("ownerID", identity.ID))

	return nil
}

func mapItemError(err error, message string) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return domainerrors.ErrItemNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
