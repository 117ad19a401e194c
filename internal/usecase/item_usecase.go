package usecase

import (
	"context"

	"gearshare/internal/domain/entity"
)

// CreateItemInput defines a new listing. The owner comes from the identity, never from input.
type CreateItemInput struct {
	Title       string
	Description string
	Make        string
	Model       string
	ImgURL      string
	DailyCost   float64
	Available   bool
	Condition   string
}

// ItemUsecase lists items publicly and lets owners manage their own listings.
type ItemUsecase interface {
	CreateItem(ctx context.Context, identity entity.Identity, input *CreateItemInput) (*entity.Item, error)
	ListItems(ctx context.Context) ([]*entity.Item, error)
	GetItem(ctx context.Context, itemID int64) ([]*entity.Item, error)
	ListOwnerItems(ctx context.Context, identity entity.Identity, ownerID int64) ([]*entity.Item, error)
	UpdateItem(ctx context.Context, identity entity.Identity, itemID int64, changes entity.ItemChanges) (*entity.Item, error)
	DeleteItem(ctx context.Context, identity entity.Identity, itemID int64) error
}
