package handler

import (
	"net/http"

	"gearshare/internal/delivery/http/response"
	"gearshare/internal/domain/entity"
	"gearshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createItemRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	ImgURL      string  `json:"img_url"`
	DailyCost   float64 `json:"daily_cost"`
	Available   bool    `json:"available"`
	Condition   string  `json:"condition"`
}

// updateItemRequest only changes the fields present in the body.
type updateItemRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Make        *string  `json:"make"`
	Model       *string  `json:"model"`
	ImgURL      *string  `json:"img_url"`
	DailyCost   *float64 `json:"daily_cost"`
	Available   *bool    `json:"available"`
	Condition   *string  `json:"condition"`
}

type createItemResponse struct {
	Message string `json:"message"`
	ItemID  int64  `json:"item_id"`
}

type updateItemResponse struct {
	Message string                `json:"message"`
	Item    response.ItemResponse `json:"item"`
}

// ItemHandler serves the public catalogue and owners' listings.
type ItemHandler struct {
	uc usecase.ItemUsecase
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// ListItems returns every item, newest first.
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewItems(items))
}

// GetItem returns the items matching the path id as an array, empty when none match.
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewItems(items))
}

// ListOwnerItems returns the listings of the owner in the path, who must be the caller.
func (h *ItemHandler) ListOwnerItems(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	ownerID, err := pathID(c, "owner_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListOwnerItems(c.Request().Context(), caller, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewItems(items))
}

// CreateItem lists a new item for the calling owner.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.uc.CreateItem(c.Request().Context(), caller, &usecase.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Make:        req.Make,
		Model:       req.Model,
		ImgURL:      req.ImgURL,
		DailyCost:   req.DailyCost,
		Available:   req.Available,
		Condition:   req.Condition,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, createItemResponse{
		Message: "Item created successfully",
		ItemID:  item.ID,
	})
}

// UpdateItem changes one of the caller's items.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), caller, itemID, entity.ItemChanges{
		Title:       req.Title,
		Description: req.Description,
		Make:        req.Make,
		Model:       req.Model,
		ImgURL:      req.ImgURL,
		DailyCost:   req.DailyCost,
		Available:   req.Available,
		Condition:   req.Condition,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, updateItemResponse{
		Message: "Item updated successfully",
		Item:    response.NewItem(item),
	})
}

// DeleteItem removes one of the caller's items.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteItem(c.Request().Context(), caller, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Item deleted successfully")
}
