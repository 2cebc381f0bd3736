package handler

import (
	"context"

	appcatalog "github.com/backoffice/backend/internal/application/catalog"
	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemCategoryRequest is the payload for creating an item category.
type CreateItemCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateItemCategoryRequest is a partial update for an item category.
type UpdateItemCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// NewItemCategoryHandler wires the item category CRUD resource.
func NewItemCategoryHandler(repo shared.Repository[catalog.ItemCategory]) *ResourceHandler[catalog.ItemCategory, *catalog.ItemCategory, CreateItemCategoryRequest, UpdateItemCategoryRequest] {
	service := crud.NewService[catalog.ItemCategory, *catalog.ItemCategory](repo, nil)
	return NewResourceHandler(
		"/item-categories",
		service,
		func(req CreateItemCategoryRequest) (*catalog.ItemCategory, error) {
			category := catalog.NewItemCategory(req.Name)
			category.Description = req.Description
			return category, nil
		},
		func(category *catalog.ItemCategory, req UpdateItemCategoryRequest) error {
			if req.Name != nil {
				category.Name = *req.Name
			}
			if req.Description != nil {
				category.Description = *req.Description
			}
			return nil
		},
	)
}

// CreateItemUnitRequest is the payload for creating an item unit.
type CreateItemUnitRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateItemUnitRequest is a partial update for an item unit.
type UpdateItemUnitRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// NewItemUnitHandler wires the item unit CRUD resource.
func NewItemUnitHandler(repo shared.Repository[catalog.ItemUnit]) *ResourceHandler[catalog.ItemUnit, *catalog.ItemUnit, CreateItemUnitRequest, UpdateItemUnitRequest] {
	service := crud.NewService[catalog.ItemUnit, *catalog.ItemUnit](repo, nil)
	return NewResourceHandler(
		"/item-units",
		service,
		func(req CreateItemUnitRequest) (*catalog.ItemUnit, error) {
			unit := catalog.NewItemUnit(req.Name)
			unit.Description = req.Description
			return unit, nil
		},
		func(unit *catalog.ItemUnit, req UpdateItemUnitRequest) error {
			if req.Name != nil {
				unit.Name = *req.Name
			}
			if req.Description != nil {
				unit.Description = *req.Description
			}
			return nil
		},
	)
}

// CreateItemRequest is the payload for creating an item.
type CreateItemRequest struct {
	Title          string           `json:"title" binding:"required,min=1,max=255"`
	Description    string           `json:"description" binding:"omitempty,max=255"`
	PricePurchase  *decimal.Decimal `json:"price_purchase"`
	PriceSell      *decimal.Decimal `json:"price_sell"`
	Stock          *int             `json:"stock"`
	StockMinimum   *int             `json:"stock_minimum"`
	IsActive       *bool            `json:"is_active"`
	Location       string           `json:"location" binding:"omitempty,max=50"`
	ItemCategoryID uuid.UUID        `json:"item_category_id" binding:"required"`
	ItemUnitID     uuid.UUID        `json:"item_unit_id" binding:"required"`
}

// UpdateItemRequest is a partial update for an item.
type UpdateItemRequest struct {
	Title          *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Description    *string          `json:"description" binding:"omitempty,max=255"`
	PricePurchase  *decimal.Decimal `json:"price_purchase"`
	PriceSell      *decimal.Decimal `json:"price_sell"`
	Stock          *int             `json:"stock"`
	StockMinimum   *int             `json:"stock_minimum"`
	IsActive       *bool            `json:"is_active"`
	Location       *string          `json:"location" binding:"omitempty,max=50"`
	ItemCategoryID *uuid.UUID       `json:"item_category_id"`
	ItemUnitID     *uuid.UUID       `json:"item_unit_id"`
}

// ItemHandler is the item CRUD resource plus the low-stock report.
type ItemHandler struct {
	*ResourceHandler[catalog.Item, *catalog.Item, CreateItemRequest, UpdateItemRequest]
	itemService *appcatalog.ItemService
}

// NewItemHandler wires the item CRUD resource. Category and unit references
// must resolve to rows the actor can see.
func NewItemHandler(
	repo catalog.ItemRepository,
	categories shared.Repository[catalog.ItemCategory],
	units shared.Repository[catalog.ItemUnit],
) *ItemHandler {
	refCheck := func(ctx context.Context, actor shared.Actor, item *catalog.Item) error {
		if err := crud.RequireOwned[catalog.ItemCategory, *catalog.ItemCategory](
			ctx, categories, actor, item.ItemCategoryID, "item category"); err != nil {
			return err
		}
		return crud.RequireOwned[catalog.ItemUnit, *catalog.ItemUnit](
			ctx, units, actor, item.ItemUnitID, "item unit")
	}
	service := crud.NewService[catalog.Item, *catalog.Item](repo, refCheck)

	resource := NewResourceHandler(
		"/items",
		service,
		func(req CreateItemRequest) (*catalog.Item, error) {
			item := catalog.NewItem(req.Title, req.ItemCategoryID, req.ItemUnitID)
			item.Description = req.Description
			item.PricePurchase = req.PricePurchase
			item.PriceSell = req.PriceSell
			item.Location = req.Location
			if req.Stock != nil {
				if err := item.SetStock(*req.Stock); err != nil {
					return nil, err
				}
			}
			if req.StockMinimum != nil {
				if err := item.SetStockMinimum(*req.StockMinimum); err != nil {
					return nil, err
				}
			}
			if req.IsActive != nil {
				item.IsActive = *req.IsActive
			}
			return item, nil
		},
		func(item *catalog.Item, req UpdateItemRequest) error {
			if req.Title != nil {
				item.Title = *req.Title
			}
			if req.Description != nil {
				item.Description = *req.Description
			}
			if req.PricePurchase != nil {
				item.PricePurchase = req.PricePurchase
			}
			if req.PriceSell != nil {
				item.PriceSell = req.PriceSell
			}
			if req.Stock != nil {
				if err := item.SetStock(*req.Stock); err != nil {
					return err
				}
			}
			if req.StockMinimum != nil {
				if err := item.SetStockMinimum(*req.StockMinimum); err != nil {
					return err
				}
			}
			if req.IsActive != nil {
				item.IsActive = *req.IsActive
			}
			if req.Location != nil {
				item.Location = *req.Location
			}
			if req.ItemCategoryID != nil {
				item.ItemCategoryID = *req.ItemCategoryID
			}
			if req.ItemUnitID != nil {
				item.ItemUnitID = *req.ItemUnitID
			}
			return nil
		},
	)

	return &ItemHandler{
		ResourceHandler: resource,
		itemService:     appcatalog.NewItemService(repo),
	}
}

// RegisterRoutes registers item routes including the low-stock report
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.ResourceHandler.RegisterRoutes(rg)
	rg.GET("/items/low-stock", h.LowStock)
}

// LowStock lists active items at or below their minimum stock
func (h *ItemHandler) LowStock(c *gin.Context) {
	actor, ok := h.mustGetActor(c)
	if !ok {
		return
	}
	page, ok := h.bindPage(c)
	if !ok {
		return
	}

	items, count, err := h.itemService.ListLowStock(c.Request.Context(), actor, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Collection(c, items, count, page)
}
