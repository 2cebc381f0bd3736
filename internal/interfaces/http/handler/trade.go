package handler

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest is the payload for creating a purchase.
type CreatePurchaseRequest struct {
	DatePurchase time.Time        `json:"date_purchase" binding:"required"`
	Amount       *decimal.Decimal `json:"amount"`
	Description  string           `json:"description" binding:"omitempty,max=255"`
	SupplierID   uuid.UUID        `json:"supplier_id" binding:"required"`
	StoreID      uuid.UUID        `json:"store_id" binding:"required"`
}

// UpdatePurchaseRequest is a partial update for a purchase.
type UpdatePurchaseRequest struct {
	DatePurchase *time.Time       `json:"date_purchase"`
	Amount       *decimal.Decimal `json:"amount"`
	Description  *string          `json:"description" binding:"omitempty,max=255"`
	SupplierID   *uuid.UUID       `json:"supplier_id"`
	StoreID      *uuid.UUID       `json:"store_id"`
}

// NewPurchaseHandler wires the purchase CRUD resource. Supplier and store
// references must resolve to rows the actor can see.
func NewPurchaseHandler(
	repo shared.Repository[trade.Purchase],
	suppliers shared.Repository[partner.Supplier],
	stores shared.Repository[partner.Store],
) *ResourceHandler[trade.Purchase, *trade.Purchase, CreatePurchaseRequest, UpdatePurchaseRequest] {
	refCheck := func(ctx context.Context, actor shared.Actor, purchase *trade.Purchase) error {
		if err := crud.RequireOwned[partner.Supplier, *partner.Supplier](
			ctx, suppliers, actor, purchase.SupplierID, "supplier"); err != nil {
			return err
		}
		return crud.RequireOwned[partner.Store, *partner.Store](
			ctx, stores, actor, purchase.StoreID, "store")
	}
	service := crud.NewService[trade.Purchase, *trade.Purchase](repo, refCheck)
	return NewResourceHandler(
		"/purchases",
		service,
		func(req CreatePurchaseRequest) (*trade.Purchase, error) {
			purchase := trade.NewPurchase(req.DatePurchase, req.SupplierID, req.StoreID)
			purchase.Description = req.Description
			if req.Amount != nil {
				if err := purchase.SetAmount(*req.Amount); err != nil {
					return nil, err
				}
			}
			return purchase, nil
		},
		func(purchase *trade.Purchase, req UpdatePurchaseRequest) error {
			if req.DatePurchase != nil {
				purchase.DatePurchase = req.DatePurchase.UTC()
			}
			if req.Amount != nil {
				if err := purchase.SetAmount(*req.Amount); err != nil {
					return err
				}
			}
			if req.Description != nil {
				purchase.Description = *req.Description
			}
			if req.SupplierID != nil {
				purchase.SupplierID = *req.SupplierID
			}
			if req.StoreID != nil {
				purchase.StoreID = *req.StoreID
			}
			return nil
		},
	)
}

// CreatePurchaseItemRequest is the payload for creating a purchase line.
type CreatePurchaseItemRequest struct {
	Price      *decimal.Decimal `json:"price"`
	PurchaseID uuid.UUID        `json:"purchase_id" binding:"required"`
	ItemID     uuid.UUID        `json:"item_id" binding:"required"`
}

// UpdatePurchaseItemRequest is a partial update for a purchase line.
type UpdatePurchaseItemRequest struct {
	Price      *decimal.Decimal `json:"price"`
	PurchaseID *uuid.UUID       `json:"purchase_id"`
	ItemID     *uuid.UUID       `json:"item_id"`
}

// NewPurchaseItemHandler wires the purchase line CRUD resource.
func NewPurchaseItemHandler(
	repo shared.Repository[trade.PurchaseItem],
	purchases shared.Repository[trade.Purchase],
	items catalog.ItemRepository,
) *ResourceHandler[trade.PurchaseItem, *trade.PurchaseItem, CreatePurchaseItemRequest, UpdatePurchaseItemRequest] {
	refCheck := func(ctx context.Context, actor shared.Actor, line *trade.PurchaseItem) error {
		if err := crud.RequireOwned[trade.Purchase, *trade.Purchase](
			ctx, purchases, actor, line.PurchaseID, "purchase"); err != nil {
			return err
		}
		return crud.RequireOwned[catalog.Item, *catalog.Item](
			ctx, items, actor, line.ItemID, "item")
	}
	service := crud.NewService[trade.PurchaseItem, *trade.PurchaseItem](repo, refCheck)
	return NewResourceHandler(
		"/purchase-items",
		service,
		func(req CreatePurchaseItemRequest) (*trade.PurchaseItem, error) {
			line := trade.NewPurchaseItem(req.PurchaseID, req.ItemID)
			if req.Price != nil {
				if err := line.SetPrice(*req.Price); err != nil {
					return nil, err
				}
			}
			return line, nil
		},
		func(line *trade.PurchaseItem, req UpdatePurchaseItemRequest) error {
			if req.Price != nil {
				if err := line.SetPrice(*req.Price); err != nil {
					return err
				}
			}
			if req.PurchaseID != nil {
				line.PurchaseID = *req.PurchaseID
			}
			if req.ItemID != nil {
				line.ItemID = *req.ItemID
			}
			return nil
		},
	)
}

// CreateSaleRequest is the payload for creating a sale.
type CreateSaleRequest struct {
	DateSold    time.Time        `json:"date_sold" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description" binding:"omitempty,max=255"`
	CustomerID  uuid.UUID        `json:"customer_id" binding:"required"`
	StoreID     uuid.UUID        `json:"store_id" binding:"required"`
}

// UpdateSaleRequest is a partial update for a sale.
type UpdateSaleRequest struct {
	DateSold    *time.Time       `json:"date_sold"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	CustomerID  *uuid.UUID       `json:"customer_id"`
	StoreID     *uuid.UUID       `json:"store_id"`
}

// NewSaleHandler wires the sale CRUD resource. Customer and store
// references must resolve to rows the actor can see.
func NewSaleHandler(
	repo shared.Repository[trade.Sale],
	customers shared.Repository[partner.Customer],
	stores shared.Repository[partner.Store],
) *ResourceHandler[trade.Sale, *trade.Sale, CreateSaleRequest, UpdateSaleRequest] {
	refCheck := func(ctx context.Context, actor shared.Actor, sale *trade.Sale) error {
		if err := crud.RequireOwned[partner.Customer, *partner.Customer](
			ctx, customers, actor, sale.CustomerID, "customer"); err != nil {
			return err
		}
		return crud.RequireOwned[partner.Store, *partner.Store](
			ctx, stores, actor, sale.StoreID, "store")
	}
	service := crud.NewService[trade.Sale, *trade.Sale](repo, refCheck)
	return NewResourceHandler(
		"/sales",
		service,
		func(req CreateSaleRequest) (*trade.Sale, error) {
			sale := trade.NewSale(req.DateSold, req.CustomerID, req.StoreID)
			sale.Description = req.Description
			if req.Amount != nil {
				if err := sale.SetAmount(*req.Amount); err != nil {
					return nil, err
				}
			}
			return sale, nil
		},
		func(sale *trade.Sale, req UpdateSaleRequest) error {
			if req.DateSold != nil {
				sale.DateSold = req.DateSold.UTC()
			}
			if req.Amount != nil {
				if err := sale.SetAmount(*req.Amount); err != nil {
					return err
				}
			}
			if req.Description != nil {
				sale.Description = *req.Description
			}
			if req.CustomerID != nil {
				sale.CustomerID = *req.CustomerID
			}
			if req.StoreID != nil {
				sale.StoreID = *req.StoreID
			}
			return nil
		},
	)
}

// CreateSaleItemRequest is the payload for creating a sale line.
type CreateSaleItemRequest struct {
	Price  *decimal.Decimal `json:"price"`
	SaleID uuid.UUID        `json:"sale_id" binding:"required"`
	ItemID uuid.UUID        `json:"item_id" binding:"required"`
}

// UpdateSaleItemRequest is a partial update for a sale line.
type UpdateSaleItemRequest struct {
	Price  *decimal.Decimal `json:"price"`
	SaleID *uuid.UUID       `json:"sale_id"`
	ItemID *uuid.UUID       `json:"item_id"`
}

// NewSaleItemHandler wires the sale line CRUD resource.
func NewSaleItemHandler(
	repo shared.Repository[trade.SaleItem],
	sales shared.Repository[trade.Sale],
	items catalog.ItemRepository,
) *ResourceHandler[trade.SaleItem, *trade.SaleItem, CreateSaleItemRequest, UpdateSaleItemRequest] {
	refCheck := func(ctx context.Context, actor shared.Actor, line *trade.SaleItem) error {
		if err := crud.RequireOwned[trade.Sale, *trade.Sale](
			ctx, sales, actor, line.SaleID, "sale"); err != nil {
			return err
		}
		return crud.RequireOwned[catalog.Item, *catalog.Item](
			ctx, items, actor, line.ItemID, "item")
	}
	service := crud.NewService[trade.SaleItem, *trade.SaleItem](repo, refCheck)
	return NewResourceHandler(
		"/sale-items",
		service,
		func(req CreateSaleItemRequest) (*trade.SaleItem, error) {
			line := trade.NewSaleItem(req.SaleID, req.ItemID)
			if req.Price != nil {
				if err := line.SetPrice(*req.Price); err != nil {
					return nil, err
				}
			}
			return line, nil
		},
		func(line *trade.SaleItem, req UpdateSaleItemRequest) error {
			if req.Price != nil {
				if err := line.SetPrice(*req.Price); err != nil {
					return err
				}
			}
			if req.SaleID != nil {
				line.SaleID = *req.SaleID
			}
			if req.ItemID != nil {
				line.ItemID = *req.ItemID
			}
			return nil
		},
	)
}
