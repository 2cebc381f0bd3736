// Package catalog holds application services for the item catalog beyond
// plain CRUD.
package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemService exposes catalog reports over the item repository.
type ItemService struct {
	items catalog.ItemRepository
}

// NewItemService creates a catalog item service.
func NewItemService(items catalog.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// ListLowStock returns items visible to the actor that are active and at or
// below their minimum stock, with the total count of such items.
func (s *ItemService) ListLowStock(ctx context.Context, actor shared.Actor, page shared.Page) ([]catalog.Item, int64, error) {
	page = page.Normalize()

	var owner *uuid.UUID
	if !actor.IsSuperuser {
		id := actor.ID
		owner = &id
	}

	count, err := s.items.CountLowStock(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.items.FindLowStock(ctx, owner, page)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}
