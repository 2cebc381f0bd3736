package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lowStockCond selects active items at or below their restock threshold.
const lowStockCond = "is_active = ? AND stock <= stock_minimum"

// GormItemRepository implements catalog.ItemRepository using GORM.
type GormItemRepository struct {
	GormRepository[catalog.Item]
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{GormRepository[catalog.Item]{db: db}}
}

// FindLowStock returns a window of active items whose stock has fallen to
// or below their minimum.
func (r *GormItemRepository) FindLowStock(ctx context.Context, owner *uuid.UUID, page shared.Page) ([]catalog.Item, error) {
	var items []catalog.Item
	q := r.db.WithContext(ctx).
		Where(lowStockCond, true).
		Order(listOrder)
	if owner != nil {
		q = q.Where("owner_id = ?", *owner)
	}
	if err := q.Offset(page.Skip).Limit(page.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountLowStock counts active items at or below their minimum stock.
func (r *GormItemRepository) CountLowStock(ctx context.Context, owner *uuid.UUID) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&catalog.Item{}).Where(lowStockCond, true)
	if owner != nil {
		q = q.Where("owner_id = ?", *owner)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
