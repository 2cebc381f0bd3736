package catalog

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item represents a stock-keeping unit. Stock counts are never negative.
// An item requires both a category and a unit owned by the same user.
type Item struct {
	shared.OwnedEntity
	Title          string           `gorm:"type:varchar(255);not null" json:"title"`
	Description    string           `gorm:"type:varchar(255)" json:"description"`
	PricePurchase  *decimal.Decimal `gorm:"type:decimal(18,4)" json:"price_purchase"`
	PriceSell      *decimal.Decimal `gorm:"type:decimal(18,4)" json:"price_sell"`
	Stock          int              `gorm:"not null;default:0" json:"stock"`
	StockMinimum   int              `gorm:"not null;default:0" json:"stock_minimum"`
	IsActive       bool             `gorm:"not null;default:true" json:"is_active"`
	Location       string           `gorm:"type:varchar(50)" json:"location"`
	ItemCategoryID uuid.UUID        `gorm:"type:uuid;not null;index" json:"item_category_id"`
	ItemUnitID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"item_unit_id"`

	Owner    *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Category *ItemCategory  `gorm:"foreignKey:ItemCategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Unit     *ItemUnit      `gorm:"foreignKey:ItemUnitID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new active item with required fields.
func NewItem(title string, categoryID, unitID uuid.UUID) *Item {
	return &Item{
		OwnedEntity:    shared.NewOwnedEntity(),
		Title:          title,
		IsActive:       true,
		ItemCategoryID: categoryID,
		ItemUnitID:     unitID,
	}
}

// SetStock sets the current stock level. Stock is never negative.
func (i *Item) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	i.Stock = stock
	return nil
}

// SetStockMinimum sets the reorder threshold. The threshold is never negative.
func (i *Item) SetStockMinimum(minimum int) error {
	if minimum < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Minimum stock cannot be negative")
	}
	i.StockMinimum = minimum
	return nil
}

// IsLowStock reports whether the item is at or below its reorder threshold.
func (i *Item) IsLowStock() bool {
	return i.Stock <= i.StockMinimum
}
