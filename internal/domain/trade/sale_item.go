package trade

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem is a single line of a sale.
type SaleItem struct {
	shared.OwnedEntity
	Price  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	SaleID uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemID uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Sale  *Sale          `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"-"`
	Item  *catalog.Item  `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSaleItem creates a sale line for the given sale and item.
func NewSaleItem(saleID, itemID uuid.UUID) *SaleItem {
	return &SaleItem{
		OwnedEntity: shared.NewOwnedEntity(),
		Price:       decimal.Zero,
		SaleID:      saleID,
		ItemID:      itemID,
	}
}

// SetPrice sets the line price. The price is never negative.
func (si *SaleItem) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	si.Price = price
	return nil
}
