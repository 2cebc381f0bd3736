package trade

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseItem is a single line of a purchase.
type PurchaseItem struct {
	shared.OwnedEntity
	Price      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`

	Owner    *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Purchase *Purchase      `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"-"`
	Item     *catalog.Item  `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// NewPurchaseItem creates a purchase line for the given purchase and item.
func NewPurchaseItem(purchaseID, itemID uuid.UUID) *PurchaseItem {
	return &PurchaseItem{
		OwnedEntity: shared.NewOwnedEntity(),
		Price:       decimal.Zero,
		PurchaseID:  purchaseID,
		ItemID:      itemID,
	}
}

// SetPrice sets the line price. The price is never negative.
func (pi *PurchaseItem) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	pi.Price = price
	return nil
}
