package trade

import (
	"time"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records goods bought from a supplier for a store. Deleting a
// purchase cascades to its line items.
type Purchase struct {
	shared.OwnedEntity
	DatePurchase time.Time       `gorm:"not null" json:"date_purchase"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amount"`
	Description  string          `gorm:"type:varchar(255)" json:"description"`
	SupplierID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id"`
	StoreID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"store_id"`

	Owner    *identity.User    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Supplier *partner.Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"-"`
	Store    *partner.Store    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a new purchase with required fields.
func NewPurchase(datePurchase time.Time, supplierID, storeID uuid.UUID) *Purchase {
	return &Purchase{
		OwnedEntity:  shared.NewOwnedEntity(),
		DatePurchase: datePurchase.UTC(),
		Amount:       decimal.Zero,
		SupplierID:   supplierID,
		StoreID:      storeID,
	}
}

// SetAmount sets the purchase total. The amount is never negative.
func (p *Purchase) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	p.Amount = amount
	return nil
}
