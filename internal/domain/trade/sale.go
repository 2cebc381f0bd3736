package trade

import (
	"time"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records goods sold to a customer from a store. Deleting a sale
// cascades to its line items.
type Sale struct {
	shared.OwnedEntity
	DateSold    time.Time       `gorm:"not null" json:"date_sold"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amount"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"store_id"`

	Owner    *identity.User    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Customer *partner.Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Store    *partner.Store    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale with required fields.
func NewSale(dateSold time.Time, customerID, storeID uuid.UUID) *Sale {
	return &Sale{
		OwnedEntity: shared.NewOwnedEntity(),
		DateSold:    dateSold.UTC(),
		Amount:      decimal.Zero,
		CustomerID:  customerID,
		StoreID:     storeID,
	}
}

// SetAmount sets the sale total. The amount is never negative.
func (s *Sale) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	s.Amount = amount
	return nil
}
