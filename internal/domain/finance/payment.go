package finance

import (
	"time"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Payment records money received or paid out on a date.
type Payment struct {
	shared.OwnedEntity
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amount"`
	DatePayment time.Time       `gorm:"not null" json:"date_payment"`
	Description string          `gorm:"type:varchar(255)" json:"description"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new payment dated at the given time.
func NewPayment(datePayment time.Time) *Payment {
	return &Payment{
		OwnedEntity: shared.NewOwnedEntity(),
		Amount:      decimal.Zero,
		DatePayment: datePayment.UTC(),
	}
}

// SetAmount sets the paid amount. The amount is never negative.
func (p *Payment) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	p.Amount = amount
	return nil
}
