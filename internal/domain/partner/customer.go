package partner

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a party sales are made to. Every customer requires a
// customer type owned by the same user.
type Customer struct {
	shared.OwnedEntity
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone          string    `gorm:"type:varchar(255)" json:"phone"`
	Address        string    `gorm:"type:varchar(255)" json:"address"`
	CustomerTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_type_id"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Type  *CustomerType  `gorm:"foreignKey:CustomerTypeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields.
func NewCustomer(name string, customerTypeID uuid.UUID) *Customer {
	return &Customer{
		OwnedEntity:    shared.NewOwnedEntity(),
		Name:           name,
		CustomerTypeID: customerTypeID,
	}
}
