package partner

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// CustomerType classifies customers (e.g. retail, wholesale). Deleting a
// type cascades to the customers assigned to it.
type CustomerType struct {
	shared.OwnedEntity
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (CustomerType) TableName() string {
	return "customer_types"
}

// NewCustomerType creates a new customer type with required fields.
func NewCustomerType(name string) *CustomerType {
	return &CustomerType{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
