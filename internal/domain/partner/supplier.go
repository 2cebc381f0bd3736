package partner

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// Supplier represents a party goods are purchased from.
type Supplier struct {
	shared.OwnedEntity
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Phone   string `gorm:"type:varchar(255)" json:"phone"`
	Address string `gorm:"type:varchar(255)" json:"address"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields.
func NewSupplier(name string) *Supplier {
	return &Supplier{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
