package catalog

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// ItemUnit is the unit of measure items are counted in (piece, box, kg).
type ItemUnit struct {
	shared.OwnedEntity
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (ItemUnit) TableName() string {
	return "item_units"
}

// NewItemUnit creates a new item unit with required fields.
func NewItemUnit(name string) *ItemUnit {
	return &ItemUnit{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
