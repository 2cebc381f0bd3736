package catalog

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// ItemCategory groups items. Deleting a category cascades to its items.
type ItemCategory struct {
	shared.OwnedEntity
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (ItemCategory) TableName() string {
	return "item_categories"
}

// NewItemCategory creates a new item category with required fields.
func NewItemCategory(name string) *ItemCategory {
	return &ItemCategory{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
