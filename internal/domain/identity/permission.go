package identity

import (
	"github.com/backoffice/backend/internal/domain/shared"
)

// Permission is a named access grant a user manages for their own account.
type Permission struct {
	shared.OwnedEntity
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Permission) TableName() string {
	return "permissions"
}

// NewPermission creates a new permission with the given name.
func NewPermission(name string) *Permission {
	return &Permission{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
