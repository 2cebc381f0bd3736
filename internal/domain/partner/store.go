package partner

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// Store represents a physical sales location owned by a user.
type Store struct {
	shared.OwnedEntity
	Name      string   `gorm:"type:varchar(100);not null" json:"name"`
	Address   string   `gorm:"type:varchar(255)" json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store with required fields.
func NewStore(name string) *Store {
	return &Store{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
