package finance

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// Account is a money account transactions are posted against (cash box,
// bank account, wallet).
type Account struct {
	shared.OwnedEntity
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`

	Owner *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new account with the given name.
func NewAccount(name string) *Account {
	return &Account{
		OwnedEntity: shared.NewOwnedEntity(),
		Name:        name,
	}
}
