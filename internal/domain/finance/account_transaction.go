package finance

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a transaction.
type TransactionType string

const (
	TransactionIncome      TransactionType = "income"
	TransactionExpense     TransactionType = "expense"
	TransactionTransferIn  TransactionType = "transfer_in"
	TransactionTransferOut TransactionType = "transfer_out"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransferIn, TransactionTransferOut:
		return true
	}
	return false
}

// ReferenceName classifies what business document a transaction points at.
type ReferenceName string

const (
	ReferenceSale       ReferenceName = "sale"
	ReferencePurchase   ReferenceName = "purchase"
	ReferencePayable    ReferenceName = "payable"
	ReferenceReceivable ReferenceName = "receivable"
)

// Valid reports whether the reference name is one of the known values.
func (r ReferenceName) Valid() bool {
	switch r {
	case ReferenceSale, ReferencePurchase, ReferencePayable, ReferenceReceivable:
		return true
	}
	return false
}

// AccountTransaction is a single posting on an account. ReferenceID is the
// id of the document named by ReferenceName and is not enforced as a
// foreign key, so history survives deletion of the source document.
type AccountTransaction struct {
	shared.OwnedEntity
	Type          TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amount"`
	ReferenceName ReferenceName   `gorm:"type:varchar(20)" json:"reference_name"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid" json:"reference_id"`
	Description   string          `gorm:"type:varchar(255)" json:"description"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`

	Owner   *identity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Account *Account       `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM
func (AccountTransaction) TableName() string {
	return "account_transactions"
}

// NewAccountTransaction creates a transaction on an account.
func NewAccountTransaction(txType TransactionType, accountID uuid.UUID) (*AccountTransaction, error) {
	if !txType.Valid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Unknown transaction type")
	}
	return &AccountTransaction{
		OwnedEntity: shared.NewOwnedEntity(),
		Type:        txType,
		Amount:      decimal.Zero,
		AccountID:   accountID,
	}, nil
}

// SetAmount sets the posted amount. The amount is never negative, the Type
// carries the direction.
func (t *AccountTransaction) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	t.Amount = amount
	return nil
}

// SetReference points the transaction at a business document.
func (t *AccountTransaction) SetReference(name ReferenceName, id *uuid.UUID) error {
	if name != "" && !name.Valid() {
		return shared.NewDomainError("INVALID_REFERENCE_NAME", "Unknown reference name")
	}
	t.ReferenceName = name
	t.ReferenceID = id
	return nil
}
