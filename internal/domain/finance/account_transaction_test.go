package finance_test

import (
	"testing"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionTypeValid(t *testing.T) {
	for _, txType := range []finance.TransactionType{
		finance.TransactionIncome,
		finance.TransactionExpense,
		finance.TransactionTransferIn,
		finance.TransactionTransferOut,
	} {
		assert.True(t, txType.Valid(), "%s", txType)
	}
	assert.False(t, finance.TransactionType("refund").Valid())
	assert.False(t, finance.TransactionType("").Valid())
}

func TestReferenceNameValid(t *testing.T) {
	for _, name := range []finance.ReferenceName{
		finance.ReferenceSale,
		finance.ReferencePurchase,
		finance.ReferencePayable,
		finance.ReferenceReceivable,
	} {
		assert.True(t, name.Valid(), "%s", name)
	}
	assert.False(t, finance.ReferenceName("invoice").Valid())
}

func TestNewAccountTransaction(t *testing.T) {
	accountID := uuid.New()

	tx, err := finance.NewAccountTransaction(finance.TransactionIncome, accountID)
	require.NoError(t, err)
	assert.Equal(t, finance.TransactionIncome, tx.Type)
	assert.Equal(t, accountID, tx.AccountID)
	assert.True(t, tx.Amount.IsZero())

	_, err = finance.NewAccountTransaction("refund", accountID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TRANSACTION_TYPE", domainErr.Code)
}

func TestAccountTransactionSetAmount(t *testing.T) {
	tx, err := finance.NewAccountTransaction(finance.TransactionExpense, uuid.New())
	require.NoError(t, err)

	err = tx.SetAmount(decimal.NewFromInt(-1))
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	assert.True(t, tx.Amount.IsZero())

	require.NoError(t, tx.SetAmount(decimal.RequireFromString("19.99")))
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("19.99")))
}

func TestAccountTransactionSetReference(t *testing.T) {
	tx, err := finance.NewAccountTransaction(finance.TransactionIncome, uuid.New())
	require.NoError(t, err)

	saleID := uuid.New()
	require.NoError(t, tx.SetReference(finance.ReferenceSale, &saleID))
	assert.Equal(t, finance.ReferenceSale, tx.ReferenceName)
	require.NotNil(t, tx.ReferenceID)
	assert.Equal(t, saleID, *tx.ReferenceID)

	// clearing the reference is allowed
	require.NoError(t, tx.SetReference("", nil))
	assert.Empty(t, tx.ReferenceName)
	assert.Nil(t, tx.ReferenceID)

	err = tx.SetReference("invoice", &saleID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_REFERENCE_NAME", domainErr.Code)
}
