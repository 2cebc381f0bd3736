package handler

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for creating an account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateAccountRequest is a partial update for an account.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// NewAccountHandler wires the account CRUD resource.
func NewAccountHandler(repo shared.Repository[finance.Account]) *ResourceHandler[finance.Account, *finance.Account, CreateAccountRequest, UpdateAccountRequest] {
	service := crud.NewService[finance.Account, *finance.Account](repo, nil)
	return NewResourceHandler(
		"/accounts",
		service,
		func(req CreateAccountRequest) (*finance.Account, error) {
			account := finance.NewAccount(req.Name)
			account.Description = req.Description
			return account, nil
		},
		func(account *finance.Account, req UpdateAccountRequest) error {
			if req.Name != nil {
				account.Name = *req.Name
			}
			if req.Description != nil {
				account.Description = *req.Description
			}
			return nil
		},
	)
}

// CreateAccountTransactionRequest is the payload for posting a transaction.
type CreateAccountTransactionRequest struct {
	Type          finance.TransactionType `json:"type" binding:"required"`
	Amount        *decimal.Decimal        `json:"amount"`
	ReferenceName finance.ReferenceName   `json:"reference_name"`
	ReferenceID   *uuid.UUID              `json:"reference_id"`
	Description   string                  `json:"description" binding:"omitempty,max=255"`
	AccountID     uuid.UUID               `json:"account_id" binding:"required"`
}

// UpdateAccountTransactionRequest is a partial update for a transaction.
type UpdateAccountTransactionRequest struct {
	Type          *finance.TransactionType `json:"type"`
	Amount        *decimal.Decimal         `json:"amount"`
	ReferenceName *finance.ReferenceName   `json:"reference_name"`
	ReferenceID   *uuid.UUID               `json:"reference_id"`
	Description   *string                  `json:"description" binding:"omitempty,max=255"`
	AccountID     *uuid.UUID               `json:"account_id"`
}

// NewAccountTransactionHandler wires the account transaction CRUD resource.
// The account reference must resolve to a row the actor can see.
func NewAccountTransactionHandler(
	repo shared.Repository[finance.AccountTransaction],
	accounts shared.Repository[finance.Account],
) *ResourceHandler[finance.AccountTransaction, *finance.AccountTransaction, CreateAccountTransactionRequest, UpdateAccountTransactionRequest] {
	refCheck := func(ctx context.Context, actor shared.Actor, tx *finance.AccountTransaction) error {
		return crud.RequireOwned[finance.Account, *finance.Account](
			ctx, accounts, actor, tx.AccountID, "account")
	}
	service := crud.NewService[finance.AccountTransaction, *finance.AccountTransaction](repo, refCheck)
	return NewResourceHandler(
		"/account-transactions",
		service,
		func(req CreateAccountTransactionRequest) (*finance.AccountTransaction, error) {
			tx, err := finance.NewAccountTransaction(req.Type, req.AccountID)
			if err != nil {
				return nil, err
			}
			tx.Description = req.Description
			if req.Amount != nil {
				if err := tx.SetAmount(*req.Amount); err != nil {
					return nil, err
				}
			}
			if err := tx.SetReference(req.ReferenceName, req.ReferenceID); err != nil {
				return nil, err
			}
			return tx, nil
		},
		func(tx *finance.AccountTransaction, req UpdateAccountTransactionRequest) error {
			if req.Type != nil {
				if !req.Type.Valid() {
					return shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Unknown transaction type")
				}
				tx.Type = *req.Type
			}
			if req.Amount != nil {
				if err := tx.SetAmount(*req.Amount); err != nil {
					return err
				}
			}
			if req.ReferenceName != nil || req.ReferenceID != nil {
				name := tx.ReferenceName
				if req.ReferenceName != nil {
					name = *req.ReferenceName
				}
				id := tx.ReferenceID
				if req.ReferenceID != nil {
					id = req.ReferenceID
				}
				if err := tx.SetReference(name, id); err != nil {
					return err
				}
			}
			if req.Description != nil {
				tx.Description = *req.Description
			}
			if req.AccountID != nil {
				tx.AccountID = *req.AccountID
			}
			return nil
		},
	)
}

// CreatePaymentRequest is the payload for recording a payment.
type CreatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	DatePayment time.Time        `json:"date_payment" binding:"required"`
	Description string           `json:"description" binding:"omitempty,max=255"`
}

// UpdatePaymentRequest is a partial update for a payment.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	DatePayment *time.Time       `json:"date_payment"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
}

// NewPaymentHandler wires the payment CRUD resource.
func NewPaymentHandler(repo shared.Repository[finance.Payment]) *ResourceHandler[finance.Payment, *finance.Payment, CreatePaymentRequest, UpdatePaymentRequest] {
	service := crud.NewService[finance.Payment, *finance.Payment](repo, nil)
	return NewResourceHandler(
		"/payments",
		service,
		func(req CreatePaymentRequest) (*finance.Payment, error) {
			payment := finance.NewPayment(req.DatePayment)
			payment.Description = req.Description
			if req.Amount != nil {
				if err := payment.SetAmount(*req.Amount); err != nil {
					return nil, err
				}
			}
			return payment, nil
		},
		func(payment *finance.Payment, req UpdatePaymentRequest) error {
			if req.Amount != nil {
				if err := payment.SetAmount(*req.Amount); err != nil {
					return err
				}
			}
			if req.DatePayment != nil {
				payment.DatePayment = req.DatePayment.UTC()
			}
			if req.Description != nil {
				payment.Description = *req.Description
			}
			return nil
		},
	)
}
