package handler

import (
	"context"

	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateStoreRequest is the payload for creating a store.
type CreateStoreRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=100"`
	Address   string   `json:"address" binding:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// UpdateStoreRequest is a partial update for a store.
type UpdateStoreRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Address   *string  `json:"address" binding:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// NewStoreHandler wires the store CRUD resource.
func NewStoreHandler(repo shared.Repository[partner.Store]) *ResourceHandler[partner.Store, *partner.Store, CreateStoreRequest, UpdateStoreRequest] {
	service := crud.NewService[partner.Store, *partner.Store](repo, nil)
	return NewResourceHandler(
		"/stores",
		service,
		func(req CreateStoreRequest) (*partner.Store, error) {
			store := partner.NewStore(req.Name)
			store.Address = req.Address
			store.Latitude = req.Latitude
			store.Longitude = req.Longitude
			return store, nil
		},
		func(store *partner.Store, req UpdateStoreRequest) error {
			if req.Name != nil {
				store.Name = *req.Name
			}
			if req.Address != nil {
				store.Address = *req.Address
			}
			if req.Latitude != nil {
				store.Latitude = req.Latitude
			}
			if req.Longitude != nil {
				store.Longitude = req.Longitude
			}
			return nil
		},
	)
}

// CreateSupplierRequest is the payload for creating a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=255"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

// UpdateSupplierRequest is a partial update for a supplier.
type UpdateSupplierRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=255"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// NewSupplierHandler wires the supplier CRUD resource.
func NewSupplierHandler(repo shared.Repository[partner.Supplier]) *ResourceHandler[partner.Supplier, *partner.Supplier, CreateSupplierRequest, UpdateSupplierRequest] {
	service := crud.NewService[partner.Supplier, *partner.Supplier](repo, nil)
	return NewResourceHandler(
		"/suppliers",
		service,
		func(req CreateSupplierRequest) (*partner.Supplier, error) {
			supplier := partner.NewSupplier(req.Name)
			supplier.Phone = req.Phone
			supplier.Address = req.Address
			return supplier, nil
		},
		func(supplier *partner.Supplier, req UpdateSupplierRequest) error {
			if req.Name != nil {
				supplier.Name = *req.Name
			}
			if req.Phone != nil {
				supplier.Phone = *req.Phone
			}
			if req.Address != nil {
				supplier.Address = *req.Address
			}
			return nil
		},
	)
}

// CreateCustomerTypeRequest is the payload for creating a customer type.
type CreateCustomerTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateCustomerTypeRequest is a partial update for a customer type.
type UpdateCustomerTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// NewCustomerTypeHandler wires the customer type CRUD resource.
func NewCustomerTypeHandler(repo shared.Repository[partner.CustomerType]) *ResourceHandler[partner.CustomerType, *partner.CustomerType, CreateCustomerTypeRequest, UpdateCustomerTypeRequest] {
	service := crud.NewService[partner.CustomerType, *partner.CustomerType](repo, nil)
	return NewResourceHandler(
		"/customer-types",
		service,
		func(req CreateCustomerTypeRequest) (*partner.CustomerType, error) {
			ct := partner.NewCustomerType(req.Name)
			ct.Description = req.Description
			return ct, nil
		},
		func(ct *partner.CustomerType, req UpdateCustomerTypeRequest) error {
			if req.Name != nil {
				ct.Name = *req.Name
			}
			if req.Description != nil {
				ct.Description = *req.Description
			}
			return nil
		},
	)
}

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name           string    `json:"name" binding:"required,min=1,max=100"`
	Phone          string    `json:"phone" binding:"omitempty,max=255"`
	Address        string    `json:"address" binding:"omitempty,max=255"`
	CustomerTypeID uuid.UUID `json:"customer_type_id" binding:"required"`
}

// UpdateCustomerRequest is a partial update for a customer.
type UpdateCustomerRequest struct {
	Name           *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Phone          *string    `json:"phone" binding:"omitempty,max=255"`
	Address        *string    `json:"address" binding:"omitempty,max=255"`
	CustomerTypeID *uuid.UUID `json:"customer_type_id"`
}

// NewCustomerHandler wires the customer CRUD resource. The customer type
// reference must resolve to a row the actor can see.
func NewCustomerHandler(
	repo shared.Repository[partner.Customer],
	customerTypes shared.Repository[partner.CustomerType],
) *ResourceHandler[partner.Customer, *partner.Customer, CreateCustomerRequest, UpdateCustomerRequest] {
	refCheck := func(ctx context.Context, actor shared.Actor, customer *partner.Customer) error {
		return crud.RequireOwned[partner.CustomerType, *partner.CustomerType](
			ctx, customerTypes, actor, customer.CustomerTypeID, "customer type")
	}
	service := crud.NewService[partner.Customer, *partner.Customer](repo, refCheck)
	return NewResourceHandler(
		"/customers",
		service,
		func(req CreateCustomerRequest) (*partner.Customer, error) {
			customer := partner.NewCustomer(req.Name, req.CustomerTypeID)
			customer.Phone = req.Phone
			customer.Address = req.Address
			return customer, nil
		},
		func(customer *partner.Customer, req UpdateCustomerRequest) error {
			if req.Name != nil {
				customer.Name = *req.Name
			}
			if req.Phone != nil {
				customer.Phone = *req.Phone
			}
			if req.Address != nil {
				customer.Address = *req.Address
			}
			if req.CustomerTypeID != nil {
				customer.CustomerTypeID = *req.CustomerTypeID
			}
			return nil
		},
	)
}
