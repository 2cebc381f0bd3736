package handler

import (
	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// CreatePermissionRequest is the payload for creating a permission.
type CreatePermissionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdatePermissionRequest is a partial update for a permission.
type UpdatePermissionRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// NewPermissionHandler wires the permission CRUD resource.
func NewPermissionHandler(repo shared.Repository[identity.Permission]) *ResourceHandler[identity.Permission, *identity.Permission, CreatePermissionRequest, UpdatePermissionRequest] {
	service := crud.NewService[identity.Permission, *identity.Permission](repo, nil)
	return NewResourceHandler(
		"/permissions",
		service,
		func(req CreatePermissionRequest) (*identity.Permission, error) {
			permission := identity.NewPermission(req.Name)
			permission.Description = req.Description
			return permission, nil
		},
		func(permission *identity.Permission, req UpdatePermissionRequest) error {
			if req.Name != nil {
				permission.Name = *req.Name
			}
			if req.Description != nil {
				permission.Description = *req.Description
			}
			return nil
		},
	)
}
