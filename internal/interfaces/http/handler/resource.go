package handler

import (
	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ResourceHandler exposes a CRUD service over HTTP for one entity type.
// C and U are the create and update request DTOs; build turns a create
// request into a new entity and apply folds an update request into an
// existing one.
type ResourceHandler[T any, PT interface {
	*T
	shared.Ownable
}, C any, U any] struct {
	BaseHandler
	path    string
	service *crud.Service[T, PT]
	build   func(req C) (*T, error)
	apply   func(entity *T, req U) error
}

// NewResourceHandler creates a resource handler mounted at path.
func NewResourceHandler[T any, PT interface {
	*T
	shared.Ownable
}, C any, U any](
	path string,
	service *crud.Service[T, PT],
	build func(req C) (*T, error),
	apply func(entity *T, req U) error,
) *ResourceHandler[T, PT, C, U] {
	return &ResourceHandler[T, PT, C, U]{
		path:    path,
		service: service,
		build:   build,
		apply:   apply,
	}
}

// RegisterRoutes registers the CRUD routes for this resource
func (h *ResourceHandler[T, PT, C, U]) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(h.path)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// List returns a page of entities visible to the actor
func (h *ResourceHandler[T, PT, C, U]) List(c *gin.Context) {
	actor, ok := h.mustGetActor(c)
	if !ok {
		return
	}
	page, ok := h.bindPage(c)
	if !ok {
		return
	}

	items, count, err := h.service.List(c.Request.Context(), actor, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Collection(c, items, count, page)
}

// Get returns a single entity by id
func (h *ResourceHandler[T, PT, C, U]) Get(c *gin.Context) {
	actor, ok := h.mustGetActor(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entity)
}

// Create creates an entity owned by the actor
func (h *ResourceHandler[T, PT, C, U]) Create(c *gin.Context) {
	actor, ok := h.mustGetActor(c)
	if !ok {
		return
	}
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err.Error())
		return
	}

	entity, err := h.service.Create(c.Request.Context(), actor, func() (*T, error) {
		return h.build(req)
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entity)
}

// Update applies a partial update to an entity
func (h *ResourceHandler[T, PT, C, U]) Update(c *gin.Context) {
	actor, ok := h.mustGetActor(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err.Error())
		return
	}

	entity, err := h.service.Update(c.Request.Context(), actor, id, func(entity *T) error {
		return h.apply(entity, req)
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entity)
}

// Delete removes an entity and confirms with a message
func (h *ResourceHandler[T, PT, C, U]) Delete(c *gin.Context) {
	actor, ok := h.mustGetActor(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "Deleted successfully"})
}
