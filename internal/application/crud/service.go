// Package crud implements the ownership-scoped CRUD core shared by every
// owner-scoped entity. Handlers supply entity construction and mutation as
// closures; access control, owner assignment, pagination and timestamp
// bookkeeping live here once.
package crud

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReferenceCheck validates cross-entity references carried by a new or
// updated entity (for example a customer's customer_type_id). It runs after
// the entity is built or mutated and before it is persisted.
type ReferenceCheck[T any] func(ctx context.Context, actor shared.Actor, entity *T) error

// Service is the generic ownership-scoped CRUD application service. T is
// the entity struct, PT its pointer type carrying the ownership accessors.
type Service[T any, PT interface {
	*T
	shared.Ownable
}] struct {
	repo     shared.Repository[T]
	refCheck ReferenceCheck[T]
}

// NewService creates a CRUD service over the given repository. refCheck may
// be nil when the entity carries no cross-entity references.
func NewService[T any, PT interface {
	*T
	shared.Ownable
}](repo shared.Repository[T], refCheck ReferenceCheck[T]) *Service[T, PT] {
	return &Service[T, PT]{repo: repo, refCheck: refCheck}
}

// List returns a page of entities visible to the actor along with the total
// count of visible rows. Regular users only ever see their own rows;
// superusers see everything.
func (s *Service[T, PT]) List(ctx context.Context, actor shared.Actor, page shared.Page) ([]T, int64, error) {
	page = page.Normalize()

	var owner *uuid.UUID
	if !actor.IsSuperuser {
		id := actor.ID
		owner = &id
	}

	count, err := s.repo.Count(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.repo.FindPage(ctx, owner, page)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// Get returns a single entity by id. Rows owned by another user yield
// ErrForbidden, never ErrNotFound, so a caller can distinguish the two only
// for rows that actually exist.
func (s *Service[T, PT]) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(PT(entity).GetOwnerID()) {
		return nil, shared.ErrForbidden
	}
	return entity, nil
}

// Create builds an entity via the supplied constructor, assigns the actor
// as owner, validates references and persists it. The owner always comes
// from the actor, request payloads cannot set it.
func (s *Service[T, PT]) Create(ctx context.Context, actor shared.Actor, build func() (*T, error)) (*T, error) {
	entity, err := build()
	if err != nil {
		return nil, err
	}
	PT(entity).SetOwner(actor.ID)
	if s.refCheck != nil {
		if err := s.refCheck(ctx, actor, entity); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update loads the entity, checks access, applies the supplied mutation and
// persists the result. Only fields the mutation touches change; the update
// timestamp is refreshed on every successful update.
func (s *Service[T, PT]) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, apply func(entity *T) error) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(PT(entity).GetOwnerID()) {
		return nil, shared.ErrForbidden
	}
	if err := apply(entity); err != nil {
		return nil, err
	}
	if s.refCheck != nil {
		if err := s.refCheck(ctx, actor, entity); err != nil {
			return nil, err
		}
	}
	PT(entity).Touch(time.Now())
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes the entity after an access check. Dependent rows go with
// it through the database cascade. Deleting an absent id yields ErrNotFound.
func (s *Service[T, PT]) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(PT(entity).GetOwnerID()) {
		return nil, shared.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return entity, nil
}

// RequireOwned verifies a referenced row exists and is visible to the actor.
// Missing and foreign rows both map to INVALID_REFERENCE so a tenant cannot
// probe for other tenants' ids through reference fields.
func RequireOwned[T any, PT interface {
	*T
	shared.Ownable
}](ctx context.Context, repo shared.Repository[T], actor shared.Actor, id uuid.UUID, field string) error {
	entity, err := repo.FindByID(ctx, id)
	if err != nil {
		if de, ok := err.(*shared.DomainError); ok && de.Code == "NOT_FOUND" {
			return invalidReference(field)
		}
		return err
	}
	if !actor.CanAccess(PT(entity).GetOwnerID()) {
		return invalidReference(field)
	}
	return nil
}

func invalidReference(field string) error {
	return shared.NewDomainError("INVALID_REFERENCE", "Referenced "+field+" not found")
}
