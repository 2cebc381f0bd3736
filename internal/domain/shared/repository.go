package shared

import (
	"context"

	"github.com/google/uuid"
)

// Pagination defaults. The source system applied skip=0/limit=100 and left
// limit unbounded; the cap closes that resource-exhaustion gap.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page describes an offset/limit window over a filtered row set.
type Page struct {
	Skip  int
	Limit int
}

// Normalize applies defaults and clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Repository is the persistence gateway contract for a single entity type.
// The owner predicate is nil for "all rows" (superuser) or the owning user's
// ID for tenant-scoped access. Listing order is deterministic: creation time,
// then id.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindPage(ctx context.Context, owner *uuid.UUID, page Page) ([]T, error)
	Count(ctx context.Context, owner *uuid.UUID) (int64, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}
