package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listOrder keeps pagination deterministic across requests.
const listOrder = "date_created ASC, id ASC"

// GormRepository implements shared.Repository for any owner-scoped entity
// using GORM.
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository over the given connection.
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// FindByID finds an entity by its ID
func (r *GormRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindPage returns a window of entities, optionally filtered by owner.
func (r *GormRepository[T]) FindPage(ctx context.Context, owner *uuid.UUID, page shared.Page) ([]T, error) {
	var entities []T
	q := r.db.WithContext(ctx).Model(new(T)).Order(listOrder)
	if owner != nil {
		q = q.Where("owner_id = ?", *owner)
	}
	if err := q.Offset(page.Skip).Limit(page.Limit).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Count returns the number of entities, optionally filtered by owner.
func (r *GormRepository[T]) Count(ctx context.Context, owner *uuid.UUID) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(new(T))
	if owner != nil {
		q = q.Where("owner_id = ?", *owner)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a new entity
func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Save persists all fields of an existing entity
func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes an entity by ID. Deleting an absent id yields ErrNotFound.
func (r *GormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormUserRepository implements identity.UserRepository. Users are not
// owner-scoped; the owner predicate on the page queries is ignored.
type GormUserRepository struct {
	GormRepository[identity.User]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{GormRepository[identity.User]{db: db}}
}

// FindPage returns a window of users ordered by creation time.
func (r *GormUserRepository) FindPage(ctx context.Context, _ *uuid.UUID, page shared.Page) ([]identity.User, error) {
	var users []identity.User
	err := r.db.WithContext(ctx).
		Order(listOrder).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users.
func (r *GormUserRepository) Count(ctx context.Context, _ *uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByEmail finds a user by normalized email.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
