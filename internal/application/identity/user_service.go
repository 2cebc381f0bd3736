package identity

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RegisterInput carries the fields for open self-registration.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// CreateUserInput carries the fields a superuser may set when creating an
// account directly.
type CreateUserInput struct {
	Email       string
	Password    string
	FullName    string
	IsActive    *bool
	IsSuperuser *bool
}

// UpdateUserInput is a partial update for an account. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Email       *string
	Password    *string
	FullName    *string
	IsActive    *bool
	IsSuperuser *bool
}

// UpdateMeInput is the self-service profile update. Nil fields are left
// untouched.
type UpdateMeInput struct {
	Email    *string
	FullName *string
}

// UserService manages accounts. Listing, creating, updating and deleting
// arbitrary users requires a superuser actor; self-service registration and
// profile access are open to everyone.
type UserService struct {
	users identity.UserRepository
}

// NewUserService creates a user management service.
func NewUserService(users identity.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a regular active account. Emails are unique.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*identity.User, error) {
	user, err := identity.NewUser(input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, user.Email, nil); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns a page of accounts. Superusers only.
func (s *UserService) List(ctx context.Context, actor shared.Actor, page shared.Page) ([]identity.User, int64, error) {
	if !actor.IsSuperuser {
		return nil, 0, shared.ErrForbidden
	}
	page = page.Normalize()
	count, err := s.users.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	users, err := s.users.FindPage(ctx, nil, page)
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// Get returns a single account. Users may read themselves; anything else
// requires a superuser.
func (s *UserService) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*identity.User, error) {
	if !actor.IsSuperuser && actor.ID != id {
		return nil, shared.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

// UpdateMe applies a partial update to the actor's own profile.
func (s *UserService) UpdateMe(ctx context.Context, actor shared.Actor, input UpdateMeInput) (*identity.User, error) {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if input.Email != nil {
		normalized, err := identity.NormalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if err := s.ensureEmailFree(ctx, normalized, &actor.ID); err != nil {
			return nil, err
		}
		user.Email = normalized
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	user.Touch(time.Now())
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the actor's password after verifying the current
// one. The new password must differ from the current one.
func (s *UserService) ChangePassword(ctx context.Context, actor shared.Actor, current, next string) error {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(current) {
		return shared.NewDomainError("INCORRECT_PASSWORD", "Incorrect password")
	}
	if current == next {
		return shared.NewDomainError("SAME_PASSWORD", "New password cannot be the same as the current one")
	}
	if err := user.SetPassword(next); err != nil {
		return err
	}
	user.Touch(time.Now())
	return s.users.Save(ctx, user)
}

// Create creates an account with explicit flags. Superusers only.
func (s *UserService) Create(ctx context.Context, actor shared.Actor, input CreateUserInput) (*identity.User, error) {
	if !actor.IsSuperuser {
		return nil, shared.ErrForbidden
	}
	user, err := identity.NewUser(input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, err
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	if err := s.ensureEmailFree(ctx, user.Email, nil); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to an account. Superusers only.
func (s *UserService) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, input UpdateUserInput) (*identity.User, error) {
	if !actor.IsSuperuser {
		return nil, shared.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Email != nil {
		normalized, err := identity.NormalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if err := s.ensureEmailFree(ctx, normalized, &id); err != nil {
			return nil, err
		}
		user.Email = normalized
	}
	if input.Password != nil {
		if err := user.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	user.Touch(time.Now())
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account and, through the database cascade, everything
// it owns. Superusers only; a superuser cannot delete itself.
func (s *UserService) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*identity.User, error) {
	if !actor.IsSuperuser {
		return nil, shared.ErrForbidden
	}
	if actor.ID == id {
		return nil, shared.NewDomainError("SELF_DELETE", "Superusers cannot delete themselves")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, exclude *uuid.UUID) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if de, ok := err.(*shared.DomainError); ok && de.Code == "NOT_FOUND" {
			return nil
		}
		return err
	}
	if exclude != nil && existing.ID == *exclude {
		return nil
	}
	return shared.NewDomainError("EMAIL_TAKEN", "A user with this email already exists")
}
