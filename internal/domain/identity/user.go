package identity

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Password length bounds enforced at registration and password change.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 40
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an account in the system. Every business entity is owned
// by exactly one user; deleting a user cascades to everything it owns.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false" json:"is_superuser"`
	DateCreated    time.Time `gorm:"not null;index" json:"date_created"`
	DateUpdated    time.Time `gorm:"not null" json:"date_updated"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active, non-superuser account.
func NewUser(email, password, fullName string) (*User, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Email:          email,
		FullName:       fullName,
		HashedPassword: hash,
		IsActive:       true,
		DateCreated:    now,
		DateUpdated:    now,
	}, nil
}

// Actor returns the identity triple consumed by the CRUD core.
func (u *User) Actor() shared.Actor {
	return shared.Actor{
		ID:          u.ID,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
	}
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
	return err == nil
}

// SetPassword validates and replaces the stored password hash.
func (u *User) SetPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.HashedPassword = hash
	u.DateUpdated = time.Now().UTC()
	return nil
}

// SetEmail validates and replaces the account email.
func (u *User) SetEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.Email = normalized
	u.DateUpdated = time.Now().UTC()
	return nil
}

// Touch refreshes the update timestamp.
func (u *User) Touch(now time.Time) {
	u.DateUpdated = now.UTC()
}

// NormalizeEmail validates and canonicalizes an email address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > 255 {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email must be between 1 and 255 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return email, nil
}

// HashPassword validates password bounds and returns the bcrypt hash.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return "", shared.NewDomainError("INVALID_PASSWORD", "Password must be between 8 and 40 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	return string(hash), nil
}

// UserRepository is the persistence contract for accounts. It extends the
// generic gateway with the email lookup used by authentication.
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
}
