// Package identity implements authentication and account management on top
// of the identity domain.
package identity

import (
	"context"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
)

// TokenIssuer mints access tokens for authenticated users. The concrete
// implementation lives in infrastructure.
type TokenIssuer interface {
	Generate(user *identity.User) (string, error)
}

// Token is a bearer access token returned by login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService verifies credentials and issues tokens.
type AuthService struct {
	users  identity.UserRepository
	issuer TokenIssuer
}

// NewAuthService creates an authentication service.
func NewAuthService(users identity.UserRepository, issuer TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Login verifies the email/password pair and returns a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	invalid := shared.NewDomainError("INVALID_CREDENTIALS", "Incorrect email or password")

	normalized, err := identity.NormalizeEmail(email)
	if err != nil {
		return nil, invalid
	}
	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, invalid
	}
	if !user.VerifyPassword(password) {
		return nil, invalid
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("INACTIVE_USER", "Inactive user")
	}

	token, err := s.issuer.Generate(user)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: token, TokenType: "bearer"}, nil
}
