package identity_test

import (
	"strings"
	"testing"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		user, err := identity.NewUser("alice@example.com", "secret-pass", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.FullName)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsSuperuser)
		assert.NotEqual(t, "secret-pass", user.HashedPassword)
	})

	t.Run("email is normalized", func(t *testing.T) {
		user, err := identity.NewUser("  Alice@Example.COM ", "secret-pass", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@b", "a @example.com"} {
			_, err := identity.NewUser(email, "secret-pass", "Alice")
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr, "email %q", email)
			assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
		}
	})

	t.Run("password bounds", func(t *testing.T) {
		_, err := identity.NewUser("alice@example.com", "short", "Alice")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)

		_, err = identity.NewUser("alice@example.com", strings.Repeat("x", 41), "Alice")
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)

		_, err = identity.NewUser("alice@example.com", strings.Repeat("x", 40), "Alice")
		assert.NoError(t, err)
	})
}

func TestVerifyPassword(t *testing.T) {
	user, err := identity.NewUser("alice@example.com", "secret-pass", "Alice")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("secret-pass"))
	assert.False(t, user.VerifyPassword("wrong-pass"))
	assert.False(t, user.VerifyPassword(""))
}

func TestSetPassword(t *testing.T) {
	user, err := identity.NewUser("alice@example.com", "secret-pass", "Alice")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("another-pass"))
	assert.False(t, user.VerifyPassword("secret-pass"))
	assert.True(t, user.VerifyPassword("another-pass"))

	require.Error(t, user.SetPassword("nope"))
	assert.True(t, user.VerifyPassword("another-pass"))
}

func TestActor(t *testing.T) {
	user, err := identity.NewUser("root@example.com", "secret-pass", "Root")
	require.NoError(t, err)
	user.IsSuperuser = true

	actor := user.Actor()
	assert.Equal(t, user.ID, actor.ID)
	assert.True(t, actor.IsSuperuser)
	assert.True(t, actor.IsActive)
}
