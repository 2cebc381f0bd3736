package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Auth context keys
const (
	ActorKey       = "actor"
	CurrentUserKey = "current_user"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// CurrentUser resolves the bearer token to a live user account and stores
// the user and its actor triple on the context. Requests without a valid
// token, or whose user no longer exists or is inactive, are rejected with
// 401.
func CurrentUser(jwtService *auth.JWTService, users identity.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "Missing token")
			return
		}

		claims, err := jwtService.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		userID, err := claims.ParseUserID()
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, "Inactive user")
			return
		}

		ctx, _ := logger.WithUserID(c.Request.Context(), logger.FromContext(c.Request.Context()), user.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Set(CurrentUserKey, user)
		c.Set(ActorKey, user.Actor())
		c.Next()
	}
}

// GetActor retrieves the authenticated actor from the context.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

// GetCurrentUser retrieves the authenticated user from the context.
func GetCurrentUser(c *gin.Context) (*identity.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*identity.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := c.GetString(RequestIDKey)
	c.Writer.Header().Set("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, requestID))
}
