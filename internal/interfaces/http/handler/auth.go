package handler

import (
	"net/http"

	appidentity "github.com/backoffice/backend/internal/application/identity"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// LoginRequest is the credential payload for token issuing.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the payload for open self-registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// UpdateMeRequest is the self-service profile update payload.
type UpdateMeRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}

// ChangePasswordRequest carries the current and replacement passwords.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// AuthHandler serves login, registration and the current-user endpoints.
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	userService *appidentity.UserService
	currentUser gin.HandlerFunc
}

// NewAuthHandler creates an auth handler. currentUser is the middleware
// protecting the /auth/me endpoint.
func NewAuthHandler(authService *appidentity.AuthService, userService *appidentity.UserService, currentUser gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		currentUser: currentUser,
	}
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", h.currentUser, h.Me)
		auth.PUT("/me", h.currentUser, h.UpdateMe)
		auth.PUT("/me/password", h.currentUser, h.ChangePassword)
	}
}

// Login verifies credentials and returns a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, token)
}

// Register creates a regular account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), appidentity.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, user)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Not authenticated")
		return
	}
	h.Success(c, user)
}

// UpdateMe applies a partial update to the authenticated user's profile
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err.Error())
		return
	}

	updated, err := h.userService.UpdateMe(c.Request.Context(), user.Actor(), appidentity.UpdateMeInput{
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// ChangePassword replaces the authenticated user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err.Error())
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), user.Actor(), req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "Password updated successfully"})
}
