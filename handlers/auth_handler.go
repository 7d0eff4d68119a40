package handlers

import (
	"errors"
	"net/http"

	"productsiksha-backend/repository"
	"productsiksha-backend/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login, password changes and schema init.
type AuthHandler struct {
	authService *service.AuthService
	store       repository.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, store repository.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// InitTables handles GET/POST /api/auth/init. Table creation is
// idempotent, so repeated calls are safe.
func (h *AuthHandler) InitTables(c *gin.Context) {
	if err := h.store.InitSchema(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database tables initialized successfully"})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"token": result.Token,
			"user":  gin.H{"id": result.User.ID, "email": result.User.Email},
		})
	}
}

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
	case errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
	case errors.Is(err, service.ErrEmailRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed: " + err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"token":   result.Token,
			"user":    gin.H{"id": result.User.ID, "email": result.User.Email},
			"message": "Account created successfully",
		})
	}
}

type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles POST /api/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), req.Email, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
	case errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 6 characters"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or current password"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Password update failed: " + err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully. Please login with your new password."})
	}
}
