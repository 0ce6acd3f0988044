package handler

import (
	"errors"
	"net/http"

	"blog-api/internal/errs"
	"blog-api/internal/service"
	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=5,max=20,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpassword"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token, always in the request body, never a
// header or cookie
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Signup handles user registration
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.Signup(req.Username, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			utils.ErrorResponse(c, http.StatusConflict, "A user with this email already exists.")
		case errors.Is(err, errs.ErrUsernameTaken):
			utils.ErrorResponse(c, http.StatusConflict, "A user with this username already exists.")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	utils.MessageResponse(c, http.StatusCreated, "User created successfully.")
}

// Login handles user authentication and issues an access/refresh token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	tokens, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			// Identical message whether the username or the password was wrong
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"tokens": tokens})
}

// Token exchanges a refresh token for a new access token
func (h *AuthHandler) Token(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	accessToken, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTokenExpired):
			utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token expired. Please log in again.")
		case errors.Is(err, errs.ErrTokenInvalid), errors.Is(err, errs.ErrTokenRevoked):
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid refresh token")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to refresh access token")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"accessToken": accessToken})
}

// Logout revokes the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		switch {
		case errors.Is(err, errs.ErrTokenExpired), errors.Is(err, errs.ErrTokenInvalid):
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid refresh token")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log out")
		}
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Logged out successfully.")
}
