package handler

import (
	"errors"
	"net/http"

	"blog-api/internal/errs"
	"blog-api/internal/service"
	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=5,max=20,username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,strongpassword"`
}

// List returns username/email summaries for all users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"users": users})
}

// Get returns a single user summary
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Could not find user")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"user": user})
}

// Update changes a user's own username, email, or password
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(userID, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Could not find user")
		case errors.Is(err, errs.ErrNoNewData):
			utils.ErrorResponse(c, http.StatusBadRequest, "Bad Request: No new data provided")
		case errors.Is(err, errs.ErrEmailTaken):
			utils.ErrorResponse(c, http.StatusConflict, "A user with this email already exists.")
		case errors.Is(err, errs.ErrUsernameTaken):
			utils.ErrorResponse(c, http.StatusConflict, "A user with this username already exists.")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Successfully updated user.", gin.H{"user": user})
}

// Delete removes a user account. Authored posts are not cascaded.
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(userID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Could not find user")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Successfully deleted user")
}
