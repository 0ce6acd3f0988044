package handler

import (
	"errors"
	"net/http"

	"blog-api/internal/errs"
	"blog-api/internal/middleware"
	"blog-api/internal/service"
	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required,max=12000"`
}

// List returns all comments on a post
func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	comments, err := h.commentService.ListForPost(postID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"comments": comments})
}

// Create creates a comment on a post by the authenticated user
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: You must be logged in to access this resource")
		return
	}

	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(postID, user.ID, req.Text)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Comment created successfully", gin.H{"comment": comment})
}

// Get returns a single comment on a post
func (h *CommentHandler) Get(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(postID, commentID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Comment not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch comment")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"comment": comment})
}

// Update changes a comment's text; only its own author may do so
func (h *CommentHandler) Update(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: You must be logged in to access this resource")
		return
	}

	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Update(postID, commentID, user.ID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, errs.ErrNotOwner):
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: Cannot update other users' comments")
		case errors.Is(err, errs.ErrNoNewData):
			utils.ErrorResponse(c, http.StatusBadRequest, "Bad Request: No new data provided")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update comment")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Successfully updated comment.", gin.H{"comment": comment})
}

// Delete removes a comment; only its own author may do so
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: You must be logged in to access this resource")
		return
	}

	if err := h.commentService.Delete(postID, commentID, user.ID); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, errs.ErrNotOwner):
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: Cannot delete other users' comments")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Successfully deleted comment")
}
