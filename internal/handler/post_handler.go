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

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required,max=50"`
	Text        string `json:"text" binding:"required,max=12000"`
	IsPublished *bool  `json:"isPublished" binding:"required"`
}

type UpdatePostRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=50"`
	Text        *string `json:"text" binding:"omitempty,min=1,max=12000"`
	IsPublished *bool   `json:"isPublished"`
}

// List returns posts newest first. Anonymous and non-author viewers get published
// posts only; authors also see drafts.
func (h *PostHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	viewerIsAuthor := user != nil && user.IsAuthor

	posts, err := h.postService.List(viewerIsAuthor)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"posts": posts})
}

// Create creates a post owned by the authenticated author
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: You must be logged in to access this resource")
		return
	}

	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.Create(user.ID, req.Title, req.Text, *req.IsPublished)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Post created successfully.", gin.H{"post": post})
}

// Get returns a single post. Unpublished posts are indistinguishable from missing
// ones for non-authors.
func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	user, _ := middleware.CurrentUser(c)
	viewerIsAuthor := user != nil && user.IsAuthor

	post, err := h.postService.Get(postID, viewerIsAuthor)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Could not find post")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success", gin.H{"post": post})
}

// Update applies new title/text/publish state to a post
func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.Update(postID, service.UpdatePostInput{
		Title:       req.Title,
		Text:        req.Text,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, errs.ErrNoNewData):
			utils.ErrorResponse(c, http.StatusBadRequest, "Bad Request: No new data provided")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Successfully updated post.", gin.H{"post": post})
}

// Delete removes a post and all comments referencing it
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	if err := h.postService.Delete(postID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Successfully deleted post")
}
