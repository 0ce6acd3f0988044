package service

import "blog-api/internal/models"

// Store interfaces consumed by the services. The gorm repositories in
// internal/repository implement them; tests substitute in-memory fakes.

type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	SetRefreshToken(userID uint, token *string) error
	Delete(id uint) error
}

type PostStore interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	List(publishedOnly bool) ([]models.Post, error)
	Exists(id uint) (bool, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

type CommentStore interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	ListByPost(postID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	DeleteByPost(postID uint) error
}
