package repository

import (
	"errors"

	"blog-api/internal/errs"
	"blog-api/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by id with its author attached
func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns posts newest first. When publishedOnly is set, unpublished drafts
// are filtered out.
func (r *PostRepository) List(publishedOnly bool) ([]models.Post, error) {
	var posts []models.Post
	query := r.db.Preload("User").Order("created_at desc")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Find(&posts).Error
	return posts, err
}

// Exists reports whether a post with the given id exists
func (r *PostRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update persists changes to an existing post
func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post by id
func (r *PostRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
