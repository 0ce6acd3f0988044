package models

import "time"

// Post represents the posts table
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null;size:50" json:"title"`
	Text        string    `gorm:"not null;type:text" json:"text"`
	IsPublished bool      `gorm:"default:true" json:"isPublished"`
	CreatedAt   time.Time  `json:"created_at"`
	User        PublicUser `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Post model
func (Post) TableName() string {
	return "posts"
}
