package models

import "time"

// Comment represents the comments table
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"not null;type:text" json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	User      PublicUser `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}
