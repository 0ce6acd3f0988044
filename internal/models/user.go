package models

import "time"

// User represents the users table.
// RefreshToken holds the single active session token for the user; it is nil when
// the user is logged out. Overwriting it on login is the only way an older session
// gets invalidated, and nulling it is the only revocation mechanism.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:20" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null;size:100" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	IsAuthor     bool      `gorm:"default:false" json:"isAuthor"`
	RefreshToken *string   `gorm:"size:512" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// PublicUser is the trimmed author projection embedded in post and comment
// responses. Username only; emails stay private to the author-only user listing.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// TableName maps PublicUser onto the users table
func (PublicUser) TableName() string {
	return "users"
}
