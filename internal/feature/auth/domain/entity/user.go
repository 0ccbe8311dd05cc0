// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display name chosen at registration.
	Username string `gorm:"size:50;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:250;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Avatar is the URL of the user's avatar image. It is nil until a
	// generated image is assigned at registration or an upload replaces it.
	Avatar *string `gorm:"size:255"`

	// Confirmed reports whether the user has followed the emailed
	// confirmation link. New users start unconfirmed.
	Confirmed bool `gorm:"not null;default:false"`

	// RefreshToken is the currently valid refresh token, or nil when the
	// user is logged out.
	RefreshToken *string `gorm:"size:1024"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
