// Package entity defines the domain entities for the contacts feature.
package entity

import "time"

// Contact is one entry in a user's address book.
// Every contact belongs to exactly one user; all queries and mutations
// are scoped by UserID so users never see each other's rows.
type Contact struct {
	// ID is the unique identifier for the contact.
	ID uint `gorm:"primaryKey"`

	// Name is the contact's first name.
	Name string `gorm:"size:50;not null"`

	// Lastname is the contact's last name.
	Lastname string `gorm:"size:50;not null"`

	// Email is the contact's email address.
	Email string `gorm:"size:50;not null"`

	// PhoneNumber is the contact's phone number in international form.
	PhoneNumber string `gorm:"size:30;not null"`

	// Birthday is the contact's date of birth. Only the calendar date is
	// meaningful; the time component is always midnight UTC.
	Birthday time.Time `gorm:"type:date"`

	// UserID is the owning user's ID.
	UserID uint `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (Contact) TableName() string {
	return "contacts"
}
