package usecase

import (
	"context"
	"time"

	"contacts_backend/internal/feature/contacts/domain/entity"
)

// Filters narrows a contact listing. At most one filter is applied:
// Name takes precedence over Lastname, which takes precedence over
// Email. All empty means no filtering.
type Filters struct {
	Name     string
	Lastname string
	Email    string
}

// ContactRepository abstracts the persistence layer for contact entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Every method is scoped to ownerID so one user can never observe or
// mutate another user's contacts.
type ContactRepository interface {
	// Create persists a new contact and fills in its assigned ID.
	Create(ctx context.Context, contact *entity.Contact) error

	// List returns the owner's contacts, narrowed by the first non-empty
	// filter in precedence order.
	List(ctx context.Context, ownerID uint, f Filters) ([]entity.Contact, error)

	// FindByID retrieves a single contact by id and owner.
	// It returns ErrContactNotFound if no matching row exists.
	FindByID(ctx context.Context, id, ownerID uint) (*entity.Contact, error)

	// Update overwrites the five mutable fields of the contact in one
	// transaction and returns the updated row, or ErrContactNotFound.
	Update(ctx context.Context, id, ownerID uint, fields *entity.Contact) (*entity.Contact, error)

	// Delete removes the contact and returns its prior state, or
	// ErrContactNotFound.
	Delete(ctx context.Context, id, ownerID uint) (*entity.Contact, error)

	// UpcomingBirthdays returns the owner's contacts whose birthday falls
	// within the next seven days of the current month, relative to now.
	UpcomingBirthdays(ctx context.Context, ownerID uint, now time.Time) ([]entity.Contact, error)
}
