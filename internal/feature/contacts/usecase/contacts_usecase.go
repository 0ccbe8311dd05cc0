package usecase

import (
	"context"
	"time"

	"contacts_backend/internal/feature/contacts/domain/entity"
)

// ContactsUsecase provides the application logic for address-book
// operations. It owns nothing beyond owner scoping and clock
// injection; persistence rules live in the repository.
type ContactsUsecase struct {
	repo ContactRepository
	now  func() time.Time
}

// NewContactsUsecase creates a new ContactsUsecase with the given repository.
func NewContactsUsecase(repo ContactRepository) *ContactsUsecase {
	return &ContactsUsecase{repo: repo, now: time.Now}
}

// Create persists a new contact owned by ownerID and returns it with
// its assigned ID.
func (u *ContactsUsecase) Create(ctx context.Context, ownerID uint, contact *entity.Contact) (*entity.Contact, error) {
	contact.ID = 0
	contact.UserID = ownerID
	if err := u.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// List returns the owner's contacts narrowed by the first non-empty
// filter.
func (u *ContactsUsecase) List(ctx context.Context, ownerID uint, f Filters) ([]entity.Contact, error) {
	return u.repo.List(ctx, ownerID, f)
}

// Get returns a single owned contact or ErrContactNotFound.
func (u *ContactsUsecase) Get(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	return u.repo.FindByID(ctx, id, ownerID)
}

// Update replaces the contact's mutable fields and returns the updated
// row, or ErrContactNotFound.
func (u *ContactsUsecase) Update(ctx context.Context, id, ownerID uint, fields *entity.Contact) (*entity.Contact, error) {
	return u.repo.Update(ctx, id, ownerID, fields)
}

// Delete removes the contact and returns its prior state, or
// ErrContactNotFound.
func (u *ContactsUsecase) Delete(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	return u.repo.Delete(ctx, id, ownerID)
}

// UpcomingBirthdays returns the owner's contacts with a birthday in
// the next seven days, evaluated against the injected clock.
func (u *ContactsUsecase) UpcomingBirthdays(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	return u.repo.UpcomingBirthdays(ctx, ownerID, u.now())
}
