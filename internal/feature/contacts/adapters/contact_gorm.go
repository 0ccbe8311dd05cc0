// Package adapters provides repository implementations for the contacts feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"contacts_backend/internal/feature/contacts/domain/entity"
	"contacts_backend/internal/feature/contacts/usecase"
)

// contactGorm is the GORM implementation of the ContactRepository interface.
type contactGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure contactGorm implements ContactRepository.
var _ usecase.ContactRepository = (*contactGorm)(nil)

// NewContactRepository creates a new contact repository on the given
// DB connection.
func NewContactRepository(db *gorm.DB) *contactGorm {
	return &contactGorm{db: db}
}

// Create persists a new contact. GORM fills in the assigned ID.
func (r *contactGorm) Create(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// List returns the owner's contacts. Filters are mutually exclusive:
// only the first non-empty one of name, lastname, email is applied.
func (r *contactGorm) List(ctx context.Context, ownerID uint, f usecase.Filters) ([]entity.Contact, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	switch {
	case f.Name != "":
		q = q.Where("name = ?", f.Name)
	case f.Lastname != "":
		q = q.Where("lastname = ?", f.Lastname)
	case f.Email != "":
		q = q.Where("email = ?", f.Email)
	}

	var contacts []entity.Contact
	if err := q.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByID retrieves a contact by id scoped to its owner.
// It returns usecase.ErrContactNotFound if no matching row exists.
func (r *contactGorm) FindByID(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	var contact entity.Contact
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// Update overwrites the five mutable fields inside one transaction so
// a partial write is never observable.
func (r *contactGorm) Update(ctx context.Context, id, ownerID uint, fields *entity.Contact) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&contact).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrContactNotFound
			}
			return err
		}
		contact.Name = fields.Name
		contact.Lastname = fields.Lastname
		contact.Email = fields.Email
		contact.PhoneNumber = fields.PhoneNumber
		contact.Birthday = fields.Birthday
		return tx.Save(&contact).Error
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Delete removes the contact and returns its detached in-memory state.
func (r *contactGorm) Delete(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&contact).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrContactNotFound
			}
			return err
		}
		return tx.Delete(&contact).Error
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpcomingBirthdays returns the owner's contacts whose birthday falls
// in the half-open window [today, today+7) by day-of-month within the
// current month. The window deliberately does not cross a month
// boundary: late in a month, birthdays early in the next month are not
// reported. The date arithmetic is done here rather than in SQL so the
// behavior is identical across database engines.
func (r *contactGorm) UpcomingBirthdays(ctx context.Context, ownerID uint, now time.Time) ([]entity.Contact, error) {
	var contacts []entity.Contact
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&contacts).Error; err != nil {
		return nil, err
	}

	upcoming := make([]entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Birthday.Month() != now.Month() {
			continue
		}
		day := c.Birthday.Day()
		if day >= now.Day() && day < now.Day()+7 {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}
