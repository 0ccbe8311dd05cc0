package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts_backend/internal/feature/contacts/domain/entity"
)

// mockContactRepository is a mock implementation of the ContactRepository interface.
type mockContactRepository struct {
	CreateFunc            func(ctx context.Context, contact *entity.Contact) error
	ListFunc              func(ctx context.Context, ownerID uint, f Filters) ([]entity.Contact, error)
	FindByIDFunc          func(ctx context.Context, id, ownerID uint) (*entity.Contact, error)
	UpdateFunc            func(ctx context.Context, id, ownerID uint, fields *entity.Contact) (*entity.Contact, error)
	DeleteFunc            func(ctx context.Context, id, ownerID uint) (*entity.Contact, error)
	UpcomingBirthdaysFunc func(ctx context.Context, ownerID uint, now time.Time) ([]entity.Contact, error)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	contact.ID = 1
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, ownerID uint, f Filters) ([]entity.Contact, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID, f)
	}
	return nil, nil
}

func (m *mockContactRepository) FindByID(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, ownerID)
	}
	return nil, ErrContactNotFound
}

func (m *mockContactRepository) Update(ctx context.Context, id, ownerID uint, fields *entity.Contact) (*entity.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, ownerID, fields)
	}
	return nil, ErrContactNotFound
}

func (m *mockContactRepository) Delete(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return nil, ErrContactNotFound
}

func (m *mockContactRepository) UpcomingBirthdays(ctx context.Context, ownerID uint, now time.Time) ([]entity.Contact, error) {
	if m.UpcomingBirthdaysFunc != nil {
		return m.UpcomingBirthdaysFunc(ctx, ownerID, now)
	}
	return nil, nil
}

func TestContactsUsecase_Create(t *testing.T) {
	t.Run("forces ownership and drops a client-supplied id", func(t *testing.T) {
		var created *entity.Contact
		repo := &mockContactRepository{
			CreateFunc: func(ctx context.Context, contact *entity.Contact) error {
				created = contact
				contact.ID = 10
				return nil
			},
		}

		uc := NewContactsUsecase(repo)
		contact, err := uc.Create(context.Background(), 1, &entity.Contact{
			ID:     999, // must not survive
			Name:   "Bob",
			UserID: 42, // must not survive either
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(1), created.UserID, "owner comes from the caller argument")
		assert.Equal(t, uint(10), contact.ID, "assigned id is returned")
	})
}

func TestContactsUsecase_UpcomingBirthdays(t *testing.T) {
	t.Run("queries with the injected clock", func(t *testing.T) {
		fixed := time.Date(2024, time.June, 25, 12, 0, 0, 0, time.UTC)
		var gotNow time.Time
		repo := &mockContactRepository{
			UpcomingBirthdaysFunc: func(ctx context.Context, ownerID uint, now time.Time) ([]entity.Contact, error) {
				gotNow = now
				return []entity.Contact{{ID: 1}}, nil
			},
		}

		uc := NewContactsUsecase(repo)
		uc.now = func() time.Time { return fixed }

		contacts, err := uc.UpcomingBirthdays(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, contacts, 1)
		assert.Equal(t, fixed, gotNow)
	})
}
