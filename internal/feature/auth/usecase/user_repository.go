package usecase

import (
	"context"

	"contacts_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateRefreshToken overwrites the user's stored refresh token.
	// A nil token logs the user out.
	UpdateRefreshToken(ctx context.Context, userID uint, token *string) error

	// ConfirmEmail marks the user with the given email as confirmed.
	// It returns ErrUserNotFound if the user does not exist.
	ConfirmEmail(ctx context.Context, email string) error

	// UpdateAvatar overwrites the avatar URL of the user with the given
	// email and returns the updated user.
	UpdateAvatar(ctx context.Context, email, url string) (*entity.User, error)
}
