// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"
	"fmt"
	"io"

	authentity "contacts_backend/internal/feature/auth/domain/entity"
)

// UserRepository is the slice of user persistence this feature needs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uint) (*authentity.User, error)

	// UpdateAvatar overwrites the avatar URL of the user with the given
	// email and returns the updated user.
	UpdateAvatar(ctx context.Context, email, url string) (*authentity.User, error)
}

// ImageStore uploads an avatar image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, ownerEmail string, file io.Reader) (string, error)
}

// UsersUsecase provides profile operations for the authenticated user.
type UsersUsecase struct {
	users  UserRepository
	images ImageStore
}

// NewUsersUsecase creates a new UsersUsecase with its collaborators.
func NewUsersUsecase(users UserRepository, images ImageStore) *UsersUsecase {
	return &UsersUsecase{users: users, images: images}
}

// Me returns the profile of the user with the given ID.
func (u *UsersUsecase) Me(ctx context.Context, userID uint) (*authentity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateAvatar uploads the image to the external store and persists
// the returned URL on the user's record. Upload failures are returned
// to the caller, not swallowed like the generated default at signup.
func (u *UsersUsecase) UpdateAvatar(ctx context.Context, email string, file io.Reader) (*authentity.User, error) {
	url, err := u.images.Upload(ctx, email, file)
	if err != nil {
		return nil, fmt.Errorf("avatar upload failed: %w", err)
	}
	return u.users.UpdateAvatar(ctx, email, url)
}
