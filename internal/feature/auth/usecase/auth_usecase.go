package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"contacts_backend/internal/feature/auth/domain/entity"
)

// TokenGenerator issues and parses the JWT tokens used by the auth flows.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	GenerateAccessToken(userID uint, email string) (string, error)
	GenerateRefreshToken(userID uint, email string) (string, error)
	GenerateEmailToken(email string) (string, error)
	ParseRefreshToken(token string) (string, error)
	ParseEmailToken(token string) (string, error)
}

// AvatarGenerator produces a default avatar URL for an email address.
type AvatarGenerator interface {
	Generate(email string) (string, error)
}

// ConfirmationMailer delivers the emailed confirmation link.
type ConfirmationMailer interface {
	SendConfirmation(email, username, token string) error
}

// TokenPair is the access/refresh token pair issued on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase implements registration, login, token refresh, logout
// and email confirmation.
type AuthUsecase struct {
	users   UserRepository
	tokens  TokenGenerator
	avatars AvatarGenerator
	mailer  ConfirmationMailer
}

// NewAuthUsecase creates a new AuthUsecase with its collaborators.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, avatars AvatarGenerator, mailer ConfirmationMailer) *AuthUsecase {
	return &AuthUsecase{
		users:   users,
		tokens:  tokens,
		avatars: avatars,
		mailer:  mailer,
	}
}

// Signup registers a new unconfirmed user with a hashed password.
// Avatar generation and confirmation mail are best-effort: either
// collaborator failing must not abort registration.
func (u *AuthUsecase) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	if url, err := u.avatars.Generate(email); err != nil {
		slog.Warn("avatar generation failed, leaving avatar unset", "email", email, "error", err)
	} else {
		user.Avatar = &url
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if token, err := u.tokens.GenerateEmailToken(email); err != nil {
		slog.Warn("failed to generate confirmation token", "email", email, "error", err)
	} else if err := u.mailer.SendConfirmation(email, username, token); err != nil {
		slog.Warn("failed to send confirmation mail", "email", email, "error", err)
	}

	return user, nil
}

// Login authenticates a user and returns a fresh token pair.
// It validates the password with bcrypt and persists the new refresh
// token. A bcrypt comparison runs even when the user does not exist so
// response timing does not reveal which emails are registered.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		// A store failure is not a credential problem.
		return nil, err
	}

	// Dummy hash compared when the user is missing.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Confirmed {
		return nil, ErrEmailNotConfirmed
	}

	return u.issueTokens(ctx, user)
}

// Refresh rotates a valid refresh token into a new token pair.
// A syntactically valid token that does not match the stored one is
// treated as theft: the stored token is revoked and the call fails.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	email, err := u.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		if err := u.users.UpdateRefreshToken(ctx, user.ID, nil); err != nil {
			slog.Error("failed to revoke refresh token", "user_id", user.ID, "error", err)
		}
		return nil, ErrInvalidRefreshToken
	}

	return u.issueTokens(ctx, user)
}

// Logout clears the user's stored refresh token.
func (u *AuthUsecase) Logout(ctx context.Context, userID uint) error {
	return u.users.UpdateRefreshToken(ctx, userID, nil)
}

// ConfirmEmail flips the Confirmed flag for the user named in a valid
// confirmation token. Confirming twice returns ErrEmailAlreadyConfirmed.
func (u *AuthUsecase) ConfirmEmail(ctx context.Context, token string) error {
	email, err := u.tokens.ParseEmailToken(token)
	if err != nil {
		return ErrInvalidEmailToken
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidEmailToken
		}
		return err
	}
	if user.Confirmed {
		return ErrEmailAlreadyConfirmed
	}

	return u.users.ConfirmEmail(ctx, email)
}

func (u *AuthUsecase) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := u.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := u.users.UpdateRefreshToken(ctx, user.ID, &refresh); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
