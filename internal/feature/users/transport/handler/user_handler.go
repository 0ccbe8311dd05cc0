// Package handler provides HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "contacts_backend/internal/feature/auth/domain/entity"
	authusecase "contacts_backend/internal/feature/auth/usecase"
	"contacts_backend/internal/feature/users/transport/http/dto"
	jwtmw "contacts_backend/internal/platform/jwt"
)

// maxAvatarBytes caps avatar uploads at 5 MiB.
const maxAvatarBytes = 5 << 20

// UsersUsecase defines the profile operations this handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UsersUsecase interface {
	Me(ctx context.Context, userID uint) (*authentity.User, error)
	UpdateAvatar(ctx context.Context, email string, file io.Reader) (*authentity.User, error)
}

// UserHandler handles HTTP requests for the current user's profile.
type UserHandler struct {
	uc UsersUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(uc UsersUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.uc.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			// Token is valid but the account is gone.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		slog.Error("failed to load profile", "user_id", principal.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}

// UpdateAvatar handles PATCH /users/avatar with a multipart "file" part.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	principal, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "user_id", principal.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	user, err := h.uc.UpdateAvatar(c.Request.Context(), principal.Email, file)
	if err != nil {
		slog.Error("avatar update failed", "user_id", principal.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar update failed"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}
