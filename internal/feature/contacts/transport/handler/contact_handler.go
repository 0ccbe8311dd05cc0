// Package handler provides HTTP handlers for the contacts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contacts_backend/internal/feature/contacts/domain/entity"
	"contacts_backend/internal/feature/contacts/transport/http/dto"
	"contacts_backend/internal/feature/contacts/usecase"
	jwtmw "contacts_backend/internal/platform/jwt"
)

// ContactsUsecase defines the contact operations this handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ContactsUsecase interface {
	Create(ctx context.Context, ownerID uint, contact *entity.Contact) (*entity.Contact, error)
	List(ctx context.Context, ownerID uint, f usecase.Filters) ([]entity.Contact, error)
	Get(ctx context.Context, id, ownerID uint) (*entity.Contact, error)
	Update(ctx context.Context, id, ownerID uint, fields *entity.Contact) (*entity.Contact, error)
	Delete(ctx context.Context, id, ownerID uint) (*entity.Contact, error)
	UpcomingBirthdays(ctx context.Context, ownerID uint) ([]entity.Contact, error)
}

// ContactHandler handles HTTP requests for the address book.
// Every route runs behind the auth middleware; the owner is always the
// resolved principal, never a client-supplied value.
type ContactHandler struct {
	uc ContactsUsecase
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(uc ContactsUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List handles GET /contacts.
// Optional query parameters name, lastname and email narrow the
// listing; only the first non-empty one applies. When nearest_birthday
// is true the filters are ignored and the birthday query runs instead.
func (h *ContactHandler) List(c *gin.Context) {
	principal, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var (
		contacts []entity.Contact
		err      error
	)
	if nearest, _ := strconv.ParseBool(c.Query("nearest_birthday")); nearest {
		contacts, err = h.uc.UpcomingBirthdays(c.Request.Context(), principal.UserID)
	} else {
		contacts, err = h.uc.List(c.Request.Context(), principal.UserID, usecase.Filters{
			Name:     c.Query("name"),
			Lastname: c.Query("lastname"),
			Email:    c.Query("email"),
		})
	}
	if err != nil {
		slog.Error("failed to list contacts", "user_id", principal.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ContactListRes(contacts))
}

// Create handles POST /contacts.
// The route is rate-limited by middleware; this handler only validates
// and delegates.
func (h *ContactHandler) Create(c *gin.Context) {
	principal, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), principal.UserID, req.ToEntity())
	if err != nil {
		slog.Error("failed to create contact", "user_id", principal.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.ContactResFromEntity(created))
}

// Get handles GET /contacts/:id.
// Absence, including rows owned by someone else, is a 404.
func (h *ContactHandler) Get(c *gin.Context) {
	principal, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	contact, err := h.uc.Get(c.Request.Context(), id, principal.UserID)
	if err != nil {
		h.renderLookupError(c, principal.UserID, id, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContactResFromEntity(contact))
}

// Update handles PUT /contacts/:id, replacing all five mutable fields.
func (h *ContactHandler) Update(c *gin.Context) {
	principal, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), id, principal.UserID, req.ToEntity())
	if err != nil {
		h.renderLookupError(c, principal.UserID, id, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContactResFromEntity(updated))
}

// Delete handles DELETE /contacts/:id and returns the removed contact.
func (h *ContactHandler) Delete(c *gin.Context) {
	principal, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	deleted, err := h.uc.Delete(c.Request.Context(), id, principal.UserID)
	if err != nil {
		h.renderLookupError(c, principal.UserID, id, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContactResFromEntity(deleted))
}

// principalAndID resolves the caller and parses the :id route
// parameter, writing the error response itself when either fails.
func (h *ContactHandler) principalAndID(c *gin.Context) (jwtmw.Principal, uint, bool) {
	principal, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return jwtmw.Principal{}, 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return jwtmw.Principal{}, 0, false
	}
	return principal, uint(id), true
}

// renderLookupError maps an absent contact to 404 and anything else to
// 500. The 404 carries no detail about whether the row exists under a
// different owner.
func (h *ContactHandler) renderLookupError(c *gin.Context, userID, contactID uint, err error) {
	if errors.Is(err, usecase.ErrContactNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
		return
	}
	slog.Error("contact operation failed", "user_id", userID, "contact_id", contactID, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
