package dto

import (
	"contacts_backend/internal/feature/contacts/domain/entity"
)

// ContactReq is the request body for creating or replacing a contact.
// It uses Gin's binding tags for validation (field lengths, email and
// phone format, calendar date).
type ContactReq struct {
	Name        string `json:"name" binding:"required,max=50"`
	Lastname    string `json:"lastname" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,e164,max=30"`
	Birthday    Date   `json:"birthday" binding:"required"`
}

// ToEntity converts the request into a contact entity without owner or ID.
func (r ContactReq) ToEntity() *entity.Contact {
	return &entity.Contact{
		Name:        r.Name,
		Lastname:    r.Lastname,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Birthday:    r.Birthday.Time(),
	}
}

// ContactRes is the response shape for a single contact.
type ContactRes struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Birthday    Date   `json:"birthday"`
}

// ContactResFromEntity converts a contact entity to its response shape.
func ContactResFromEntity(c *entity.Contact) ContactRes {
	return ContactRes{
		ID:          c.ID,
		Name:        c.Name,
		Lastname:    c.Lastname,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Birthday:    Date(c.Birthday),
	}
}

// ContactListRes converts a slice of contact entities to response shapes.
func ContactListRes(contacts []entity.Contact) []ContactRes {
	out := make([]ContactRes, 0, len(contacts))
	for i := range contacts {
		out = append(out, ContactResFromEntity(&contacts[i]))
	}
	return out
}
