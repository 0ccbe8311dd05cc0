// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import authentity "contacts_backend/internal/feature/auth/domain/entity"

// UserRes is the profile shape returned to the authenticated user.
type UserRes struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar"`
	Confirmed bool    `json:"confirmed"`
}

// UserResFromEntity converts a user entity to its response shape.
// Credentials and tokens never leave the service.
func UserResFromEntity(u *authentity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Confirmed: u.Confirmed,
	}
}
