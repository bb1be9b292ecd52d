package auth

import (
	"time"

	"newsdesk/internal/domain/entity"
)

type registerRequest struct {
	Email    string `json:"email" validate:"notblank" example:"editor@newsdesk.rw"`
	Password string `json:"password" validate:"notblank" example:"correct horse battery"`
	Name     string `json:"name" validate:"max=100" example:"Aline Uwase"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"notblank" example:"editor@newsdesk.rw"`
	Password string `json:"password" validate:"notblank" example:"correct horse battery"`
}

// UserDTO is the public view of an account. The password hash never leaves the server.
type UserDTO struct {
	ID    int64       `json:"id" example:"1"`
	Email string      `json:"email" example:"editor@newsdesk.rw"`
	Name  string      `json:"name,omitempty" example:"Aline Uwase"`
	Role  entity.Role `json:"role,omitempty" example:"admin"`
}

type registerResponse struct {
	Message string  `json:"message" example:"user registered"`
	User    UserDTO `json:"user"`
}

type loginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2026-10-25T10:00:00Z"`
	User      UserDTO   `json:"user"`
}

type meResponse struct {
	User UserDTO `json:"user"`
}

func toUserDTO(u *entity.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
