package dto

import "time"

// UserResponse salida de un usuario.
type UserResponse struct {
	ID             string     `json:"id"`
	OpenID         string     `json:"open_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	LoginMethod    string     `json:"login_method"`
	Role           string     `json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastSignedInAt *time.Time `json:"last_signed_in_at"`
}

// UpdateRoleRequest body para PUT /api/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin dispatcher viewer"`
}

// IssueTokenRequest datos de la identidad externa para emitir un token (cmd/token).
type IssueTokenRequest struct {
	OpenID      string `json:"open_id" validate:"required,max=64"`
	Name        string `json:"name" validate:"max=200"`
	Email       string `json:"email" validate:"omitempty,email,max=320"`
	LoginMethod string `json:"login_method" validate:"max=64"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin dispatcher viewer"`
}

// TokenResponse token firmado y el usuario al que pertenece.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
