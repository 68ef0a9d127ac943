package entity

import "time"

// Roles válidos para User.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleViewer     = "viewer"
)

// IsValidRole indica si r es un rol conocido.
func IsValidRole(r string) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleDispatcher, RoleViewer:
		return true
	}
	return false
}

// User usuario del sistema. La identidad la emite un proveedor externo (OpenID).
type User struct {
	ID             string     `db:"id"`
	OpenID         string     `db:"open_id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	LoginMethod    string     `db:"login_method"`
	Role           string     `db:"role"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	LastSignedInAt *time.Time `db:"last_signed_in_at"`
}
