package domain

import "time"

// UserRole controls access to the admin surface.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// AuthProvider identifies where a user's credentials live. Only local
// users carry a password hash; social accounts are verified upstream.
type AuthProvider string

const (
	ProviderLocal    AuthProvider = "local"
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
)

// User is a registered platform user.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash *string
	Role         UserRole
	AuthProvider AuthProvider
	Phone        *string
	Country      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may access the dashboard surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsValidRole reports whether r is a known role.
func IsValidRole(r UserRole) bool {
	return r == RoleUser || r == RoleAdmin
}

// IsValidAuthProvider reports whether p is a known provider.
func IsValidAuthProvider(p AuthProvider) bool {
	return p == ProviderLocal || p == ProviderGoogle || p == ProviderFacebook
}

// UsersFilter filtro para el listado paginado de usuarios
type UsersFilter struct {
	Page  int64
	Limit int64
}

// Offset returns the SQL offset for the filter's page.
func (f UsersFilter) Offset() int64 {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
