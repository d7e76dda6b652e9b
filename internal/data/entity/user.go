package entity

type UserRole string

const (
	RoleGuest      UserRole = "guest"
	RoleRegistered UserRole = "registered"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// HasRole is the single role check used by privileged operations.
// Admins satisfy the registered role as well.
func (u *User) HasRole(required UserRole) bool {
	if u.Role == required {
		return true
	}
	return required == RoleRegistered && u.Role == RoleAdmin
}
