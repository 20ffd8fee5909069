package user

import (
	"errors"
	"time"
)

// Role expresses the platform role carried by a user account.
type Role string

const (
	RolePassenger  Role = "PASSENGER"
	RoleDriver     Role = "DRIVER"
	RoleTeacher    Role = "TEACHER"
	RoleEditor     Role = "EDITOR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePassenger, RoleDriver, RoleTeacher, RoleEditor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

var (
	ErrNotFound    = errors.New("user: not found")
	ErrDuplicate   = errors.New("user: phone or email already registered")
	ErrCredentials = errors.New("user: invalid credentials")
)

// User is a platform account. Deleted accounts stay in the store with
// IsDeleted set; every read path filters them out.
type User struct {
	ID           string    `db:"id"`
	Firstname    string    `db:"firstname"`
	Lastname     string    `db:"lastname"`
	DateOfBirth  time.Time `db:"dateofbirth"`
	Nationality  string    `db:"nationality"`
	Sexe         string    `db:"sexe"`
	Role         Role      `db:"role"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password"`
	SecretHash   string    `db:"secret"`
	Confirmed    bool      `db:"confirmed"`
	IsDeleted    bool      `db:"is_deleted"`
	CreatedAt    time.Time `db:"created_at"`
}
