package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User is an account record. PasswordHash holds a bcrypt hash and is empty
// for accounts created through federated sign-in that never set a password.
// GoogleUID is the identity provider's subject id, unique when present.
type User struct {
	Base
	Name          string   `db:"name"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password_hash"`
	Phone         *string  `db:"phone"`
	GoogleUID     *string  `db:"google_uid"`
	Role          UserRole `db:"role"`
	EmailVerified bool     `db:"email_verified"`
	IsActive      bool     `db:"is_active"`
}
