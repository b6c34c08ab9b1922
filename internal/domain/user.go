package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered user. The password hash never leaves the store
// and service layers; no API view carries it.
type User struct {
	ID             int64
	Username       string
	Email          string
	Password       string // plaintext, only set while seeding before hashing
	HashedPassword string
}

// Validate checks if the User has valid data.
// Either a plaintext password or a hash must be present.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username", "is required", nil)
	}
	if u.Email == "" {
		return NewValidationError("email", "is required", nil)
	}
	if err := validate.Var(u.Email, "email"); err != nil {
		return NewValidationError("email", "has invalid format", nil)
	}
	if u.Password == "" && u.HashedPassword == "" {
		return NewValidationError("password", "is required", nil)
	}
	return nil
}
