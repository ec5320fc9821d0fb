package usecase

import (
	"strings"

	authdomain "chat-backend/internal/auth/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the address format.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return authdomain.ErrInvalidEmail
	}
	return nil
}

// ValidateFullName checks the rune length of an already trimmed name.
func ValidateFullName(name string) error {
	if err := validate.Var(name, "min=3,max=50"); err != nil {
		return authdomain.ErrFullNameLength
	}
	return nil
}

// ValidatePassword checks the password length. The password is not trimmed.
func ValidatePassword(password string) error {
	if err := validate.Var(password, "min=6,max=40"); err != nil {
		return authdomain.ErrPasswordLength
	}
	return nil
}
