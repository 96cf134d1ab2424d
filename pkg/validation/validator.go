// Package validation holds the input-shape checks applied before any
// record reaches the storage layer.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmailEmpty      = errors.New("email cannot be empty")
	ErrPasswordEmpty   = errors.New("password cannot be empty")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")
	ErrNameEmpty       = errors.New("name cannot be empty")
	ErrNameTooShort    = errors.New("name must be at least 2 characters long")
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
)

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailEmpty
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordEmpty
	}
	if len(password) < 6 {
		return ErrPasswordTooWeak
	}
	return nil
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameEmpty
	}
	if len(name) < 2 {
		return ErrNameTooShort
	}
	return nil
}

// ValidatePhone accepts an empty phone; the field is optional.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number format: %s", phone)
	}
	return nil
}

// SanitizeInput trims the value and strips characters with HTML or SQL
// significance before it is echoed back in markup.
func SanitizeInput(input string) string {
	return strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "").Replace(strings.TrimSpace(input))
}
