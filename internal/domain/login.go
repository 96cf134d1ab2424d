package domain

import (
	"fmt"
	"strings"
	"time"
)

// UserType is the role stored on a login row.
type UserType string

const (
	UserTypeCustomer UserType = "Customer"
	UserTypeAdmin    UserType = "Admin"
)

// ParseUserType converts a stored string back into a UserType.
// Matching is case-insensitive; an unrecognized value is an error,
// never a silent default.
func ParseUserType(s string) (UserType, error) {
	for _, t := range []UserType{UserTypeCustomer, UserTypeAdmin} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown user type: %q", s)
}

// AccountStatus marks a login as usable or disabled.
type AccountStatus string

const (
	StatusActive   AccountStatus = "Active"
	StatusInactive AccountStatus = "Inactive"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	for _, t := range []AccountStatus{StatusActive, StatusInactive} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account status: %q", s)
}

// Login is an authentication record, paired 1:1 with a Customer by email.
// The password hash is opaque to the storage layer.
type Login struct {
	LoginID      int64         `json:"login_id" db:"login_id"`
	Email        string        `json:"email" db:"email"`
	PasswordHash string        `json:"-" db:"password_hash"`
	UserType     UserType      `json:"user_type" db:"user_type"`
	Status       AccountStatus `json:"status" db:"status"`
	CreatedDate  time.Time     `json:"created_date" db:"created_date"`
}
