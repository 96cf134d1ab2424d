package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotInCart      = errors.New("item not in cart")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
)
