package core

import (
	"errors"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
	ErrLimitExceeded     = errors.New("daily withdrawal limit exceeded")
	ErrHolderMismatch    = errors.New("account holder must match the customer")

	ErrEmptyName        = errors.New("name cannot be empty")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("account not found")
)
