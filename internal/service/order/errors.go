package order

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidName            = errors.New("invalid name")
	ErrInvalidPhone           = errors.New("invalid phone")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrMissingCustomerAddress = errors.New("customer address is required for cash payment")
	ErrInvalidLocation        = errors.New("invalid location")

	ErrOrderNotFound   = errors.New("order not found")
	ErrConflict        = errors.New("order already exists")
	ErrSessionNotFound = errors.New("session not found")
)
