package errors

import "errors"

var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrUnknownMenuItem      = errors.New("unknown menu item")
	ErrEmptyOrder           = errors.New("empty order")
	ErrDuplicateOrderID     = errors.New("duplicate order id")
	ErrStorageFailure       = errors.New("storage failure")
	ErrNotFound             = errors.New("not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidDineOption    = errors.New("invalid dine option")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadyPaid          = errors.New("order already paid")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
