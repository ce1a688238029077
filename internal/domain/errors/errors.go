package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidOrderItem   = errors.New("invalid order item")
	ErrTotalMismatch      = errors.New("order total does not match items")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("order status transition not allowed")

	ErrPaymentFailed      = errors.New("payment failed")
	ErrInvalidPayment     = errors.New("invalid payment submission")
	ErrInvalidCallback    = errors.New("invalid payment callback")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrFractionalAmount   = errors.New("amount is not a whole shilling value")

	ErrInvalidBook     = errors.New("invalid book")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidQuantity = errors.New("invalid quantity")
)
