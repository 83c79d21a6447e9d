package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrTrackingRequired   = errors.New("tracking code is required for shipped status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrPaymentGateway     = errors.New("payment gateway error")
)
