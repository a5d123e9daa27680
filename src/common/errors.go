package common

import "errors"

var (
	ErrResourceNotFound       = errors.New("resource not found")
	ErrUnauthorized           = errors.New("resource does not belong to this user")
	ErrInvalidStateTransition = errors.New("operation not valid for current booking status")
	ErrBookingExpired         = errors.New("booking has already expired")
	ErrInventoryUnavailable   = errors.New("room is not available anymore")
	ErrSignatureInvalid       = errors.New("payment signature verification failed")
	ErrGatewayUnavailable     = errors.New("payment gateway request failed")
	ErrPaymentNotConfigured   = errors.New("payment keys are not configured")
)
