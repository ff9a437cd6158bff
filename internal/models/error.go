package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// OTP lifecycle errors
	ErrOTPNotFound = errors.New("no verification code requested")
	ErrOTPInvalid  = errors.New("invalid verification code")
	ErrOTPExpired  = errors.New("verification code expired")

	// Delivery and lockout errors
	ErrEmailDelivery   = errors.New("failed to deliver email")
	ErrTooManyAttempts = errors.New("too many failed attempts")

	// Re-authentication errors for the account deletion flow
	ErrEmailMismatch    = errors.New("email does not match")
	ErrPasswordMismatch = errors.New("password does not match")
)
