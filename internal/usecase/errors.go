package usecase

import "errors"

// Domain error kinds surfaced to the HTTP boundary. Handlers map these to
// status codes with errors.Is; anything unrecognized becomes a 500 with
// the detail logged, never echoed.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountUnverified  = errors.New("account not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrCodeInvalid     = errors.New("verification code invalid")
	ErrCodeExpired     = errors.New("verification code expired")
	ErrCodeAlreadyUsed = errors.New("verification code already used")

	ErrIdentityProvider = errors.New("identity provider rejected the assertion")

	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("access denied")

	ErrSlotTaken     = errors.New("time slot already booked")
	ErrNotEditable   = errors.New("appointment can no longer be changed")
	ErrAlreadyPaid   = errors.New("invoice already paid")
	ErrFormSubmitted = errors.New("form already submitted")
)
