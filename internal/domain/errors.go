package domain

import "errors"

// Domain error taxonomy. Callers discriminate with errors.Is; the HTTP layer
// maps each kind to a single status code and treats anything unmatched as an
// internal failure.
var (
	ErrEmailTaken              = errors.New("email already registered")
	ErrAccountNotFound         = errors.New("account not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrWrongWithdrawalPassword = errors.New("invalid withdrawal password")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInsufficientFunds       = errors.New("insufficient balance")
	ErrTermsNotAgreed          = errors.New("terms and conditions must be accepted")
	ErrMarketUnavailable       = errors.New("market data unavailable")
)
