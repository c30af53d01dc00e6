package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidClass    = errors.New("invalid account class")

	// Transfer errors
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrLimitExceeded     = errors.New("amount exceeds transfer ceiling")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRecordNotFound    = errors.New("transaction record not found")

	// Auth errors
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrWeakPassword   = errors.New("password does not meet length requirements")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrDuplicateEmail = errors.New("user with this email already exists")
)
