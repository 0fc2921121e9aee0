package domain

import "errors"

var (
	// Auth errors
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
	ErrInvalidCredential = errors.New("invalid email or password")

	// Request errors
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")

	// Entity errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrEmailTaken          = errors.New("email already registered")
)
