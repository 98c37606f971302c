package models

import "errors"

// Sentinel errors shared between the repository and service layers.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBookNotFound       = errors.New("book not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrStockInsufficient  = errors.New("insufficient stock")
	ErrAlreadyMember      = errors.New("already a member")
)
