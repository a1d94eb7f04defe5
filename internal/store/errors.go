package store

import "errors"

var (
	ErrEmailTaken      = errors.New("user with this email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
