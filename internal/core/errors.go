package core

import (
	"errors"
)

var (
	// Config errors.
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrInvalidProfile = errors.New("invalid profile")

	// Client errors.
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownMethod  = errors.New("unknown method")
)
