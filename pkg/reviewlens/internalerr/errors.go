package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoReviews     = errors.New("no reviews provided")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
)
