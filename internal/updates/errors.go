package updates

import "errors"

// Domain-specific errors for the updates package.
var (
	ErrUnauthorized    = errors.New("invalid token")
	ErrMissingUserName = errors.New("user_name is required")
	ErrMissingText     = errors.New("text is required")
	ErrDelivery        = errors.New("webhook delivery failed")
)
