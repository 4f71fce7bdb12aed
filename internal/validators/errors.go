package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidAmount = errors.New("invalid quota amount")
	ErrEmptyAmount   = errors.New("quota amount is required")
	ErrNoExpiryDate  = errors.New("expiry date is required")
)
