package services

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is; anything else is treated as a storage failure.
var (
	ErrInvalidCustomer    = errors.New("customer name is required")
	ErrEmptyOrder         = errors.New("no items in order")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrUnknownProduct     = errors.New("unknown coffee type")
	ErrPriceNotFound      = errors.New("price not found")
	ErrZeroTotal          = errors.New("calculated total must be greater than 0")
	ErrInvalidPrice       = errors.New("prices must be greater than 0")
	ErrInvalidReportKind  = errors.New("invalid report type")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
