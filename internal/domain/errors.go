package domain

import "errors"

// Shared error taxonomy. The first four reject a request before any state
// mutation; ErrAlreadyProcessed acknowledges a duplicate payment without
// re-applying it; ErrUnavailable marks a storage or transaction failure that
// the caller may retry with a new correlation id.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStakeTooLow       = errors.New("stake below tier minimum")
	ErrStakeTooHigh      = errors.New("stake above game maximum")
	ErrInvalidTier       = errors.New("unknown or unplayable tier")
	ErrAlreadyProcessed  = errors.New("payment already processed")
	ErrUnavailable       = errors.New("storage unavailable")
)
