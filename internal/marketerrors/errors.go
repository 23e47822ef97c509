package marketerrors

import "errors"

// Lookup errors
var (
	ErrAgentNotFound   = errors.New("agent not found")
	ErrSessionNotFound = errors.New("search session not found")
	ErrStoreNotFound   = errors.New("store not found")
)

// Business rule errors
var (
	ErrInvalidBid             = errors.New("invalid bid")
	ErrInsufficientFunds      = errors.New("insufficient coin balance")
	ErrSessionNotActive       = errors.New("search session is not active")
	ErrInvalidStateTransition = errors.New("invalid session state transition")
)
