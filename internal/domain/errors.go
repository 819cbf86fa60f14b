package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Catalog errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgChromaNotFound = "chroma not found"
	ErrMsgShaderNotFound = "shader not found"

	// Premium store errors
	ErrMsgSetNotFound      = "premium store set not found"
	ErrMsgScheduleNotFound = "premium store schedule not found"
	ErrMsgNotAvailable     = "item is not available for purchase"

	// Purchase errors
	ErrMsgAlreadyOwned      = "item already owned"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgPurchaseConflict  = "purchase conflict"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// Catalog errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrChromaNotFound = errors.New(ErrMsgChromaNotFound)
	ErrShaderNotFound = errors.New(ErrMsgShaderNotFound)

	// Premium store errors
	ErrSetNotFound      = errors.New(ErrMsgSetNotFound)
	ErrScheduleNotFound = errors.New(ErrMsgScheduleNotFound)
	ErrNotAvailable     = errors.New(ErrMsgNotAvailable)

	// Purchase errors
	ErrAlreadyOwned      = errors.New(ErrMsgAlreadyOwned)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrPurchaseConflict  = errors.New(ErrMsgPurchaseConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
