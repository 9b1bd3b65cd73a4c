package services

import "errors"

// Workflow failures surfaced to callers. Handlers translate these into
// {success:false, message} payloads; nothing in the services layer panics.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrAlreadyClaimed      = errors.New("already claimed today")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrMissingTrxID        = errors.New("transaction ID is required for direct payment")
	ErrMissingSenderNumber = errors.New("sender number is required")
)
