package handlers

import (
	"errors"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

// failureMessage maps workflow errors onto the storefront's user-facing
// strings. Anything unrecognized passes through its own message.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrIncorrectPassword):
		return "Incorrect Password"
	case errors.Is(err, services.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, services.ErrAlreadyClaimed):
		return "Already claimed today!"
	case errors.Is(err, services.ErrInsufficientBalance):
		return "Insufficient Wallet Balance. Please Add Money."
	case errors.Is(err, services.ErrMissingTrxID):
		return "Transaction ID is required for direct payment."
	case errors.Is(err, services.ErrMissingSenderNumber):
		return "Sender Number is required."
	}
	return err.Error()
}
