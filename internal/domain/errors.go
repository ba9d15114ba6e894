package domain

import (
	"errors"

	"pocketbank/pkg/validator"
)

var (
	ErrInvalidAmount     = validator.ErrInvalidAmount
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTarget     = errors.New("invalid transfer target")
)

// ClassifyError returns a short label for err, suitable for metrics.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrInvalidTarget):
		return "invalid_target"
	default:
		return "error"
	}
}
