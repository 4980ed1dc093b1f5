package models

import (
	"fmt"
	"time"
)

// ValidationError marks a client input problem, rejected before any
// transaction is opened.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// CooldownActiveError is returned when the tenant already ran a successful
// conversion inside the cooldown window. It carries the prior conversion's
// details so the caller can report them.
type CooldownActiveError struct {
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	Timestamp    time.Time `json:"timestamp"`
	ConvertedBy  string    `json:"convertedBy"`
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("conversion cooldown active: %s to %s performed by %s at %s",
		e.FromCurrency, e.ToCurrency, e.ConvertedBy, e.Timestamp.Format(time.RFC3339))
}
