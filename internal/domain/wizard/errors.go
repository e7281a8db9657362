package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition is returned for events the current step does not accept at all
	// (continue on confirm, back on welcome, reset before confirm, ...).
	ErrInvalidTransition = errors.New("invalid wizard transition")
	// ErrFinalizationRequired is returned by Continue on the payment step; leaving payment
	// only happens through a successful finalization.
	ErrFinalizationRequired = errors.New("payment step requires finalization")
	ErrDraftIDMismatch      = errors.New("draft already has a different id")
)

// ValidationError is a rejected transition caused by missing or invalid input.
// It is an expected outcome shown to the customer, not a fault.
type ValidationError struct {
	Step    Step
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Step, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Step, e.Message, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(step Step, message string, fields ...string) *ValidationError {
	return &ValidationError{Step: step, Fields: fields, Message: message}
}

func transitionError(step Step, what string) error {
	return fmt.Errorf("%w: %s not allowed on %s", ErrInvalidTransition, what, step)
}
