package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Authentication failures. All of them match ErrUnauthorized.
var (
	ErrTokenExpired       = fmt.Errorf("token expired: %w", ErrUnauthorized)
	ErrTokenInvalid       = fmt.Errorf("invalid token: %w", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	ErrUserGone           = fmt.Errorf("user not found: %w", ErrUnauthorized)
)

// ErrEmailTaken is returned by registration for an existing address.
var ErrEmailTaken = fmt.Errorf("email already registered: %w", ErrAlreadyExists)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LimitError reports a plan entitlement violation. Limit names the resource
// or feature that was denied; Reason is safe to show to the client.
type LimitError struct {
	Limit  string
	Reason string
}

func (e *LimitError) Error() string { return e.Reason }

func (e *LimitError) Unwrap() error { return ErrForbidden }

// NewResourceLimitError reports that a countable resource reached its cap.
func NewResourceLimitError(r Resource, max int) *LimitError {
	return &LimitError{
		Limit:  string(r),
		Reason: fmt.Sprintf("Free plan limited to %d %s. Upgrade to Pro for unlimited.", max, r),
	}
}

// NewFeatureError reports that a boolean capability is not part of the plan.
func NewFeatureError(f Feature) *LimitError {
	return &LimitError{
		Limit:  string(f),
		Reason: fmt.Sprintf("%s is a Pro feature. Upgrade to unlock.", f.DisplayName()),
	}
}
