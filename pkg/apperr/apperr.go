// Package apperr defines the typed error vocabulary shared by the store,
// the services, and the HTTP layer. Services return these instead of raising
// across component boundaries; controllers map each kind to a status code
// with errors.As.
package apperr

import (
	"fmt"
	"strings"
)

// ValidationError carries every violated rule, not just the first.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + strings.Join(e.Details, "; ")
}

// NewValidation wraps a non-empty list of rule violations.
func NewValidation(details []string) *ValidationError {
	return &ValidationError{Details: details}
}

// NotFoundError reports an entity lookup miss.
type NotFoundError struct {
	Resource string // "User", "Product", "Order"
	ID       string // optional
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError without an ID.
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// NotFoundID builds a NotFoundError carrying the missed identifier.
func NotFoundID(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InsufficientStockError reports an availability shortfall during placement.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}

// InvalidStateError reports an illegal lifecycle transition, or a cancel
// attempted outside the cancellable states.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string { return e.Reason }

// InvalidTransition builds the standard from→to transition failure.
func InvalidTransition(from, to string) *InvalidStateError {
	return &InvalidStateError{Reason: fmt.Sprintf("Cannot transition from %s to %s", from, to)}
}

// AuthorizationError reports an ownership mismatch.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

// AuthenticationError reports a failed login or missing/invalid token.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string { return e.Reason }

// ConflictError reports a uniqueness violation (duplicate email on register).
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
