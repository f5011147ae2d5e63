// Package apperr defines the error taxonomy shared by all business
// packages. Handlers map these to HTTP status codes; services never
// return raw storage errors to callers.
package apperr

import "fmt"

// ValidationError reports malformed or out-of-range input. Details
// carries per-field (or per-row) messages for the caller to display.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(msg string, details ...string) error {
	return &ValidationError{Message: msg, Details: details}
}

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError reports an operation that is illegal given the
// record's current lifecycle state, e.g. mutating a disposed asset.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func InvalidState(msg string) error {
	return &InvalidStateError{Message: msg}
}

// PermissionDeniedError reports that the caller lacks a required
// permission string.
type PermissionDeniedError struct {
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Permission)
}

func PermissionDenied(permission string) error {
	return &PermissionDeniedError{Permission: permission}
}
