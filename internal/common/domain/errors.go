package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an application error so transports can map it to a status.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation_error"
	KindNotFound      ErrorKind = "not_found"
	KindSchemaMissing ErrorKind = "schema_missing"
	KindStoreWrite    ErrorKind = "store_write_failure"
	KindStoreRead     ErrorKind = "store_read_failure"
	KindCollaborator  ErrorKind = "collaborator_failure"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindInvalidState  ErrorKind = "invalid_state"
)

// AppError is the error type shared by the domain and application layers.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError reports a missing or malformed input field.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewSchemaMissingError reports that the backing collections do not exist yet.
func NewSchemaMissingError(message string, err error) *AppError {
	return &AppError{Kind: KindSchemaMissing, Message: message, Err: err}
}

// NewStoreWriteError reports a rejected insert, update or delete.
func NewStoreWriteError(op string, err error) *AppError {
	return &AppError{Kind: KindStoreWrite, Message: op, Err: err}
}

// NewStoreReadError reports a failed listing or lookup.
func NewStoreReadError(op string, err error) *AppError {
	return &AppError{Kind: KindStoreRead, Message: op, Err: err}
}

// NewCollaboratorError reports a failure of an external advisory service.
func NewCollaboratorError(message string, err error) *AppError {
	return &AppError{Kind: KindCollaborator, Message: message, Err: err}
}

// NewUnauthorizedError reports missing or invalid credentials.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// NewInvalidStateError reports a disallowed state transition.
func NewInvalidStateError(from, to string) *AppError {
	return &AppError{Kind: KindInvalidState, Message: fmt.Sprintf("cannot transition from %s to %s", from, to)}
}

// KindOf returns the kind of the first AppError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
