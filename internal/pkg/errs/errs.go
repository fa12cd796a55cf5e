package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrFetchFailed       = errors.New("fetch failed")
	ErrTransitionFailed  = errors.New("transition failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnauthorized      = errors.New("unauthorized")
)

// sanitize collapses line breaks so interpolated values cannot split log lines.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return value
}

// ObjectNotFoundError indicates that an object referenced by an operation
// does not exist in the backing store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// FetchFailedError indicates that a read from the backing store failed,
// either at the network level or with a non-success response.
type FetchFailedError struct {
	QueryKey string
	Cause    error
}

// NewFetchFailedError creates a FetchFailedError without an underlying cause.
func NewFetchFailedError(queryKey string) *FetchFailedError {
	return &FetchFailedError{QueryKey: queryKey}
}

// NewFetchFailedErrorWithCause creates a FetchFailedError wrapping an underlying cause.
func NewFetchFailedErrorWithCause(queryKey string, cause error) *FetchFailedError {
	return &FetchFailedError{QueryKey: queryKey, Cause: cause}
}

func (e *FetchFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrFetchFailed, e.QueryKey, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrFetchFailed, e.QueryKey))
}

func (e *FetchFailedError) Unwrap() error {
	return ErrFetchFailed
}

// TransitionFailedError indicates that the backing store rejected or failed
// a mutation request. The mutation had already passed local preconditions.
type TransitionFailedError struct {
	Op      string
	OrderID string
	Cause   error
}

// NewTransitionFailedError creates a TransitionFailedError without an underlying cause.
func NewTransitionFailedError(op, orderID string) *TransitionFailedError {
	return &TransitionFailedError{Op: op, OrderID: orderID}
}

// NewTransitionFailedErrorWithCause creates a TransitionFailedError wrapping an underlying cause.
func NewTransitionFailedErrorWithCause(op, orderID string, cause error) *TransitionFailedError {
	return &TransitionFailedError{Op: op, OrderID: orderID, Cause: cause}
}

func (e *TransitionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: op is: %s, order is: %s (cause: %s)",
			ErrTransitionFailed, e.Op, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: op is: %s, order is: %s", ErrTransitionFailed, e.Op, e.OrderID))
}

func (e *TransitionFailedError) Unwrap() error {
	return ErrTransitionFailed
}

// InvalidTransitionError indicates that a local precondition rejected a state
// change before any request was sent to the backing store.
type InvalidTransitionError struct {
	OrderID string
	From    string
	To      string
	Cause   error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an underlying cause.
func NewInvalidTransitionError(orderID, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(orderID, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order is: %s, from is: %s, to is: %s (cause: %s)",
			ErrInvalidTransition, e.OrderID, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order is: %s, from is: %s, to is: %s",
		ErrInvalidTransition, e.OrderID, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError indicates that an authenticated operation was attempted
// without a usable bearer credential, or that the store rejected the credential.
type UnauthorizedError struct {
	Op    string
	Cause error
}

// NewUnauthorizedError creates an UnauthorizedError without an underlying cause.
func NewUnauthorizedError(op string) *UnauthorizedError {
	return &UnauthorizedError{Op: op}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(op string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Op: op, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Op))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
