// Package errs provides standardized error types for the order admin core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Construction/validation failures: ValueIsRequiredError, ValueIsInvalidError
//   - Store-interaction taxonomy: FetchFailedError, TransitionFailedError,
//     InvalidTransitionError, UnauthorizedError, ObjectNotFoundError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// InvalidTransitionError and UnauthorizedError are detected locally and must
// never reach the backing store as a request. FetchFailedError,
// TransitionFailedError and ObjectNotFoundError are store-reported.
package errs
