// Package errs provides standardized error types for the homechef application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package carries two groups of errors:
//   - Generic value errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) used by constructors and
//     repositories.
//   - Domain errors of the order core (InvalidTransitionError, ForbiddenError,
//     InconsistentStateError, TerminalStateError, InvalidAmountError,
//     OverAllocationError, InvalidCoordinateError, ConcurrencyConflictError)
//     plus ValidationError, the per-rule failure record of the checkout gate.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
//
// This standardized approach keeps error classification uniform across the
// domain model, the use-case handlers, and the HTTP adapter.
package errs
