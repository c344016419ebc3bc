package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrForbidden           = errors.New("forbidden")
	ErrInconsistentState   = errors.New("inconsistent state")
	ErrTerminalState       = errors.New("terminal state")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrOverAllocation      = errors.New("over allocation")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// sanitize collapses newlines so error messages stay on one log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

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

// ValueIsOutOfRangeError indicates that a value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

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

// InvalidTransitionError indicates a status change outside the allowed
// successor set of the entity's current status.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError indicates the acting party lacks authority for an operation.
type ForbiddenError struct {
	Actor  string
	Action string
}

func NewForbiddenError(actor, action string) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Action: action}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s may not %s", ErrForbidden, e.Actor, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InconsistentStateError indicates a cross-entity ordering violation, such as
// advancing a delivery past a point its parent order does not allow.
type InconsistentStateError struct {
	ParamName string
	Cause     error
}

func NewInconsistentStateError(paramName string, cause error) *InconsistentStateError {
	return &InconsistentStateError{ParamName: paramName, Cause: cause}
}

func (e *InconsistentStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInconsistentState, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInconsistentState, e.ParamName))
}

func (e *InconsistentStateError) Unwrap() error {
	return ErrInconsistentState
}

// TerminalStateError indicates an attempted transition on an entity whose
// status permits no further transitions.
type TerminalStateError struct {
	Entity string
	Status string
}

func NewTerminalStateError(entity, status string) *TerminalStateError {
	return &TerminalStateError{Entity: entity, Status: status}
}

func (e *TerminalStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrTerminalState, e.Entity, e.Status))
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// InvalidAmountError indicates a monetary amount violating a bound, such as a
// refund exceeding the refundable remainder of its payment.
type InvalidAmountError struct {
	ParamName string
	Cause     error
}

func NewInvalidAmountError(paramName string, cause error) *InvalidAmountError {
	return &InvalidAmountError{ParamName: paramName, Cause: cause}
}

func (e *InvalidAmountError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidAmount, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidAmount, e.ParamName))
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}

// OverAllocationError indicates a bulk-order assignment confirmation that
// would exceed either the assignment's or the bulk order's quantity cap.
type OverAllocationError struct {
	ParamName string
	Cause     error
}

func NewOverAllocationError(paramName string, cause error) *OverAllocationError {
	return &OverAllocationError{ParamName: paramName, Cause: cause}
}

func (e *OverAllocationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrOverAllocation, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrOverAllocation, e.ParamName))
}

func (e *OverAllocationError) Unwrap() error {
	return ErrOverAllocation
}

// InvalidCoordinateError indicates a latitude or longitude outside its valid
// range. Coordinates are never clamped.
type InvalidCoordinateError struct {
	ParamName string
	Value     float64
	Min       float64
	Max       float64
}

func NewInvalidCoordinateError(paramName string, value, minValue, maxValue float64) *InvalidCoordinateError {
	return &InvalidCoordinateError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *InvalidCoordinateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrInvalidCoordinate, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *InvalidCoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// ConcurrencyConflictError indicates an optimistic-concurrency write that
// matched no row because the entity's version changed underneath it.
// Callers own retry policy; retrying a transition with identical inputs is
// safe because an already-applied target status is a no-op.
type ConcurrencyConflictError struct {
	Entity string
	ID     any
}

func NewConcurrencyConflictError(entity string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Entity: entity, ID: id}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v was modified concurrently", ErrConcurrencyConflict, e.Entity, e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// ValidationError is one failed checkout rule. CheckoutGate collects every
// failed rule in rule order rather than stopping at the first, so callers can
// present the complete list.
type ValidationError struct {
	Code    string
	Message string
}

func NewValidationError(code, message string) ValidationError {
	return ValidationError{Code: code, Message: message}
}

func (e ValidationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", e.Code, e.Message))
}
