package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	// ErrObjectNotFound indicates a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid indicates a value failed a domain rule.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange indicates a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired indicates a required value is missing or empty.
	ErrValueIsRequired = errors.New("value is required")
	// ErrIllegalState indicates an operation was attempted from a lifecycle
	// state that does not permit it.
	ErrIllegalState = errors.New("illegal state")
	// ErrValidation indicates one or more field-level validation violations.
	ErrValidation = errors.New("validation failed")
)

// sanitize strips newlines from values interpolated into error messages so a
// single log line cannot be split by attacker-controlled input.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError reports that an object identified by ID could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// rule violation that made the value invalid.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed [Min, Max] bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeAny(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// sanitizeAny keeps numeric values readable while still stripping newlines
// from string values.
func sanitizeAny(v any) string {
	if s, ok := v.(string); ok {
		return sanitize(s)
	}
	return fmt.Sprintf("%v", v)
}

// ValueIsRequiredError reports a missing or empty required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IllegalStateError reports an operation attempted from a lifecycle state that
// does not permit it. State carries the current state for diagnostics.
type IllegalStateError struct {
	Operation string
	State     string
	Cause     error
}

// NewIllegalStateError creates an IllegalStateError for the given operation
// and the state the object was in when the operation was rejected.
func NewIllegalStateError(operation, state string) *IllegalStateError {
	return &IllegalStateError{Operation: operation, State: state}
}

// NewIllegalStateErrorWithCause creates an IllegalStateError wrapping an
// underlying cause.
func NewIllegalStateErrorWithCause(operation, state string, cause error) *IllegalStateError {
	return &IllegalStateError{Operation: operation, State: state, Cause: cause}
}

func (e *IllegalStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s in state %s (cause: %s)",
			ErrIllegalState, e.Operation, sanitize(e.State), e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s in state %s", ErrIllegalState, e.Operation, sanitize(e.State))
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}

// FieldViolation is a single field-level validation failure with a
// human-readable message and a machine-checkable type tag.
type FieldViolation struct {
	Message string
	Type    string
}

// NewFieldViolation creates a FieldViolation record.
func NewFieldViolation(message, violationType string) FieldViolation {
	return FieldViolation{Message: message, Type: violationType}
}

// ValidationErrors aggregates field-level violations collected by a
// validate-everything strategy. A UI layer consumes the Violations slice.
type ValidationErrors struct {
	Violations []FieldViolation
}

// NewValidationErrors creates a ValidationErrors from collected violations.
func NewValidationErrors(violations []FieldViolation) *ValidationErrors {
	return &ValidationErrors{Violations: violations}
}

func (e *ValidationErrors) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, fmt.Sprintf("%s (%s)", sanitize(v.Message), v.Type))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(messages, "; "))
}

func (e *ValidationErrors) Unwrap() error {
	return ErrValidation
}
