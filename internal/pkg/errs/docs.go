// Package errs provides the standardized error types used throughout the
// ordering application for error creation, formatting, and unwrapping.
//
// Error kinds:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - IllegalStateError: an operation is not permitted in the current
//     lifecycle state; carries that state for diagnostics
//   - ValidationErrors: an aggregated list of field-level violations, each a
//     FieldViolation with a message and a machine-checkable type tag
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct with the error details, constructor
// functions with and without a cause, an Error() formatter, and an Unwrap()
// method returning the sentinel. Invariant violations are never recovered
// from internally; they abort the operation and surface to the caller.
package errs
