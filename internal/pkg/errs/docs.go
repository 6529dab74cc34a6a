// Package errs provides standardized error types for the courierdesk core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value (client, combo, payment method...) is missing
//   - ValueIsInvalidError: a value does not parse or has the wrong shape
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ObjectNotFoundError: a lookup by ID matched nothing
//   - ObjectAlreadyExistsError: an insert collided with an existing ID
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method producing a human-readable message
//   - Unwrap() method returning the sentinel
//
// The Error() text doubles as the validation message shown to operators, so
// callers treat a non-nil error as a rejection and print it as is.
package errs
