// Package errs provides standardized error types for the restaurant service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when a write collides with a unique value
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels map one to one onto the API error taxonomy: the three value errors
// are validation failures, ErrObjectNotFound is a missing resource, and
// ErrObjectAlreadyExists and ErrConcurrentModification are conflicts.
package errs
