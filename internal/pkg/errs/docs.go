// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced order, dispatcher, product or rating is absent
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError: validation failures
//   - InvalidTransitionError: an illegal order or delivery state change was requested
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// All failures in the core are reported as error values to the caller; the core
// never panics on bad input and performs no retries itself.
package errs
