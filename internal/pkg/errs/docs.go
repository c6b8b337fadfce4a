// Package errs provides standardized error types for the order tracking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the scenarios the service distinguishes:
//   - ValueIsRequiredError: a required input is missing (HTTP 400)
//   - ValueIsInvalidError: an input has the wrong shape (HTTP 400)
//   - ValueIsOutOfRangeError: a numeric input is outside its bounds (HTTP 400)
//   - ObjectNotFoundError: a referenced order does not exist (HTTP 404)
//   - DeliveryFailedError: the messaging provider rejected a send
//   - StoreFailedError: the document store was unreachable or a write failed (HTTP 500)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works across wrapping
//
// Delivery failures are logged at the send site and never abort the write that
// triggered them; every other type is surfaced to the HTTP layer unmodified.
package errs
