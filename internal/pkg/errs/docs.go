// Package errs provides standardized error types for the distribution application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the application's error taxonomy onto distinct types:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: validation failures,
//     rejected before any write happens
//   - ObjectNotFoundError: lookups that matched nothing
//   - InvalidTransitionError: order status changes not allowed by the transition table
//   - AccessDeniedError: objects outside the caller's company/branch scope
//   - VersionConflictError: optimistic-concurrency rejections of stale writers
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies by kind
//
// Transport adapters rely on the sentinels to translate errors into status codes
// without inspecting message text.
package errs
