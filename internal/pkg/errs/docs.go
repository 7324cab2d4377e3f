// Package errs provides the standardized error types used across the
// service. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - an Error() method for formatting the message
//   - an Unwrap() method so errors.Is matches the sentinel
//
// Handlers and adapters classify failures by matching sentinels rather than
// inspecting message strings.
package errs
