// Package errs provides the standardized error vocabulary for the ordering
// application.
//
// Each error kind follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The HTTP adapter maps each sentinel onto a transport status code; the core
// never logs and never retries, so errors here are the only failure channel.
package errs
