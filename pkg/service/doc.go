// Package service talks to the external BEI compute and report service.
//
// Client posts normalised payloads and returns decoded compute results or
// PDF report bytes. Failures come back as *APIError for HTTP-level problems
// and plain wrapped errors for transport faults; Normalize folds any of them
// into a single displayable Failure with an optional wizard step to jump to.
package service
