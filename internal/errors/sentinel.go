package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates bad user input: flags, paths or config values.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates the cluster could not be reached.
	ErrConnectivity = errors.New("connectivity error")

	// ErrPermission indicates RBAC denied the request.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a CamelApp, CRD or file was not found.
	ErrNotFound = errors.New("not found")
)
