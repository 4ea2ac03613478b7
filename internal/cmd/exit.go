package cmd

import (
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
)

// Exit codes, aliased from internal/errors so command code can use the
// short names.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitConnectivityError = oerrors.ExitConnectivityError
	ExitPermissionDenied  = oerrors.ExitPermissionDenied
	ExitNotFound          = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError. cmdutil returns
// the same type, so main only needs to check for one.
type ExitError = oerrors.ExitError

// ExitCodeFromError determines the exit code for err.
func ExitCodeFromError(err error) int {
	return oerrors.ExitCodeFromError(err)
}

// validationError wraps err so the command exits with ExitValidationError.
func validationError(err error) error {
	return &ExitError{Code: ExitValidationError, Err: err}
}
