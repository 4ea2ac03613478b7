package cmdutil

import (
	"errors"

	"github.com/charmbracelet/log"

	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
)

// ReportError logs err through logger and returns an *ExitError marked as
// printed, so main does not print it a second time. Errors that already
// carry an exit code keep it.
func ReportError(logger *log.Logger, msg string, err error) error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return err
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		logger.Error(msg)
		// DetailError renders its own multi-line layout.
		logger.Print(detail.Error())
	} else {
		logger.Error(msg, "error", err)
	}

	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}
