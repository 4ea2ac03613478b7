package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false), Writer: &buf})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return &buf
}

func TestReportError_PlainError(t *testing.T) {
	logs := captureLogs(t)

	err := ReportError(output.Logger(), "listing camelapps", errors.New("boom"))

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.True(t, exitErr.Printed)
	assert.Equal(t, oerrors.ExitGeneralError, exitErr.Code)
	assert.Contains(t, logs.String(), "listing camelapps")
	assert.Contains(t, logs.String(), "boom")
}

func TestReportError_DetailError(t *testing.T) {
	logs := captureLogs(t)

	detail := oerrors.NewNotFoundError("camelapp ns1/missing not found", "/camel/app/ns/ns1/name/missing", "Run camel-dashboard list -A.")
	err := ReportError(output.Logger(), "getting camelapp", detail)

	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.Contains(t, logs.String(), "Hint: Run camel-dashboard list -A.")
	assert.Contains(t, logs.String(), "Location: /camel/app/ns/ns1/name/missing")
}

func TestReportError_AlreadyPrinted(t *testing.T) {
	logs := captureLogs(t)

	printed := &oerrors.ExitError{Code: oerrors.ExitNotFound, Err: errors.New("gone"), Printed: true}
	err := ReportError(output.Logger(), "again", printed)

	assert.Same(t, printed, err)
	assert.Empty(t, logs.String())
}
