package kubernetes

import (
	"fmt"

	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// API warning levels accepted by ClientOptions.APIWarnings.
const (
	WarningsWarn     = "warn"
	WarningsDebug    = "debug"
	WarningsSuppress = "suppress"
)

type warningLogger interface {
	Warn(msg string, keyvals ...interface{})
	Debug(msg string, keyvals ...interface{})
}

type defaultWarningLogger struct{}

func (defaultWarningLogger) Warn(msg string, keyvals ...interface{})  { output.Warn(msg, keyvals...) }
func (defaultWarningLogger) Debug(msg string, keyvals ...interface{}) { output.Debug(msg, keyvals...) }

// warningHandler implements rest.WarningHandler and routes API server
// warnings through the CLI logger instead of klog.
type warningHandler struct {
	level  string
	logger warningLogger
}

// HandleWarningHeader implements rest.WarningHandler.
func (h *warningHandler) HandleWarningHeader(code int, agent string, text string) {
	msg := fmt.Sprintf("k8s API warning: %s", text)

	switch h.level {
	case WarningsSuppress:
		return
	case WarningsDebug:
		h.logger.Debug(msg)
	default:
		h.logger.Warn(msg)
	}
}
