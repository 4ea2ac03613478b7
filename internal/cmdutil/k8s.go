package cmdutil

import (
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/kubernetes"
)

// ClientFactory creates the Kubernetes client for a command. Tests swap in
// a factory returning a fake client.
type ClientFactory func(opts kubernetes.ClientOptions) (*kubernetes.Client, error)

// NewK8sClient creates a Kubernetes client or returns an *ExitError. Errors
// that are not already classified exit with ExitConnectivityError.
func NewK8sClient(factory ClientFactory, opts kubernetes.ClientOptions) (*kubernetes.Client, error) {
	if factory == nil {
		factory = kubernetes.NewClient
	}
	client, err := factory(opts)
	if err != nil {
		code := oerrors.ExitCodeFromError(err)
		if code == oerrors.ExitGeneralError {
			code = oerrors.ExitConnectivityError
		}
		return nil, &oerrors.ExitError{Code: code, Err: err}
	}
	return client, nil
}
