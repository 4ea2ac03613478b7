package kubernetes

import (
	"errors"
	"fmt"
	"net"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"

	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
)

// AppNotFoundError is returned when a CamelApp does not exist.
type AppNotFoundError struct {
	Name      string
	Namespace string
}

// Error implements the error interface.
func (e *AppNotFoundError) Error() string {
	return fmt.Sprintf("CamelApp %q not found in namespace %q", e.Name, e.Namespace)
}

// Is makes AppNotFoundError match oerrors.ErrNotFound.
func (e *AppNotFoundError) Is(target error) bool {
	return target == oerrors.ErrNotFound
}

// classify maps an API error onto the CLI sentinel errors so that commands
// can pick an exit code with errors.Is. Unrecognized errors pass through.
func classify(err error, action string) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	switch {
	case apierrors.IsNotFound(err), meta.IsNoMatchError(err):
		return &oerrors.DetailError{
			Type:    "not found",
			Message: action + ": " + err.Error(),
			Hint:    "check that the CamelApp CRD is installed and the name is correct",
			Cause:   errors.Join(oerrors.ErrNotFound, err),
		}
	case apierrors.IsForbidden(err), apierrors.IsUnauthorized(err):
		return &oerrors.DetailError{
			Type:    "permission denied",
			Message: action + ": " + err.Error(),
			Hint:    "check your RBAC permissions for camelapps.camel.apache.org",
			Cause:   errors.Join(oerrors.ErrPermission, err),
		}
	case apierrors.IsTimeout(err), apierrors.IsServerTimeout(err),
		apierrors.IsServiceUnavailable(err), apierrors.IsTooManyRequests(err),
		errors.As(err, &netErr):
		return &oerrors.DetailError{
			Type:    "connectivity",
			Message: action + ": " + err.Error(),
			Hint:    "check that the cluster is reachable with the selected kubeconfig and context",
			Cause:   errors.Join(oerrors.ErrConnectivity, err),
		}
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}
