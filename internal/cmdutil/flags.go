// Package cmdutil provides shared command utilities for the camel-dashboard
// subcommands. It centralizes flag groups, Kubernetes client creation and
// error reporting.
package cmdutil

import (
	"github.com/spf13/cobra"

	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// ScopeFlags holds the namespace selection flags (list).
type ScopeFlags struct {
	Namespace     string
	AllNamespaces bool
}

// AddTo registers the scope flags on the given cobra command.
func (f *ScopeFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Namespace, "namespace", "n", "",
		"Namespace to list (default: from config or kubeconfig context)")
	cmd.Flags().BoolVarP(&f.AllNamespaces, "all-namespaces", "A", false,
		"List CamelApps across all namespaces")
}

// Validate checks that -n and -A are not combined.
func (f *ScopeFlags) Validate() error {
	if f.Namespace != "" && f.AllNamespaces {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError("--namespace and --all-namespaces are mutually exclusive", "", "namespace", "Pass only one of -n and -A."),
		}
	}
	return nil
}

// Scope returns the list scope, using defaultNamespace when neither flag
// is given.
func (f *ScopeFlags) Scope(defaultNamespace string) navigation.ListScope {
	switch {
	case f.AllNamespaces:
		return navigation.AllNamespaces()
	case f.Namespace != "":
		return navigation.InNamespace(f.Namespace)
	default:
		return navigation.InNamespace(defaultNamespace)
	}
}

// OutputFlags holds the -o flag (list, get, open, config view).
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", "table",
		"Output format (table, json, yaml)")
}

// Parse validates the flag value.
func (f *OutputFlags) Parse() (output.Format, error) {
	format, err := output.ParseFormat(f.Format)
	if err != nil {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", "output", "Use one of: table, json, yaml."),
		}
	}
	return format, nil
}

// WatchFlags holds the flags that turn a command into a live view
// (list, get, open).
type WatchFlags struct {
	Watch bool
	Diff  bool
}

// AddTo registers --watch on the given cobra command.
func (f *WatchFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Watch, "watch", "w", false,
		"Keep running and redraw on every change")
}

// AddDiffTo registers --diff, which only makes sense on a single CamelApp.
func (f *WatchFlags) AddDiffTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Diff, "diff", false,
		"With --watch, print what changed between updates instead of redrawing")
}

// Validate checks that --diff is only used with --watch.
func (f *WatchFlags) Validate() error {
	if f.Diff && !f.Watch {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError("--diff requires --watch", "", "diff", "Add --watch to follow changes."),
		}
	}
	return nil
}
