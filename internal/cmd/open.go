package cmd

import (
	"github.com/spf13/cobra"

	"github.com/camel-tooling/camel-dashboard-cli/internal/cmdutil"
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
)

// NewOpenCmd creates the open command.
func NewOpenCmd(g *GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags
	var wf cmdutil.WatchFlags

	cmd := &cobra.Command{
		Use:   "open PATH",
		Short: "Open a dashboard page by console path",
		Long: `Open the page a console path points to. Full console URLs are accepted;
only their path is used.

List pages:
  /camel/all-namespaces
  /camel/ns/{namespace}

Details pages:
  /camel/app/ns/{namespace}/name/{name}             Details tab
  /camel/app/ns/{namespace}/name/{name}/resources   Resources tab
  /camel/app/ns/{namespace}/name/{name}/metrics     Metrics tab

An unknown trailing segment on a details path opens the Details tab.

Examples:
  camel-dashboard open /camel/all-namespaces
  camel-dashboard open https://console.example.com/camel/app/ns/orders/name/order-service/metrics --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := of.Parse()
			if err != nil {
				return err
			}
			if err := wf.Validate(); err != nil {
				return err
			}

			route, err := navigation.Parse(args[0])
			if err != nil {
				return &ExitError{Code: ExitCodeFromError(err), Err: err}
			}

			if route.List != nil {
				if wf.Diff {
					return validationError(oerrors.NewValidationError(
						"--diff only applies to details pages", args[0], "diff",
						"Open a /camel/app/ns/{namespace}/name/{name} path to diff a single CamelApp."))
				}
				scope := *route.List
				return runList(cmd.Context(), cmd.OutOrStdout(), g, func(string) navigation.ListScope { return scope }, format, wf.Watch)
			}

			ctrl, err := navigation.NewController(args[0])
			if err != nil {
				return &ExitError{Code: ExitCodeFromError(err), Err: err}
			}
			state := ctrl.State()
			return runGet(cmd.Context(), cmd.OutOrStdout(), g, detailsTarget{
				namespace: state.Namespace,
				name:      state.Name,
				tab:       state.ActiveTab,
			}, format, wf)
		},
	}

	of.AddTo(cmd)
	wf.AddTo(cmd)
	wf.AddDiffTo(cmd)

	return cmd
}
