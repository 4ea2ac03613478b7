package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/cmdutil"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
	"github.com/camel-tooling/camel-dashboard-cli/internal/view"
)

// NewListCmd creates the list command.
func NewListCmd(g *GlobalConfig) *cobra.Command {
	var sf cmdutil.ScopeFlags
	var of cmdutil.OutputFlags
	var wf cmdutil.WatchFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List Camel applications",
		Long: `List the CamelApps in a namespace or across all namespaces.

Each row shows the phase, exchange health, runtime provider, Camel version
and the most recent message of the application.

Examples:
  # List CamelApps in the current namespace
  camel-dashboard list

  # List CamelApps in every namespace
  camel-dashboard list -A

  # Follow changes in a namespace
  camel-dashboard list -n orders --watch

  # Print the rows as JSON
  camel-dashboard list -A -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sf.Validate(); err != nil {
				return err
			}
			format, err := of.Parse()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cmd.OutOrStdout(), g, sf.Scope, format, wf.Watch)
		},
	}

	sf.AddTo(cmd)
	of.AddTo(cmd)
	wf.AddTo(cmd)

	return cmd
}

// runList lists CamelApps once or, with watch, until interrupted. scopeFor
// receives the default namespace of the session.
func runList(ctx context.Context, w io.Writer, g *GlobalConfig, scopeFor func(string) navigation.ListScope, format output.Format, watch bool) error {
	log := output.ModuleLogger("list")

	sess, err := g.connect(ctx)
	if err != nil {
		return cmdutil.ReportError(log, "connecting to cluster", err)
	}

	scope := scopeFor(sess.namespace)
	log.Debug("listing camelapps", "scope", scope.String(), "path", navigation.ListPath(scope))

	if watch {
		return runListWatch(ctx, w, g, sess, scope, format)
	}

	var apps []camelapp.App
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var err error
		apps, err = sess.apps.List(ctx, scope)
		return err
	}, output.WithTitle("Loading CamelApps..."))
	if err != nil {
		return cmdutil.ReportError(log, "listing camelapps", err)
	}

	return view.RenderList(w, apps, format, g.translator())
}

func runListWatch(ctx context.Context, w io.Writer, g *GlobalConfig, sess *session, scope navigation.ListScope, format output.Format) error {
	log := output.ModuleLogger("list")

	ctx, cancel := watchContext(ctx)
	defer cancel()

	snapshots, err := sess.apps.Watch(ctx, scope)
	if err != nil {
		return cmdutil.ReportError(log, "watching camelapps", err)
	}

	tr := g.translator()
	return redrawLoop(ctx, snapshots, g.watchInterval(), func(apps []camelapp.App) error {
		if format == output.FormatTable {
			output.ClearScreen()
		}
		return view.RenderList(w, apps, format, tr)
	})
}
