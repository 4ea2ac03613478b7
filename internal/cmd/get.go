package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/cmdutil"
	"github.com/camel-tooling/camel-dashboard-cli/internal/kubernetes"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
	"github.com/camel-tooling/camel-dashboard-cli/internal/view"
)

// NewGetCmd creates the get command.
func NewGetCmd(g *GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags
	var wf cmdutil.WatchFlags
	var (
		namespaceFlag string
		tabFlag       string
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Show the details page of a Camel application",
		Long: `Show one tab of a CamelApp's details page.

Tabs:
  details     phase, health, runtime, versions, conditions and pods
  resources   Deployments, ReplicaSets, Pods and Services labelled with the app
  metrics     exchange success rate and per-pod exchange counters

With --watch the page is redrawn on every change. Adding --diff prints only
what changed in the CamelApp between two updates.

Examples:
  # Show the details tab
  camel-dashboard get order-service -n orders

  # Show the backing workloads
  camel-dashboard get order-service -n orders --tab resources

  # Follow changes to the CamelApp as a diff
  camel-dashboard get order-service -n orders --watch --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := navigation.ParseTab(tabFlag)
			if err != nil {
				return validationError(err)
			}
			format, err := of.Parse()
			if err != nil {
				return err
			}
			if err := wf.Validate(); err != nil {
				return err
			}
			return runGet(cmd.Context(), cmd.OutOrStdout(), g, detailsTarget{
				namespace: namespaceFlag,
				name:      args[0],
				tab:       tab,
			}, format, wf)
		},
	}

	cmd.Flags().StringVarP(&namespaceFlag, "namespace", "n", "",
		"Namespace of the CamelApp (default: from config or kubeconfig context)")
	cmd.Flags().StringVar(&tabFlag, "tab", string(navigation.TabDetails),
		"Tab to show (details, resources, metrics)")
	of.AddTo(cmd)
	wf.AddTo(cmd)
	wf.AddDiffTo(cmd)

	return cmd
}

// detailsTarget names the details page to show. An empty namespace means
// the session default.
type detailsTarget struct {
	namespace string
	name      string
	tab       navigation.Tab
}

func runGet(ctx context.Context, w io.Writer, g *GlobalConfig, target detailsTarget, format output.Format, wf cmdutil.WatchFlags) error {
	log := output.ModuleLogger(target.name)

	sess, err := g.connect(ctx)
	if err != nil {
		return cmdutil.ReportError(log, "connecting to cluster", err)
	}

	namespace := target.namespace
	if namespace == "" {
		namespace = sess.namespace
	}
	ctrl := navigation.NewControllerFor(namespace, target.name, target.tab)
	log.Debug("opening details page", "path", ctrl.Path())

	if wf.Watch {
		return runGetWatch(ctx, w, g, sess, ctrl, format, wf.Diff)
	}

	tr := g.translator()
	var page view.DetailsPage
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		app, err := sess.apps.Get(ctx, namespace, target.name)
		if err != nil {
			return err
		}
		page, err = sess.detailsPage(ctx, ctrl, app, tr)
		return err
	}, output.WithTitle(fmt.Sprintf("Loading CamelApp %s...", target.name)))
	if err != nil {
		return cmdutil.ReportError(log, "loading camelapp", err)
	}

	return view.RenderDetails(w, page, format)
}

// detailsPage fills in the payload of the controller's active tab.
func (s *session) detailsPage(ctx context.Context, ctrl *navigation.Controller, app camelapp.App, tr camelapp.Translator) (view.DetailsPage, error) {
	page := view.NewDetailsPage(ctrl)

	switch ctrl.ActiveTab() {
	case navigation.TabResources:
		resources, err := kubernetes.BackingResources(ctx, s.client, app, s.appLabel)
		if err != nil {
			return page, err
		}
		page.Resources = resources
	case navigation.TabMetrics:
		metrics := camelapp.ExtractMetrics(app)
		page.Metrics = &metrics
	default:
		details := camelapp.Describe(app, tr)
		page.Details = &details
	}

	return page, nil
}

func runGetWatch(ctx context.Context, w io.Writer, g *GlobalConfig, sess *session, ctrl *navigation.Controller, format output.Format, diff bool) error {
	state := ctrl.State()
	log := output.ModuleLogger(state.Name)

	ctx, cancel := watchContext(ctx)
	defer cancel()

	snapshots, err := sess.apps.Watch(ctx, navigation.InNamespace(state.Namespace))
	if err != nil {
		return cmdutil.ReportError(log, "watching camelapp", err)
	}

	tr := g.translator()
	var (
		previous []camelapp.App
		started  bool
	)

	render := func(current []camelapp.App) error {
		if len(current) == 0 {
			log.Warn("camelapp not found, waiting for it to appear", "namespace", state.Namespace)
			return nil
		}
		page, err := sess.detailsPage(ctx, ctrl, current[0], tr)
		if err != nil {
			log.Warn("loading tab", "tab", state.ActiveTab, "error", err)
			return nil
		}
		return view.RenderDetails(w, page, format)
	}

	return redrawLoop(ctx, snapshots, g.watchInterval(), func(apps []camelapp.App) error {
		current := selectApp(apps, state.Namespace, state.Name)

		if diff && started {
			changes, err := view.DiffSnapshots(previous, current, output.IsTTY())
			previous = current
			if err != nil {
				log.Warn("comparing snapshots", "error", err)
				return nil
			}
			if changes.Empty() {
				return nil
			}
			_, err = fmt.Fprintln(w, output.RenderChanges(changes))
			return err
		}

		started = true
		previous = current
		if format == output.FormatTable {
			output.ClearScreen()
		}
		return render(current)
	})
}

// selectApp returns the one-element slice holding namespace/name, or nil.
func selectApp(apps []camelapp.App, namespace, name string) []camelapp.App {
	for _, app := range apps {
		if app.Namespace() == namespace && app.Name() == name {
			return []camelapp.App{app}
		}
	}
	return nil
}
