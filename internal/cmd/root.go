// Package cmd provides CLI command implementations.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/camel-tooling/camel-dashboard-cli/internal/cmdutil"
	"github.com/camel-tooling/camel-dashboard-cli/internal/config"
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/kubernetes"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is created once by NewRootCmd and passed into every
// sub-command constructor.
type GlobalConfig struct {
	// Resolved is the effective configuration with its sources.
	Resolved *config.Resolved

	// Verbose enables debug logging.
	Verbose bool

	// NewClient creates the Kubernetes client. Nil uses kubernetes.NewClient.
	NewClient cmdutil.ClientFactory

	// configErr is a validation failure of the loaded config. Commands that
	// talk to the cluster refuse to run with it; config commands do not.
	configErr error

	kubeconfigFlag string
	contextFlag    string
	configFlag     string
	localeFlag     string
	timestampsFlag bool
}

// NewRootCmd creates the root command for the camel-dashboard CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&GlobalConfig{})
}

func newRootCmd(g *GlobalConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "camel-dashboard",
		Short: "Camel integration dashboard",
		Long: `camel-dashboard shows the Camel applications running on a Kubernetes
cluster: their status, health, runtime and Camel versions, last message,
backing workloads and exchange metrics.

Pages can be opened by console path, for example:
  camel-dashboard open /camel/all-namespaces
  camel-dashboard open /camel/app/ns/orders/name/order-service/metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.kubeconfigFlag, "kubeconfig", "", "Path to kubeconfig file (env: "+config.EnvKubeconfig+")")
	rootCmd.PersistentFlags().StringVar(&g.contextFlag, "context", "", "Kubernetes context to use (env: "+config.EnvContext+")")
	rootCmd.PersistentFlags().StringVar(&g.configFlag, "config", "", "Path to config file (env: "+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&g.localeFlag, "locale", "", "Locale used to format messages (env: "+config.EnvLocale+")")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&g.timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewListCmd(g))
	rootCmd.AddCommand(NewGetCmd(g))
	rootCmd.AddCommand(NewOpenCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals resolves configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *GlobalConfig) error {
	// Resolve timestamps: flag (if explicitly set) > config > default (true)
	var timestamps *bool
	if cmd.Flags().Changed("timestamps") {
		timestamps = output.BoolPtr(g.timestampsFlag)
	}

	resolved, err := config.Resolve(config.ResolveOptions{
		ConfigFlag:     g.configFlag,
		KubeconfigFlag: g.kubeconfigFlag,
		ContextFlag:    g.contextFlag,
		LocaleFlag:     g.localeFlag,
		TimestampsFlag: timestamps,
	})
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("loading configuration: %w", err)}
	}
	g.Resolved = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    g.Verbose,
		Timestamps: resolved.Config.Log.Timestamps,
	})
	config.LogResolvedValues(resolved.Values)

	g.configErr = nil
	if err := resolved.Config.Validate(); err != nil {
		g.configErr = &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: resolved.ConfigPath,
			Hint:     "Fix the listed keys or regenerate the file with 'camel-dashboard config init --force'.",
			Cause:    errors.Join(oerrors.ErrValidation, err),
		}
		output.Debug("config validation failed", "error", err)
	}

	return nil
}

// cfg returns the resolved config, or the defaults when PersistentPreRunE
// has not run.
func (g *GlobalConfig) cfg() *config.Config {
	if g.Resolved != nil && g.Resolved.Config != nil {
		return g.Resolved.Config
	}
	return config.DefaultConfig()
}

// clientOptions builds the client options from the resolved config. A
// kubeconfig that only comes from the built-in default is left empty so
// that KUBECONFIG still applies.
func (g *GlobalConfig) clientOptions() kubernetes.ClientOptions {
	opts := kubernetes.ClientOptions{
		Context:     g.cfg().Kubernetes.Context,
		APIWarnings: kubernetes.WarningsWarn,
	}
	if g.Resolved == nil {
		opts.Kubeconfig = g.kubeconfigFlag
		return opts
	}
	if v, ok := g.Resolved.Value("kubernetes.kubeconfig"); ok && v.Source != config.SourceDefault {
		opts.Kubeconfig = g.cfg().Kubernetes.Kubeconfig
	}
	return opts
}

func (g *GlobalConfig) camelGVR() schema.GroupVersionResource {
	c := g.cfg().Camel
	return schema.GroupVersionResource{Group: c.Group, Version: c.Version, Resource: c.Resource}
}

func (g *GlobalConfig) translator() *message.Printer {
	return output.NewTranslator(g.cfg().Output.Locale)
}

func (g *GlobalConfig) watchInterval() time.Duration {
	return g.cfg().WatchInterval()
}

// session is the cluster connection of one command run.
type session struct {
	client    *kubernetes.Client
	apps      *kubernetes.CamelApps
	namespace string
	appLabel  string
}

// connect validates the config, creates the client and checks that the
// CamelApp resource is served.
func (g *GlobalConfig) connect(ctx context.Context) (*session, error) {
	if g.configErr != nil {
		return nil, &ExitError{Code: ExitValidationError, Err: g.configErr}
	}

	client, err := cmdutil.NewK8sClient(g.NewClient, g.clientOptions())
	if err != nil {
		return nil, err
	}

	apps := kubernetes.NewCamelApps(client, g.camelGVR())
	err = output.RunWithSpinner(ctx, func(context.Context) error {
		return apps.CheckInstalled()
	}, output.WithTitle("Connecting to cluster..."))
	if err != nil {
		return nil, err
	}

	namespace := g.cfg().Kubernetes.Namespace
	if namespace == "" {
		namespace = client.Namespace
	}

	output.Debug("connected",
		"gvr", g.camelGVR().String(),
		"namespace", namespace,
	)

	return &session{
		client:    client,
		apps:      apps,
		namespace: namespace,
		appLabel:  g.cfg().Camel.AppLabel,
	}, nil
}
