package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/camel-tooling/camel-dashboard-cli/internal/cmdutil"
	"github.com/camel-tooling/camel-dashboard-cli/internal/config"
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

const configHeader = "# camel-dashboard configuration\n# Precedence: flag > CAMEL_DASHBOARD_* env > this file > default\n"

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the camel-dashboard CLI.`,
	}

	cmd.AddCommand(NewConfigInitCmd(g))
	cmd.AddCommand(NewConfigViewCmd(g))

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(_ *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the camel-dashboard configuration.

Creates ~/.camel-dashboard/config.yaml holding the defaults:
  - kubeconfig path
  - CamelApp group, version and resource, and the app label of its workloads
  - watch redraw interval
  - message locale

Examples:
  # Initialize configuration
  camel-dashboard config init

  # Overwrite existing configuration
  camel-dashboard config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd.OutOrStdout(), force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(w io.Writer, force bool) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return &ExitError{Code: ExitNotFound, Err: oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")}
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		return &ExitError{Code: ExitValidationError, Err: &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ExitError{Code: ExitPermissionDenied, Err: oerrors.Wrap(oerrors.ErrPermission, err.Error())}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("encoding default configuration: %w", err)}
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return &ExitError{Code: ExitPermissionDenied, Err: oerrors.Wrap(oerrors.ErrPermission, "could not create "+paths.HomeDir)}
	}

	// Write config.yaml with secure permissions (0600)
	if err := os.WriteFile(paths.ConfigFile, append([]byte(configHeader), data...), 0o600); err != nil {
		return &ExitError{Code: ExitPermissionDenied, Err: oerrors.Wrap(oerrors.ErrPermission, "could not write "+paths.ConfigFile)}
	}

	fmt.Fprintln(w, output.FormatCheckmark("Configuration initialized at "+paths.HomeDir))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Created files:")
	fmt.Fprintln(w, "  "+paths.ConfigFile)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Inspect with: camel-dashboard config view")

	return nil
}

// NewConfigViewCmd creates the config view command.
func NewConfigViewCmd(g *GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long: `Show every configuration value together with where it came from:
flag, env, config or default.

With -o json or -o yaml the effective configuration is printed in the
config file layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := of.Parse()
			if err != nil {
				return err
			}
			return runConfigView(cmd.OutOrStdout(), g, format)
		},
	}

	of.AddTo(cmd)

	return cmd
}

func runConfigView(w io.Writer, g *GlobalConfig, format output.Format) error {
	if g.configErr != nil {
		output.Warn("configuration is invalid", "error", g.configErr)
	}

	switch format {
	case output.FormatJSON:
		return output.Encode(w, format, g.cfg())
	case output.FormatYAML:
		// The config types carry json tags, which sigs.k8s.io/yaml honors.
		data, err := yaml.Marshal(g.cfg())
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	if g.Resolved != nil {
		for _, v := range g.Resolved.Values {
			value := fmt.Sprint(v.Value)
			if value == "" {
				value = output.Placeholder("<unset>")
			}
			tbl.Row(v.Key, value, string(v.Source))
		}
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}
