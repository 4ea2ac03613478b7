package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camel-tooling/camel-dashboard-cli/internal/cmdutil"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
	"github.com/camel-tooling/camel-dashboard-cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show camel-dashboard version information.

Displays the CLI version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := of.Parse()
			if err != nil {
				return err
			}

			info := version.Get()
			if format != output.FormatTable {
				return output.Encode(cmd.OutOrStdout(), format, info)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}

	of.AddTo(cmd)

	return cmd
}
