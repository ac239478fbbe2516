package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebrahas/smartcli/internal/version"
)

// NewVersionCommand prints the build version. --short prints the bare
// version string for scripts.
func NewVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show smartcli version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Version)
				return nil
			}
			fmt.Fprintf(out, "smartcli %s\n", version.Summary())
			fmt.Fprintln(out, version.Platform())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
