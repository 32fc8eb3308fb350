package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/repunit/pkg/repunit"
)

const modulePath = "github.com/mesh-intelligence/repunit"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the repunit version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "repunit v%s\nmodule: %s\n", repunit.Version, modulePath)
			return nil
		},
	}
}
