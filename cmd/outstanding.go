package cmd

import (
	"github.com/spf13/cobra"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
)

// outstandingCmd represents the outstanding command.
var outstandingCmd = newOutstandingCmd()

func newOutstandingCmd() *cobra.Command {
	var node string

	cmd := &cobra.Command{
		Use:   "outstanding",
		Short: "Show outstanding requests per node",
		Long:  "Show issued minus completed requests of each node's request queue at every clock edge.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runArgs()
			if err != nil {
				return err
			}

			pos, err := optionalPosition(node)
			if err != nil {
				return err
			}

			return workflow.Outstanding(cmd.Context(), domain.OutstandingArgs{RunArgs: run, Node: pos})
		},
	}

	cmd.Flags().StringVarP(&node, "node", "n", "", "node position as x,y")

	return cmd
}

func init() {
	rootCmd.AddCommand(outstandingCmd)
}
