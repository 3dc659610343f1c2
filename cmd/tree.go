package cmd

import (
	"github.com/spf13/cobra"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	var node string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the scope tree of mesh nodes",
		Long:  "Show the scopes and signals of every node in the trace dump, or of one node with --node.",
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

			return workflow.Tree(cmd.Context(), domain.TreeArgs{RunArgs: run, Node: pos})
		},
	}

	cmd.Flags().StringVarP(&node, "node", "n", "", "node position as x,y")

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
