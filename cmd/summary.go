package cmd

import (
	"github.com/spf13/cobra"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
)

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize a run in one line",
		Long:  "Print packets received at the origin out of those sent, the largest latency and the largest outstanding count.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runArgs()
			if err != nil {
				return err
			}

			return workflow.Summary(cmd.Context(), domain.SummaryArgs{RunArgs: run})
		},
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
