package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [names...]",
		Short: "View previously saved series",
		Long:  "View series saved by sample --save from the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesPath := m.Path(viper.GetString(outputConfigKey))
			return workflow.View(cmd.Context(), domain.ViewArgs{Series: seriesPath, Names: args})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
