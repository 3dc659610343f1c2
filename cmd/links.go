package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
)

var linksLanesFlag int

// linksCmd represents the links command.
var linksCmd = newLinksCmd()

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Show lane usage of every mesh link",
		Long: `Show data, idle-lane and event totals of every link that has a neighbor.
Lane counts come from the lanes attribute of the lane bitmap, then --lanes,
then the bitmap width.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runArgs()
			if err != nil {
				return err
			}

			return workflow.Links(cmd.Context(), domain.LinksArgs{RunArgs: run, Lanes: viper.GetInt(lanesConfigKey)})
		},
	}

	cmd.Flags().IntVar(&linksLanesFlag, lanesFlagName, viper.GetInt(lanesConfigKey), "lanes per link when the bitmap does not say")
	bindFlagToConfig(cmd.Flags().Lookup(lanesFlagName), lanesConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
