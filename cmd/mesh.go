package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

var meshGeometryFlag string
var meshNodeSizeFlag float64

// meshCmd represents the mesh command.
var meshCmd = newMeshCmd()

func newMeshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Show the mesh with link utilization",
		Long: `Show the mesh as a grid of nodes with the utilization of each link.
With --geometry, also write node and gauge outlines for an external renderer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runArgs()
			if err != nil {
				return err
			}

			return workflow.Mesh(cmd.Context(), domain.MeshArgs{
				RunArgs:  run,
				Lanes:    viper.GetInt(lanesConfigKey),
				Geometry: m.Path(meshGeometryFlag),
				NodeSize: viper.GetFloat64(nodeSizeConfigKey),
			})
		},
	}

	cmd.Flags().StringVar(&meshGeometryFlag, "geometry", "", "write node and gauge geometry to this YAML file")
	cmd.Flags().Float64Var(&meshNodeSizeFlag, "node-size", viper.GetFloat64(nodeSizeConfigKey), "node edge length in geometry units")
	bindFlagToConfig(cmd.Flags().Lookup("node-size"), nodeSizeConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(meshCmd)
}
