package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

const sampleLongDescription = `Sample one signal of one node at every clock edge.

With --gate, an edge only yields a sample when every gate is open. A gate is
written VALID:READY and opens when both signals read 1; a gate without
:READY opens when VALID reads 1.

  meshtrace sample genblk_ports[3].link_data --node 0,0 \
      --gate genblk_ports[3].valid:genblk_ports[3].ready`

// sampleCmd represents the sample command.
var sampleCmd = newSampleCmd()

type sampleFlags struct {
	node      string
	clock     string
	gates     []string
	qualify   bool
	histogram bool
	save      bool
}

func newSampleCmd() *cobra.Command {
	var flags sampleFlags

	cmd := &cobra.Command{
		Use:   "sample PATH",
		Short: "Sample a signal at clock edges",
		Long:  sampleLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := runArgs()
			if err != nil {
				return err
			}

			pos, err := parsePosition(flags.node)
			if err != nil {
				return err
			}

			gates, err := parseGates(flags.gates)
			if err != nil {
				return err
			}

			sample := domain.SampleArgs{
				RunArgs:   run,
				Node:      pos,
				Path:      args[0],
				Clock:     flags.clock,
				Gates:     gates,
				Qualify:   flags.qualify && len(gates) > 0,
				Histogram: flags.histogram,
			}

			if flags.save {
				sample.Output = m.Path(viper.GetString(outputConfigKey))
			}

			return workflow.Sample(cmd.Context(), sample)
		},
	}

	cmd.Flags().StringVarP(&flags.node, "node", "n", "0,0", "node position as x,y")
	cmd.Flags().StringVarP(&flags.clock, "clock", "c", "", "clock signal path (default from signals.clock)")
	cmd.Flags().StringArrayVarP(&flags.gates, "gate", "g", nil, "gate as VALID[:READY] (can be repeated)")
	cmd.Flags().BoolVar(&flags.qualify, "qualify", true, "apply the gates")
	cmd.Flags().BoolVar(&flags.histogram, "histogram", false, "also show how often each value was sampled")
	cmd.Flags().BoolVarP(&flags.save, "save", "s", false, "save the series to the output directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

// parseGates reads VALID[:READY] gate specs.
func parseGates(specs []string) ([]domain.GatePath, error) {
	gates := make([]domain.GatePath, 0, len(specs))

	for _, spec := range specs {
		valid, ready, _ := strings.Cut(spec, ":")
		if strings.TrimSpace(valid) == "" {
			return nil, fmt.Errorf("gate %q: missing valid signal", spec)
		}

		gates = append(gates, domain.GatePath{Valid: strings.TrimSpace(valid), Ready: strings.TrimSpace(ready)})
	}

	return gates, nil
}
