// Package cmd provides the root command and CLI setup for meshtrace.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"meshtrace.dev/pkg/meshtrace/internal/adapter"
	"meshtrace.dev/pkg/meshtrace/internal/controller"
	"meshtrace.dev/pkg/meshtrace/internal/domain"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
	"meshtrace.dev/pkg/meshtrace/internal/observability"
)

var runStore adapter.RunStore
var seriesStore adapter.SeriesStore
var geometryStore adapter.GeometryStore
var metrics *observability.SamplerCollector
var workflow domain.Workflow
var ui controller.UI

var dumpFlag string
var outputFlag string
var parallelFlag uint
var verboseFlag bool
var edgeFlag string
var fromFlag uint64
var toFlag uint64

// spanFile and shutdownTracing live for one command execution.
var spanFile *os.File
var shutdownTracing func(context.Context) error

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	runStore = adapter.NewYAMLRunStore()
	seriesStore = adapter.NewSeriesStore()
	geometryStore = adapter.NewGeometryStore()

	var err error
	metrics, err = observability.NewSamplerCollector(nil)
	cobra.CheckErr(err)

	workflow = domain.NewWorkflow(runStore, seriesStore, geometryStore, ui, metrics)
}

const rootLongDescription = `meshtrace analyses signal traces of a simulated mesh network-on-chip.

A trace dump holds one scope tree per mesh node. Signals are addressed by
dotted paths with optional indices, e.g. genblk_ports[3].lane_bitmap, and are
sampled at clock edges, optionally qualified by valid/ready handshakes.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "meshtrace",
		Short:              "Mesh network-on-chip trace analysis",
		Long:               rootLongDescription,
		PersistentPreRunE:  startObservability,
		PersistentPostRunE: stopObservability,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&dumpFlag, dumpFlagName, "d", viper.GetString(dumpConfigKey), "trace dump to analyse")
	bindFlagToConfig(flags.Lookup(dumpFlagName), dumpConfigKey)

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "directory for saved series")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputConfigKey)

	flags.UintVarP(&parallelFlag, parallelFlagName, "p", viper.GetUint(parallelConfigKey), "number of sample requests in flight")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&edgeFlag, edgeFlagName, viper.GetString(edgeConfigKey), "clock edges to sample: rising, falling or both")
	bindFlagToConfig(flags.Lookup(edgeFlagName), edgeConfigKey)

	flags.Uint64Var(&fromFlag, fromFlagName, viper.GetUint64(fromConfigKey), "first trace time to sample")
	bindFlagToConfig(flags.Lookup(fromFlagName), fromConfigKey)

	flags.Uint64Var(&toFlag, toFlagName, viper.GetUint64(toConfigKey), "last trace time to sample (0 for the end of the trace)")
	bindFlagToConfig(flags.Lookup(toFlagName), toConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runArgs collects the shared run arguments from flags and config.
func runArgs() (domain.RunArgs, error) {
	edge, err := domain.ParseEdgeMode(viper.GetString(edgeConfigKey))
	if err != nil {
		return domain.RunArgs{}, err
	}

	window := m.Window{From: m.Time(viper.GetUint64(fromConfigKey)), To: m.Time(viper.GetUint64(toConfigKey))}
	if window.To != 0 && window.To < window.From {
		return domain.RunArgs{}, fmt.Errorf("window ends at %d before it starts at %d", window.To, window.From)
	}

	return domain.RunArgs{
		Dump:    m.Path(viper.GetString(dumpConfigKey)),
		Signals: signalPaths(),
		Edge:    edge,
		Window:  window,
		Threads: viper.GetUint(parallelConfigKey),
	}, nil
}

// parsePosition reads a node position written as "x,y", "[x, y]" or "(x,y)".
func parsePosition(text string) (m.Position, error) {
	trimmed := strings.Trim(strings.TrimSpace(text), "[]()")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return m.Position{}, fmt.Errorf("node position %q: want x,y", text)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return m.Position{}, fmt.Errorf("node position %q: %w", text, err)
	}

	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return m.Position{}, fmt.Errorf("node position %q: %w", text, err)
	}

	return m.Position{X: x, Y: y}, nil
}

// optionalPosition parses text unless it is empty.
func optionalPosition(text string) (*m.Position, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	pos, err := parsePosition(text)
	if err != nil {
		return nil, err
	}

	return &pos, nil
}

// commandContext is the command's context, or Background outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func startObservability(cmd *cobra.Command, _ []string) error {
	configureLogger("", viper.GetBool(logVerboseKey))

	var writer io.Writer

	if viper.GetBool(tracingEnabledKey) {
		f, err := os.Create(viper.GetString(tracingFileKey))
		if err != nil {
			return fmt.Errorf("open span file: %w", err)
		}

		spanFile = f
		writer = f
	}

	shutdown, err := observability.InitTracing(commandContext(cmd), observability.TracingConfig{
		Enabled:     viper.GetBool(tracingEnabledKey),
		ServiceName: viper.GetString(tracingServiceNameKey),
		SampleRatio: viper.GetFloat64(tracingSampleRatioKey),
		Writer:      writer,
	})
	if err != nil {
		return err
	}

	shutdownTracing = shutdown

	return nil
}

func stopObservability(cmd *cobra.Command, _ []string) error {
	observability.ShutdownWithTimeout(commandContext(cmd), shutdownTracing)
	shutdownTracing = nil

	if spanFile != nil {
		if err := spanFile.Close(); err != nil {
			return fmt.Errorf("close span file: %w", err)
		}

		spanFile = nil
	}

	if path := viper.GetString(metricsTextfileKey); path != "" && metrics != nil {
		if err := metrics.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
