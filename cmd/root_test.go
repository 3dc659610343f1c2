package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainmocks "meshtrace.dev/pkg/meshtrace/internal/domain/mocks"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// newTestRoot returns a root command with the given subcommands whose
// workflow is a mock and whose log goes to a temp dir.
func newTestRoot(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	// Subcommands bind their flags on construction, so only reset afterwards.
	t.Cleanup(resetConfig)
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "meshtrace.log"))

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	for _, sub := range subcommands {
		cmd.AddCommand(sub)
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		text    string
		want    m.Position
		wantErr bool
	}{
		{"0,0", m.Position{X: 0, Y: 0}, false},
		{"3, 2", m.Position{X: 3, Y: 2}, false},
		{"[1, 4]", m.Position{X: 1, Y: 4}, false},
		{"(2,1)", m.Position{X: 2, Y: 1}, false},
		{"1", m.Position{}, true},
		{"a,b", m.Position{}, true},
		{"1,2,3", m.Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parsePosition(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalPosition(t *testing.T) {
	pos, err := optionalPosition(" ")
	require.NoError(t, err)
	assert.Nil(t, pos)

	pos, err = optionalPosition("1,0")
	require.NoError(t, err)
	assert.Equal(t, &m.Position{X: 1, Y: 0}, pos)
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "meshtrace", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{dumpFlagName, outputFlagName, parallelFlagName, verboseFlagName, edgeFlagName, fromFlagName, toFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Equal(t, "d", cmd.PersistentFlags().Lookup(dumpFlagName).Shorthand)
	assert.Equal(t, "o", cmd.PersistentFlags().Lookup(outputFlagName).Shorthand)
	assert.Equal(t, "p", cmd.PersistentFlags().Lookup(parallelFlagName).Shorthand)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, _ := newTestRoot(t)
	output := &bytes.Buffer{}
	cmd.SetOut(output)

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "genblk_ports[3].lane_bitmap")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, runStore)
	assert.NotNil(t, seriesStore)
	assert.NotNil(t, geometryStore)
	assert.NotNil(t, metrics)
	assert.NotNil(t, workflow)

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"tree", "sample", "outstanding", "links", "summary", "mesh", "view", "init", "version"})
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestNewTestRoot_RestoresConfig(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newSummaryCmd())
		mockWorkflow.EXPECT().Summary(mock.Anything, mock.Anything).Return(nil)

		cmd.SetArgs([]string{"summary", "-d", "other.yaml", "-o", "elsewhere", "--edge", "both"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "other.yaml", viper.GetString(dumpConfigKey))
	})

	assert.Equal(t, defaultDump, viper.GetString(dumpConfigKey))
	assert.Equal(t, defaultOutput, viper.GetString(outputConfigKey))
	assert.Equal(t, defaultEdge, viper.GetString(edgeConfigKey))

	fresh := newRootCmd()
	assert.Equal(t, defaultDump, fresh.PersistentFlags().Lookup(dumpFlagName).DefValue)
	t.Cleanup(resetConfig)
}

func TestRunArgs_Window(t *testing.T) {
	cmd, _ := newTestRoot(t)
	require.NoError(t, cmd.ParseFlags([]string{"--from", "4", "--to", "2"}))

	_, err := runArgs()
	require.ErrorContains(t, err, "before it starts")
}

func TestRunArgs_BadEdge(t *testing.T) {
	cmd, _ := newTestRoot(t)
	require.NoError(t, cmd.ParseFlags([]string{"--edge", "sideways"}))

	_, err := runArgs()
	require.Error(t, err)
}

func TestObservability_WritesMetricsAndSpans(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "meshtrace.prom")
	spansPath := filepath.Join(dir, "spans.json")

	cmd, _ := newTestRoot(t)

	viper.Set(metricsTextfileKey, metricsPath)
	viper.Set(tracingEnabledKey, true)
	viper.Set(tracingFileKey, spansPath)

	require.NoError(t, startObservability(cmd, nil))
	require.NotNil(t, spanFile)

	metrics.Record("rising", false, 3, 3)

	require.NoError(t, stopObservability(cmd, nil))
	assert.Nil(t, spanFile)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "meshtrace_samples_total")

	_, err = os.Stat(spansPath)
	require.NoError(t, err)
}
