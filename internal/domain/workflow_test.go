package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"meshtrace.dev/pkg/meshtrace/internal/adapter"
	adaptermocks "meshtrace.dev/pkg/meshtrace/internal/adapter/mocks"
	"meshtrace.dev/pkg/meshtrace/internal/controller"
	controllermocks "meshtrace.dev/pkg/meshtrace/internal/controller/mocks"
	"meshtrace.dev/pkg/meshtrace/internal/domain"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

const meshDump = m.Path("../adapter/testdata/mesh2x1.yaml")

func runArgs() domain.RunArgs {
	return domain.RunArgs{Dump: meshDump, Signals: domain.DefaultSignalPaths(), Edge: domain.Rising, Threads: 2}
}

func newTestWorkflow(t *testing.T) (domain.Workflow, *controllermocks.MockUI) {
	t.Helper()

	ui := controllermocks.NewMockUI(t)

	return domain.NewWorkflow(adapter.NewYAMLRunStore(), adapter.NewSeriesStore(), adapter.NewGeometryStore(), ui, nil), ui
}

func TestWorkflow_Summary(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	var got controller.SummaryView
	ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).
		Run(func(_ context.Context, view controller.SummaryView) { got = view }).
		Return(nil)

	require.NoError(t, wf.Summary(context.Background(), domain.SummaryArgs{RunArgs: runArgs()}))

	assert.Equal(t, "mesh2x1", got.Run)
	assert.Equal(t, 2, got.Config.Width)
	assert.Equal(t, uint64(2), got.Received)
	assert.Equal(t, uint64(2), got.Sent)
	assert.Equal(t, uint64(5), got.MaxLatency)
	assert.Equal(t, int64(1), got.MaxOutstanding)
}

func TestWorkflow_Links(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	var rows []controller.LinkRow
	ui.EXPECT().DisplayLinks(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r []controller.LinkRow) { rows = r }).
		Return(nil)

	require.NoError(t, wf.Links(context.Background(), domain.LinksArgs{RunArgs: runArgs(), Lanes: 8}))

	assert.Equal(t, []controller.LinkRow{
		{Node: m.Position{X: 0, Y: 0}, Direction: m.East, Lanes: 4, DataTotal: 3, IdleTotal: 7, EventTotal: 5, Samples: 3, Transfers: 2, LastFlit: "AB #007"},
		{Node: m.Position{X: 1, Y: 0}, Direction: m.West, Lanes: 4, DataTotal: 2, IdleTotal: 10, EventTotal: 2, Samples: 3},
	}, rows)
}

func TestWorkflow_LinksValidOnlyHandshake(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	var rows []controller.LinkRow
	ui.EXPECT().DisplayLinks(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r []controller.LinkRow) { rows = r }).
		Return(nil)

	args := runArgs()
	args.Signals.LinkReady = ""

	require.NoError(t, wf.Links(context.Background(), domain.LinksArgs{RunArgs: args}))

	// Without ready the edge at 4 also transfers.
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Transfers)
	assert.Equal(t, "AB #007", rows[0].LastFlit)
	assert.Zero(t, rows[1].Transfers)
}

func TestWorkflow_LinksSkipsPortWithoutHandshake(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	var rows []controller.LinkRow
	ui.EXPECT().DisplayLinks(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r []controller.LinkRow) { rows = r }).
		Return(nil)

	args := runArgs()
	args.Signals.LinkValid = "flit_valid"

	require.NoError(t, wf.Links(context.Background(), domain.LinksArgs{RunArgs: args}))
	assert.Empty(t, rows)
}

func TestWorkflow_SampleGatedAndView(t *testing.T) {
	wf, ui := newTestWorkflow(t)
	out := m.Path(filepath.Join(t.TempDir(), "series"))

	var (
		sampled controller.SeriesView
		bins    []controller.HistogramRow
	)

	ui.EXPECT().DisplaySeries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, view controller.SeriesView) { sampled = view }).
		Return(nil).Once()
	ui.EXPECT().DisplayHistogram(mock.Anything, "[0, 0].genblk_ports[3].link_data", mock.Anything).
		Run(func(_ context.Context, _ string, rows []controller.HistogramRow) { bins = rows }).
		Return(nil)

	err := wf.Sample(context.Background(), domain.SampleArgs{
		RunArgs:   runArgs(),
		Node:      m.Position{X: 0, Y: 0},
		Path:      "genblk_ports[3].link_data",
		Gates:     []domain.GatePath{{Valid: "genblk_ports[3].valid", Ready: "genblk_ports[3].ready"}},
		Qualify:   true,
		Histogram: true,
		Output:    out,
	})
	require.NoError(t, err)

	assert.Equal(t, m.Series[uint64]{{Time: 0, Value: 0x002A}, {Time: 2, Value: 0xAB07}}, sampled.Samples)
	assert.Equal(t, []controller.HistogramRow{
		{Value: "00 #042", Count: 1, First: 0},
		{Value: "AB #007", Count: 1, First: 2},
	}, bins)

	var viewed controller.SeriesView
	ui.EXPECT().DisplaySeries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, view controller.SeriesView) { viewed = view }).
		Return(nil).Once()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Series: out, Names: []string{sampled.Title}}))

	assert.Equal(t, "[0, 0].genblk_ports[3].link_data", viewed.Title)
	assert.Equal(t, sampled.Samples, viewed.Samples)
}

func TestWorkflow_SampleUngatedFallingEdges(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	var sampled controller.SeriesView
	ui.EXPECT().DisplaySeries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, view controller.SeriesView) { sampled = view }).
		Return(nil)

	args := runArgs()
	args.Edge = domain.Falling

	require.NoError(t, wf.Sample(context.Background(), domain.SampleArgs{
		RunArgs: args,
		Node:    m.Position{X: 1, Y: 0},
		Path:    "counters.sent",
	}))

	assert.Equal(t, m.Series[uint64]{{Time: 1, Value: 0}, {Time: 3, Value: 1}, {Time: 5, Value: 2}}, sampled.Samples)
}

func TestWorkflow_SampleErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    domain.SampleArgs
		wantErr error
	}{
		{"unknown signal", domain.SampleArgs{Path: "counters.dropped"}, domain.ErrPathNotFound},
		{"wide clock", domain.SampleArgs{Path: "counters.sent", Clock: "counters.latency"}, domain.ErrWidthMismatch},
		{"wide gate", domain.SampleArgs{Path: "counters.sent", Gates: []domain.GatePath{{Valid: "counters.sent"}}, Qualify: true}, domain.ErrWidthMismatch},
		{"unknown node", domain.SampleArgs{Node: m.Position{X: 5, Y: 5}, Path: "clk"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, _ := newTestWorkflow(t)

			tt.args.RunArgs = runArgs()

			err := wf.Sample(context.Background(), tt.args)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWorkflow_Outstanding(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	var got controller.OutstandingView
	ui.EXPECT().DisplayOutstanding(mock.Anything, mock.Anything).
		Run(func(_ context.Context, view controller.OutstandingView) { got = view }).
		Return(nil)

	node := m.Position{X: 1, Y: 0}
	require.NoError(t, wf.Outstanding(context.Background(), domain.OutstandingArgs{RunArgs: runArgs(), Node: &node}))

	assert.Equal(t, m.Series[int64]{{Time: 0, Value: 0}, {Time: 2, Value: 1}, {Time: 4, Value: 1}}, got.Samples)
	assert.Equal(t, int64(1), got.Peak)
	assert.Equal(t, int64(64), got.Capacity)
}

func TestWorkflow_Tree(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	ui.EXPECT().DisplayTree(mock.Anything, "node [0, 0] origin", mock.Anything).Return(nil)
	ui.EXPECT().DisplayTree(mock.Anything, "node [1, 0]", mock.Anything).Return(nil)

	require.NoError(t, wf.Tree(context.Background(), domain.TreeArgs{RunArgs: runArgs()}))
}

func TestWorkflow_MeshWritesGeometry(t *testing.T) {
	wf, ui := newTestWorkflow(t)
	path := filepath.Join(t.TempDir(), "geometry.yaml")

	var got controller.MeshView
	ui.EXPECT().DisplayMesh(mock.Anything, mock.Anything).
		Run(func(_ context.Context, view controller.MeshView) { got = view }).
		Return(nil)

	require.NoError(t, wf.Mesh(context.Background(), domain.MeshArgs{RunArgs: runArgs(), Geometry: m.Path(path), NodeSize: 2}))

	require.Len(t, got.Cells, 2)
	assert.True(t, got.Cells[0].Origin)
	assert.InDelta(t, 5.0/12, got.Cells[0].Links[m.East], 1e-9)
	assert.InDelta(t, 2.0/12, got.Cells[1].Links[m.West], 1e-9)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var geometry m.Geometry
	require.NoError(t, yaml.Unmarshal(data, &geometry))
	require.Len(t, geometry.Nodes, 2)

	east := geometry.Nodes[1]
	assert.Equal(t, m.Point{X: 3, Y: 0}, east.Corner)
	assert.Equal(t, m.Point{X: 4, Y: -1}, east.Center)
	require.Len(t, east.Gauges, 1)
	assert.Equal(t, m.West, east.Gauges[0].Direction)
	assert.Len(t, east.Gauges[0].Outline, 8)
}

func TestWorkflow_LoadError(t *testing.T) {
	runs := adaptermocks.NewMockRunStore(t)
	runs.EXPECT().Load(mock.Anything, meshDump).Return(nil, nil, errors.New("disk on fire"))

	wf := domain.NewWorkflow(runs, adapter.NewSeriesStore(), adapter.NewGeometryStore(), controllermocks.NewMockUI(t), nil)

	err := wf.Summary(context.Background(), domain.SummaryArgs{RunArgs: runArgs()})
	require.ErrorContains(t, err, "disk on fire")
}

func TestWorkflow_ViewMissingSeries(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	dir := m.Path(t.TempDir())

	require.NoError(t, adapter.NewSeriesStore().Save(dir, "kept", m.Series[uint64]{{Time: 1, Value: 1}}))

	err := wf.View(context.Background(), domain.ViewArgs{Series: dir, Names: []string{"gone"}})
	require.ErrorContains(t, err, "gone")
}

func TestSignalPaths_PortPath(t *testing.T) {
	assert.Equal(t, "genblk_ports[3].lane_bitmap", domain.DefaultSignalPaths().PortPath(m.East, "lane_bitmap"))
}
