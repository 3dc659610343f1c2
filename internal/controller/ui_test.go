package controller

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

func newTestScope(t *testing.T) *m.Scope {
	t.Helper()

	b := m.NewScopeBuilder("top", "mesh_node")
	b.AddSignal(1, "clk", 1, nil, nil)

	arq := b.Child("arq", "arq_queue")
	arq.AddSignal(2, "issued", 8, m.Radix{Base: 10}, m.Attrs{"capacity": int64(64)})

	root, err := b.Build()
	require.NoError(t, err)

	return root
}

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayTree(t *testing.T) {
	ui, buf := newTestUI()

	require.NoError(t, ui.DisplayTree(context.Background(), "node [0, 0]", newTestScope(t)))

	got := buf.String()
	assert.Contains(t, got, "node [0, 0]")
	assert.Contains(t, got, "clk [1] default")
	assert.Contains(t, got, "arq/ (arq_queue)")
	assert.Contains(t, got, "  issued [8] dec capacity=64")
}

func TestSimpleUI_DisplaySeries(t *testing.T) {
	ui, buf := newTestUI()
	sig := &m.Signal{ID: 1, Path: []string{"link_data"}, Width: 16, Rule: m.Tagged{Payload: m.Radix{Base: 16}, TagBits: 8}}

	err := ui.DisplaySeries(context.Background(), SeriesView{
		Title:   "link_data",
		Signal:  sig,
		Samples: m.Series[uint64]{{Time: 1, Value: 42}, {Time: 3, Value: 0xAB07}},
	})

	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "00 #042")
	assert.Contains(t, got, "AB #007")
	assert.Contains(t, got, "samples")
}

func TestSimpleUI_DisplayOutstanding(t *testing.T) {
	tests := []struct {
		name string
		view OutstandingView
		want []string
	}{
		{
			name: "without capacity",
			view: OutstandingView{Title: "arq", Samples: m.Series[int64]{{Time: 0, Value: 1}}, Peak: 1},
			want: []string{"arq", "max outstanding: 1\n"},
		},
		{
			name: "full queue",
			view: OutstandingView{Title: "arq", Peak: 4, Capacity: 4},
			want: []string{"max outstanding: 4 of 4", "(full)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestUI()

			require.NoError(t, ui.DisplayOutstanding(context.Background(), tt.view))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayLinks(t *testing.T) {
	ui, buf := newTestUI()

	rows := []LinkRow{{Node: m.Position{X: 0, Y: 0}, Direction: m.East, Lanes: 4, DataTotal: 3, IdleTotal: 7, EventTotal: 5, Samples: 3, Transfers: 2, LastFlit: "AB #007"}}
	require.NoError(t, ui.DisplayLinks(context.Background(), rows))

	got := buf.String()
	assert.Contains(t, got, "east")
	assert.Contains(t, got, "41.7%")
	assert.Contains(t, got, "AB #007")
}

func TestLinkRow_Utilization(t *testing.T) {
	assert.InDelta(t, 0.5, LinkRow{Lanes: 4, Samples: 2, IdleTotal: 4}.Utilization(), 1e-9)
	assert.Zero(t, LinkRow{Lanes: 4}.Utilization())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestUI()

	err := ui.DisplaySummary(context.Background(), SummaryView{
		Run:            "mesh2x1",
		Config:         m.MeshConfig{Width: 2, Height: 1, LinkDelay: 2, PacketLen: 4, ArrivalP: 0.25, EventRate: 0.5, Seed: 42},
		Received:       2,
		Sent:           2,
		MaxLatency:     5,
		MaxOutstanding: 1,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2x1 link_delay=2 packet_len=4 p=0.25 e=0.5 seed=42")
	assert.Contains(t, buf.String(), "received 2/2, max latency 5, max outstanding 1")
}

func TestSimpleUI_DisplayMesh(t *testing.T) {
	ui, buf := newTestUI()

	err := ui.DisplayMesh(context.Background(), MeshView{
		Title:  "mesh2x1",
		Config: m.MeshConfig{Width: 2, Height: 1},
		Cells: []MeshCell{
			{Position: m.Position{X: 0, Y: 0}, Origin: true, Label: "origin", Links: map[m.Direction]float64{m.East: 0.5}},
			{Position: m.Position{X: 1, Y: 0}, Links: map[m.Direction]float64{m.West: 1}},
		},
	})

	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "origin")
	assert.Contains(t, got, ">  50%")
	assert.Contains(t, got, "< 100%")

	// Both cells share the grid row.
	lines := strings.Split(got, "\n")
	found := false
	for _, line := range lines {
		if strings.Contains(line, "[0, 0]") && strings.Contains(line, "[1, 0]") {
			found = true
		}
	}

	assert.True(t, found, "cells should be joined horizontally:\n%s", got)
}

func TestSimpleUI_DisplayHistogram(t *testing.T) {
	ui, buf := newTestUI()

	require.NoError(t, ui.DisplayHistogram(context.Background(), "lane_bitmap", []HistogramRow{{Value: "0101", Count: 2, First: 4}}))

	assert.Contains(t, buf.String(), "0101")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	ui, buf := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayLinks(ctx, nil), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestTUI_ShortOutputPrintsDirectly(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayTree(context.Background(), "node [0, 0]", newTestScope(t)))
	assert.Contains(t, buf.String(), "issued [8] dec")
}

func TestPagerModel(t *testing.T) {
	content := strings.Repeat("line\n", 30)
	model := newPagerModel("tree", content)

	assert.False(t, model.needsPagination(), "unknown height never paginates")

	model.resize(80, 10)
	assert.True(t, model.needsPagination())

	model.resize(80, 100)
	assert.False(t, model.needsPagination())

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, updated.View(), "q to quit")
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))
}
