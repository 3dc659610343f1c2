// Package controller renders analysis results for the terminal.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// SeriesView is a sampled series of one signal.
type SeriesView struct {
	Title   string
	Signal  *m.Signal
	Samples m.Series[uint64]
}

// OutstandingView is an outstanding-count series with its peak.
type OutstandingView struct {
	Title    string
	Samples  m.Series[int64]
	Peak     int64
	Capacity int64 // 0 when the queue declares none
}

// LinkRow is the lane usage of one directional link.
type LinkRow struct {
	Node       m.Position
	Direction  m.Direction
	Lanes      int
	DataTotal  uint64
	IdleTotal  uint64
	EventTotal uint64
	Samples    int
	// Transfers counts edges where the link handshake completed.
	Transfers  int
	// LastFlit is the last transferred link word, formatted; empty if none.
	LastFlit   string
}

// Utilization is the share of lane slots that carried traffic.
func (r LinkRow) Utilization() float64 {
	slots := uint64(r.Lanes) * uint64(r.Samples)
	if slots == 0 {
		return 0
	}

	return 1 - float64(r.IdleTotal)/float64(slots)
}

// SummaryView is the one-line run quality summary and its run parameters.
type SummaryView struct {
	Run            string
	Config         m.MeshConfig
	Received       uint64
	Sent           uint64
	MaxLatency     uint64
	MaxOutstanding int64
}

// MeshCell is one node of the mesh grid.
type MeshCell struct {
	Position m.Position
	Origin   bool
	Label    string
	Links    map[m.Direction]float64 // link direction to utilization
}

// MeshView is the mesh laid out as a grid of cells, row-major.
type MeshView struct {
	Title  string
	Config m.MeshConfig
	Cells  []MeshCell
}

// HistogramRow is one value bucket of a sampled series.
type HistogramRow struct {
	Value string
	Count int
	First m.Time
}

// UI displays analysis results. Implementations can print plain text or run
// an interactive pager.
type UI interface {
	DisplayTree(ctx context.Context, title string, root *m.Scope) error
	DisplaySeries(ctx context.Context, view SeriesView) error
	DisplayOutstanding(ctx context.Context, view OutstandingView) error
	DisplayLinks(ctx context.Context, rows []LinkRow) error
	DisplaySummary(ctx context.Context, view SummaryView) error
	DisplayMesh(ctx context.Context, view MeshView) error
	DisplayHistogram(ctx context.Context, title string, rows []HistogramRow) error
}

// NewUI returns a pager-backed TUI on terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
