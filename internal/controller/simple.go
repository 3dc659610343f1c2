package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// SimpleUI implements UI using a cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTree prints the scope hierarchy below root.
func (s *SimpleUI) DisplayTree(ctx context.Context, title string, root *m.Scope) error {
	return s.print(ctx, renderTree(title, root))
}

// DisplaySeries prints a sampled series formatted with the signal's rule.
func (s *SimpleUI) DisplaySeries(ctx context.Context, view SeriesView) error {
	return s.print(ctx, renderSeries(view))
}

// DisplayOutstanding prints an outstanding-count series.
func (s *SimpleUI) DisplayOutstanding(ctx context.Context, view OutstandingView) error {
	return s.print(ctx, renderOutstanding(view))
}

// DisplayLinks prints the lane usage table.
func (s *SimpleUI) DisplayLinks(ctx context.Context, rows []LinkRow) error {
	return s.print(ctx, renderLinks(rows))
}

// DisplaySummary prints the run summary.
func (s *SimpleUI) DisplaySummary(ctx context.Context, view SummaryView) error {
	return s.print(ctx, renderSummary(view))
}

// DisplayMesh prints the mesh grid.
func (s *SimpleUI) DisplayMesh(ctx context.Context, view MeshView) error {
	return s.print(ctx, renderMesh(view))
}

// DisplayHistogram prints value buckets of a series.
func (s *SimpleUI) DisplayHistogram(ctx context.Context, title string, rows []HistogramRow) error {
	return s.print(ctx, renderHistogram(title, rows))
}

func (s *SimpleUI) print(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)

	return err
}
