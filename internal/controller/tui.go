package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

var footerStyle = lipgloss.NewStyle().Faint(true)

// TUI implements UI using Bubble Tea. Output taller than the terminal is
// shown in a scrollable pager; shorter output is printed directly.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayTree shows the scope hierarchy below root.
func (p *TUI) DisplayTree(ctx context.Context, title string, root *m.Scope) error {
	return p.show(ctx, title, renderTree(title, root))
}

// DisplaySeries shows a sampled series.
func (p *TUI) DisplaySeries(ctx context.Context, view SeriesView) error {
	return p.show(ctx, view.Title, renderSeries(view))
}

// DisplayOutstanding shows an outstanding-count series.
func (p *TUI) DisplayOutstanding(ctx context.Context, view OutstandingView) error {
	return p.show(ctx, view.Title, renderOutstanding(view))
}

// DisplayLinks shows the lane usage table.
func (p *TUI) DisplayLinks(ctx context.Context, rows []LinkRow) error {
	return p.show(ctx, "links", renderLinks(rows))
}

// DisplaySummary shows the run summary.
func (p *TUI) DisplaySummary(ctx context.Context, view SummaryView) error {
	return p.show(ctx, view.Run, renderSummary(view))
}

// DisplayMesh shows the mesh grid.
func (p *TUI) DisplayMesh(ctx context.Context, view MeshView) error {
	return p.show(ctx, view.Title, renderMesh(view))
}

// DisplayHistogram shows value buckets of a series.
func (p *TUI) DisplayHistogram(ctx context.Context, title string, rows []HistogramRow) error {
	return p.show(ctx, title, renderHistogram(title, rows))
}

func (p *TUI) show(ctx context.Context, title, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newPagerModel(title, content)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel is the Bubble Tea model scrolling rendered output.
type pagerModel struct {
	title    string
	content  string
	lines    int
	height   int
	viewport viewport.Model
}

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(0, 0)
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		content:  content,
		lines:    strings.Count(content, "\n") + 1,
		viewport: vp,
	}
}

// resize fits the viewport to the terminal, leaving a line for the footer.
func (pm *pagerModel) resize(width, height int) {
	pm.height = height
	pm.viewport.Width = width
	pm.viewport.Height = max(height-1, 1)
}

// needsPagination reports whether the content is taller than the terminal.
// An unknown terminal height never paginates.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && pm.lines > pm.height-1
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	case tea.WindowSizeMsg:
		pm.resize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := footerStyle.Render(fmt.Sprintf("%s  %3.0f%%  q to quit", pm.title, pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n" + footer
}
