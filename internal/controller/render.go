package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(18)
	originStyle = cellStyle.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("212"))
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// busyThreshold marks links whose utilization gets highlighted.
const busyThreshold = 0.75

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	return table
}

func renderTree(title string, root *m.Scope) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	writeScope(&b, root, 0)

	return b.String()
}

func writeScope(b *strings.Builder, scope *m.Scope, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, name := range scope.SignalNames() {
		sig, _ := scope.Signal(name)

		rule := "default"
		if sig.Rule != nil {
			rule = sig.Rule.String()
		}

		fmt.Fprintf(b, "%s%s [%d] %s", indent, name, sig.Width, rule)

		if capacity, ok := sig.Attrs.Int("capacity"); ok {
			fmt.Fprintf(b, " capacity=%d", capacity)
		}

		b.WriteString("\n")
	}

	for _, name := range scope.ChildNames() {
		child, _ := scope.Child(name)

		fmt.Fprintf(b, "%s%s/", indent, name)

		if child.CompName() != "" {
			fmt.Fprintf(b, " (%s)", child.CompName())
		}

		b.WriteString("\n")
		writeScope(b, child, depth+1)
	}
}

func renderSeries(view SeriesView) string {
	var buf bytes.Buffer

	buf.WriteString(titleStyle.Render(view.Title))
	buf.WriteString("\n")

	table := newTable(&buf, []string{"Time", "Value", "Raw"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, sample := range view.Samples {
		bits := m.BitsFromUint64(sample.Value, view.Signal.Width)
		table.Append([]string{fmt.Sprint(sample.Time), m.Format(view.Signal, bits), fmt.Sprint(sample.Value)})
	}

	table.SetFooter([]string{"samples", fmt.Sprint(len(view.Samples)), ""})
	table.Render()

	return buf.String()
}

func renderOutstanding(view OutstandingView) string {
	var buf bytes.Buffer

	buf.WriteString(titleStyle.Render(view.Title))
	buf.WriteString("\n")

	table := newTable(&buf, []string{"Time", "Outstanding"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, sample := range view.Samples {
		table.Append([]string{fmt.Sprint(sample.Time), fmt.Sprint(sample.Value)})
	}

	table.Render()

	fmt.Fprintf(&buf, "max outstanding: %d", view.Peak)

	if view.Capacity > 0 {
		fmt.Fprintf(&buf, " of %d", view.Capacity)

		if view.Peak >= view.Capacity {
			buf.WriteString(" " + busyStyle.Render("(full)"))
		}
	}

	buf.WriteString("\n")

	return buf.String()
}

func renderLinks(rows []LinkRow) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Node", "Link", "Lanes", "Data", "Idle", "Events", "Util", "Xfers", "Last flit"})

	for _, row := range rows {
		table.Append([]string{
			row.Node.String(),
			row.Direction.String(),
			fmt.Sprint(row.Lanes),
			fmt.Sprint(row.DataTotal),
			fmt.Sprint(row.IdleTotal),
			fmt.Sprint(row.EventTotal),
			fmt.Sprintf("%.1f%%", row.Utilization()*100),
			fmt.Sprint(row.Transfers),
			row.LastFlit,
		})
	}

	table.Render()

	return buf.String()
}

func renderSummary(view SummaryView) string {
	var b strings.Builder

	cfg := view.Config
	fmt.Fprintf(&b, "%s %dx%d link_delay=%d packet_len=%d p=%g e=%g seed=%d\n",
		titleStyle.Render(view.Run), cfg.Width, cfg.Height, cfg.LinkDelay, cfg.PacketLen, cfg.ArrivalP, cfg.EventRate, cfg.Seed)
	fmt.Fprintf(&b, "received %d/%d, max latency %d, max outstanding %d\n",
		view.Received, view.Sent, view.MaxLatency, view.MaxOutstanding)

	return b.String()
}

var linkArrows = map[m.Direction]string{
	m.North: "^",
	m.West:  "<",
	m.South: "v",
	m.East:  ">",
}

func renderMesh(view MeshView) string {
	cells := make(map[m.Position]MeshCell, len(view.Cells))
	for _, cell := range view.Cells {
		cells[cell.Position] = cell
	}

	rows := make([]string, 0, view.Config.Height+1)
	if view.Title != "" {
		rows = append(rows, titleStyle.Render(view.Title))
	}

	for y := 0; y < view.Config.Height; y++ {
		row := make([]string, 0, view.Config.Width)
		for x := 0; x < view.Config.Width; x++ {
			row = append(row, renderCell(cells[m.Position{X: x, Y: y}], m.Position{X: x, Y: y}))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func renderCell(cell MeshCell, pos m.Position) string {
	lines := []string{pos.String()}
	if cell.Label != "" {
		lines = append(lines, cell.Label)
	}

	for _, dir := range m.Directions {
		util, ok := cell.Links[dir]
		if !ok {
			continue
		}

		style := idleStyle
		if util >= busyThreshold {
			style = busyStyle
		}

		lines = append(lines, style.Render(fmt.Sprintf("%s %3.0f%%", linkArrows[dir], util*100)))
	}

	style := cellStyle
	if cell.Origin {
		style = originStyle
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderHistogram(title string, rows []HistogramRow) string {
	var buf bytes.Buffer

	buf.WriteString(titleStyle.Render(title))
	buf.WriteString("\n")

	table := newTable(&buf, []string{"Value", "Count", "First"})

	for _, row := range rows {
		table.Append([]string{row.Value, fmt.Sprint(row.Count), fmt.Sprint(row.First)})
	}

	table.Render()

	return buf.String()
}
