package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"meshtrace.dev/pkg/meshtrace/internal/adapter"
	"meshtrace.dev/pkg/meshtrace/internal/controller"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
	"meshtrace.dev/pkg/meshtrace/internal/observability"
)

// SignalPaths locate the well-known signals inside a node's root scope.
// Port is a format string taking the link direction index.
type SignalPaths struct {
	Clock      string
	Sent       string
	Received   string
	Latency    string
	Issued     string
	Completed  string
	Port       string
	LinkData   string
	LinkValid  string
	LinkReady  string
	LaneBitmap string
	DataCount  string
	EventCount string
}

// DefaultSignalPaths returns the signal layout of the reference mesh node.
func DefaultSignalPaths() SignalPaths {
	return SignalPaths{
		Clock:      "clk",
		Sent:       "counters.sent",
		Received:   "counters.received",
		Latency:    "counters.latency",
		Issued:     "arq.issued",
		Completed:  "arq.completed",
		Port:       "genblk_ports[%d]",
		LinkData:   "link_data",
		LinkValid:  "valid",
		LinkReady:  "ready",
		LaneBitmap: "lane_bitmap",
		DataCount:  "data_count",
		EventCount: "event_count",
	}
}

// PortPath is the path of signal name inside the port scope for dir.
func (p SignalPaths) PortPath(dir m.Direction, name string) string {
	return fmt.Sprintf(p.Port, int(dir)) + "." + name
}

// RunArgs are shared by every operation that reads a trace dump.
type RunArgs struct {
	Dump    m.Path
	Signals SignalPaths
	Edge    EdgeMode
	Window  m.Window
	Threads uint
}

// TreeArgs select the nodes whose scope tree is shown. A nil Node shows all.
type TreeArgs struct {
	RunArgs
	Node *m.Position
}

// GatePath names the valid and, optionally, ready signal of a gate.
type GatePath struct {
	Valid string
	Ready string
}

// SampleArgs describe a single sampling of one signal of one node.
type SampleArgs struct {
	RunArgs
	Node      m.Position
	Path      string
	Clock     string // Signals.Clock when empty
	Gates     []GatePath
	Qualify   bool
	Histogram bool
	Output    m.Path // directory to save the series to, if set
}

// OutstandingArgs select the nodes whose outstanding requests are shown.
type OutstandingArgs struct {
	RunArgs
	Node *m.Position
}

// LinksArgs configure lane usage. Lanes is used for bitmaps without a
// lanes attribute; zero means the bitmap width.
type LinksArgs struct {
	RunArgs
	Lanes int
}

// SummaryArgs configure the run summary.
type SummaryArgs struct {
	RunArgs
}

// MeshArgs configure the mesh overview. Geometry, if set, receives the
// node and gauge outlines scaled by NodeSize.
type MeshArgs struct {
	RunArgs
	Lanes    int
	Geometry m.Path
	NodeSize float64
}

// ViewArgs select saved series to show again. Empty Names shows all.
type ViewArgs struct {
	Series m.Path
	Names  []string
}

// Workflow is the set of analyses the CLI offers.
type Workflow interface {
	Tree(ctx context.Context, args TreeArgs) error
	Sample(ctx context.Context, args SampleArgs) error
	Outstanding(ctx context.Context, args OutstandingArgs) error
	Links(ctx context.Context, args LinksArgs) error
	Summary(ctx context.Context, args SummaryArgs) error
	Mesh(ctx context.Context, args MeshArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	runs     adapter.RunStore
	series   adapter.SeriesStore
	geometry adapter.GeometryStore
	ui       controller.UI
	metrics  *observability.SamplerCollector
}

// NewWorkflow creates a Workflow over the given stores and UI. metrics may
// be nil.
func NewWorkflow(
	runs adapter.RunStore,
	series adapter.SeriesStore,
	geometry adapter.GeometryStore,
	ui controller.UI,
	metrics *observability.SamplerCollector,
) Workflow {
	return &workflow{
		runs:     runs,
		series:   series,
		geometry: geometry,
		ui:       ui,
		metrics:  metrics,
	}
}

// session is a loaded run with a sampler over its trace.
type session struct {
	run     *m.Run
	sampler Sampler
	args    RunArgs
}

func (w *workflow) open(ctx context.Context, args RunArgs) (*session, error) {
	run, source, err := w.runs.Load(ctx, args.Dump)
	if err != nil {
		slog.Error("failed to load run", "dump", args.Dump, "error", err)
		return nil, fmt.Errorf("load run: %w", err)
	}

	slog.Info("run loaded", "run", run.Name, "nodes", len(run.Nodes), "width", run.Config.Width, "height", run.Config.Height)

	return &session{run: run, sampler: NewSampler(source, w.metrics), args: args}, nil
}

func (s *session) node(pos m.Position) (*m.Node, error) {
	node, ok := s.run.Node(pos)
	if !ok {
		return nil, fmt.Errorf("run %s has no node at %s", s.run.Name, pos)
	}

	return node, nil
}

func (s *session) nodes(pos *m.Position) ([]*m.Node, error) {
	if pos == nil {
		return s.run.Nodes, nil
	}

	node, err := s.node(*pos)
	if err != nil {
		return nil, err
	}

	return []*m.Node{node}, nil
}

func (s *session) resolve(node *m.Node, path string) (*m.Signal, error) {
	sig, err := ResolveString(node.Root, path)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", node.Position, err)
	}

	return sig, nil
}

// request builds an ungated request for path on the node clock.
func (s *session) request(node *m.Node, path string) (SampleRequest, error) {
	sig, err := s.resolve(node, path)
	if err != nil {
		return SampleRequest{}, err
	}

	clock, err := s.resolve(node, s.args.Signals.Clock)
	if err != nil {
		return SampleRequest{}, err
	}

	return SampleRequest{Signal: sig, Clock: clock, Edge: s.args.Edge, Window: s.args.Window}, nil
}

func (s *session) sampleAll(ctx context.Context, reqs []SampleRequest) ([]m.Series[uint64], error) {
	return s.sampler.SampleAll(ctx, reqs, max(s.args.Threads, 1))
}

func (w *workflow) Tree(ctx context.Context, args TreeArgs) error {
	s, err := w.open(ctx, args.RunArgs)
	if err != nil {
		return err
	}

	nodes, err := s.nodes(args.Node)
	if err != nil {
		return err
	}

	for _, node := range nodes {
		title := fmt.Sprintf("node %s", node.Position)
		if node.Role.IsOrigin {
			title += " origin"
		}

		if err := w.ui.DisplayTree(ctx, title, node.Root); err != nil {
			return fmt.Errorf("display tree: %w", err)
		}
	}

	return nil
}

func (w *workflow) Sample(ctx context.Context, args SampleArgs) error {
	s, err := w.open(ctx, args.RunArgs)
	if err != nil {
		return err
	}

	node, err := s.node(args.Node)
	if err != nil {
		return err
	}

	clockPath := args.Clock
	if clockPath == "" {
		clockPath = args.Signals.Clock
	}

	req := SampleRequest{Edge: args.Edge, Window: args.Window, QualifyByGates: args.Qualify}

	if req.Signal, err = s.resolve(node, args.Path); err != nil {
		return err
	}

	if req.Clock, err = s.resolve(node, clockPath); err != nil {
		return err
	}

	for _, gp := range args.Gates {
		gate := Gate{}
		if gate.Valid, err = s.resolve(node, gp.Valid); err != nil {
			return err
		}

		if gp.Ready != "" {
			if gate.Ready, err = s.resolve(node, gp.Ready); err != nil {
				return err
			}
		}

		req.Gates = append(req.Gates, gate)
	}

	series, err := s.sampler.Sample(ctx, req)
	if err != nil {
		return fmt.Errorf("sample %s: %w", args.Path, err)
	}

	name := fmt.Sprintf("%s.%s", node.Position, args.Path)

	if args.Output != "" {
		if err := w.series.Save(args.Output, name, series); err != nil {
			return fmt.Errorf("save series: %w", err)
		}
	}

	if err := w.ui.DisplaySeries(ctx, controller.SeriesView{Title: name, Signal: req.Signal, Samples: series}); err != nil {
		return fmt.Errorf("display series: %w", err)
	}

	if !args.Histogram {
		return nil
	}

	return w.ui.DisplayHistogram(ctx, name, histogramRows(req.Signal, series))
}

func histogramRows(sig *m.Signal, series m.Series[uint64]) []controller.HistogramRow {
	bins := IndexValues(series).Bins()

	rows := make([]controller.HistogramRow, len(bins))
	for i, bin := range bins {
		rows[i] = controller.HistogramRow{
			Value: m.Format(sig, m.BitsFromUint64(bin.Value, sig.Width)),
			Count: len(bin.Times),
			First: bin.Times[0],
		}
	}

	return rows
}

func (w *workflow) Outstanding(ctx context.Context, args OutstandingArgs) error {
	s, err := w.open(ctx, args.RunArgs)
	if err != nil {
		return err
	}

	nodes, err := s.nodes(args.Node)
	if err != nil {
		return err
	}

	for _, node := range nodes {
		issued, err := s.request(node, args.Signals.Issued)
		if err != nil {
			return err
		}

		completed, err := s.request(node, args.Signals.Completed)
		if err != nil {
			return err
		}

		outstanding, err := OutstandingPipeline(ctx, s.sampler, issued, completed)
		if err != nil {
			return fmt.Errorf("outstanding at %s: %w", node.Position, err)
		}

		peak, err := MaxOutstanding(outstanding)
		if err != nil && !errors.Is(err, ErrEmptyTimeBase) {
			return err
		}

		capacity, _ := issued.Signal.Attrs.Int("capacity")

		view := controller.OutstandingView{
			Title:    fmt.Sprintf("node %s %s", node.Position, args.Signals.Issued),
			Samples:  outstanding,
			Peak:     peak,
			Capacity: capacity,
		}

		if err := w.ui.DisplayOutstanding(ctx, view); err != nil {
			return fmt.Errorf("display outstanding: %w", err)
		}
	}

	return nil
}

// linkUsage samples the lane signals of every link that has a neighbor.
// Ports missing from a node's scope are skipped.
func (s *session) linkUsage(ctx context.Context, defaultLanes int) ([]controller.LinkRow, error) {
	var rows []controller.LinkRow

	for _, node := range s.run.Nodes {
		for _, dir := range Neighbors(node.Position, s.run.Config) {
			row, err := s.link(ctx, node, dir, defaultLanes)
			if errors.Is(err, ErrPathNotFound) {
				slog.Warn("link port not traced", "node", node.Position, "direction", dir, "error", err)
				continue
			}

			if err != nil {
				return nil, err
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}

func (s *session) link(ctx context.Context, node *m.Node, dir m.Direction, defaultLanes int) (controller.LinkRow, error) {
	paths := s.args.Signals

	reqs := make([]SampleRequest, 0, 4)
	for _, name := range []string{paths.DataCount, paths.LaneBitmap, paths.EventCount} {
		req, err := s.request(node, paths.PortPath(dir, name))
		if err != nil {
			return controller.LinkRow{}, err
		}

		reqs = append(reqs, req)
	}

	transfer, err := s.transferRequest(node, dir)
	if err != nil {
		return controller.LinkRow{}, err
	}

	reqs = append(reqs, transfer)

	bitmap := reqs[1].Signal

	lanes := defaultLanes
	if attr, ok := bitmap.Attrs.Int("lanes"); ok {
		lanes = int(attr)
	}

	if lanes <= 0 {
		lanes = bitmap.Width
	}

	series, err := s.sampleAll(ctx, reqs)
	if err != nil {
		return controller.LinkRow{}, fmt.Errorf("link %s %s: %w", node.Position, dir, err)
	}

	report, err := LinkUsage(series[0], series[1], series[2], lanes)
	if err != nil {
		return controller.LinkRow{}, fmt.Errorf("link %s %s: %w", node.Position, dir, err)
	}

	row := controller.LinkRow{
		Node:       node.Position,
		Direction:  dir,
		Lanes:      lanes,
		DataTotal:  report.DataTotal,
		IdleTotal:  report.IdleTotal,
		EventTotal: report.EventTotal,
		Samples:    len(report.Idle),
		Transfers:  len(series[3]),
	}

	if last, err := Last(series[3]); err == nil {
		row.LastFlit = m.Format(transfer.Signal, m.BitsFromUint64(last, transfer.Signal.Width))
	}

	return row, nil
}

// transferRequest samples the link word on edges where valid and ready are
// both asserted. An empty ready path gates on valid alone.
func (s *session) transferRequest(node *m.Node, dir m.Direction) (SampleRequest, error) {
	paths := s.args.Signals

	req, err := s.request(node, paths.PortPath(dir, paths.LinkData))
	if err != nil {
		return SampleRequest{}, err
	}

	var gate Gate
	if gate.Valid, err = s.resolve(node, paths.PortPath(dir, paths.LinkValid)); err != nil {
		return SampleRequest{}, err
	}

	if paths.LinkReady != "" {
		if gate.Ready, err = s.resolve(node, paths.PortPath(dir, paths.LinkReady)); err != nil {
			return SampleRequest{}, err
		}
	}

	req.Gates = []Gate{gate}
	req.QualifyByGates = true

	return req, nil
}

func (w *workflow) Links(ctx context.Context, args LinksArgs) error {
	s, err := w.open(ctx, args.RunArgs)
	if err != nil {
		return err
	}

	rows, err := s.linkUsage(ctx, args.Lanes)
	if err != nil {
		return err
	}

	return w.ui.DisplayLinks(ctx, rows)
}

func (w *workflow) Summary(ctx context.Context, args SummaryArgs) error {
	s, err := w.open(ctx, args.RunArgs)
	if err != nil {
		return err
	}

	in, err := s.runInput(ctx)
	if err != nil {
		return err
	}

	summary, err := Summarize(in)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", s.run.Name, err)
	}

	slog.Info("run summarized", "run", s.run.Name, "summary", summary.String())

	return w.ui.DisplaySummary(ctx, controller.SummaryView{
		Run:            s.run.Name,
		Config:         s.run.Config,
		Received:       summary.Received,
		Sent:           summary.Sent,
		MaxLatency:     summary.MaxLatency,
		MaxOutstanding: summary.MaxOutstanding,
	})
}

// runInput samples the counters of every node and the origin's latency.
func (s *session) runInput(ctx context.Context) (RunInput, error) {
	paths := s.args.Signals

	var (
		in   RunInput
		reqs []SampleRequest
	)

	for _, node := range s.run.Nodes {
		for _, path := range []string{paths.Sent, paths.Received, paths.Issued, paths.Completed} {
			req, err := s.request(node, path)
			if err != nil {
				return RunInput{}, err
			}

			reqs = append(reqs, req)
		}
	}

	origin, ok := s.run.Origin()
	if !ok {
		return RunInput{}, fmt.Errorf("run %s has no origin node", s.run.Name)
	}

	latency, err := s.request(origin, paths.Latency)
	if err != nil {
		return RunInput{}, err
	}

	series, err := s.sampleAll(ctx, append(reqs, latency))
	if err != nil {
		return RunInput{}, fmt.Errorf("sample counters: %w", err)
	}

	for i, node := range s.run.Nodes {
		counters := series[i*4 : i*4+4]

		outstanding, err := Outstanding(counters[2], counters[3])
		if err != nil {
			return RunInput{}, fmt.Errorf("outstanding at %s: %w", node.Position, err)
		}

		in.Nodes = append(in.Nodes, NodeCounters{
			Position:    node.Position,
			Origin:      node.Role.IsOrigin,
			Sent:        counters[0],
			Received:    counters[1],
			Outstanding: outstanding,
		})
	}

	in.Latency = series[len(series)-1]

	return in, nil
}

func (w *workflow) Mesh(ctx context.Context, args MeshArgs) error {
	s, err := w.open(ctx, args.RunArgs)
	if err != nil {
		return err
	}

	rows, err := s.linkUsage(ctx, args.Lanes)
	if err != nil {
		return err
	}

	view := meshView(s.run, rows)

	if args.Geometry != "" {
		size := args.NodeSize
		if size <= 0 {
			size = 1
		}

		if err := w.geometry.Save(args.Geometry, meshGeometry(s.run, view, size)); err != nil {
			return fmt.Errorf("save geometry: %w", err)
		}
	}

	return w.ui.DisplayMesh(ctx, view)
}

func meshView(run *m.Run, rows []controller.LinkRow) controller.MeshView {
	links := make(map[m.Position]map[m.Direction]float64)
	for _, row := range rows {
		if links[row.Node] == nil {
			links[row.Node] = make(map[m.Direction]float64)
		}

		links[row.Node][row.Direction] = row.Utilization()
	}

	view := controller.MeshView{Title: run.Name, Config: run.Config}

	for _, pos := range run.Config.Positions() {
		cell := controller.MeshCell{Position: pos, Links: links[pos]}

		if node, ok := run.Node(pos); ok {
			cell.Origin = node.Role.IsOrigin
			if cell.Origin {
				cell.Label = "origin"
			}
		} else {
			cell.Label = "untraced"
		}

		view.Cells = append(view.Cells, cell)
	}

	return view
}

// meshGeometry places every cell and a gauge per traced link. Gauges start
// at the node center and reach its edge.
func meshGeometry(run *m.Run, view controller.MeshView, size float64) m.Geometry {
	geometry := m.Geometry{Run: run.Name, Mesh: run.Config}

	for _, cell := range view.Cells {
		corner := NodeOrigin(cell.Position, size)
		center := corner.Add(m.Point{X: size / 2, Y: -size / 2})

		node := m.NodeGeometry{
			Position: cell.Position,
			Origin:   cell.Origin,
			Corner:   corner,
			Center:   center,
			Size:     size,
		}

		dirs := make([]m.Direction, 0, len(cell.Links))
		for dir := range cell.Links {
			dirs = append(dirs, dir)
		}

		sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

		for _, dir := range dirs {
			node.Gauges = append(node.Gauges, m.GaugeGeometry{
				Direction:   dir,
				Utilization: cell.Links[dir],
				Outline:     GaugePolygon(center, size/2, cell.Links[dir], dir),
			})
		}

		geometry.Nodes = append(geometry.Nodes, node)
	}

	return geometry
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	saved, err := w.series.Load(args.Series)
	if err != nil {
		slog.Error("failed to load saved series", "dir", args.Series, "error", err)
		return fmt.Errorf("load series: %w", err)
	}

	names := args.Names
	if len(names) == 0 {
		for name := range saved {
			names = append(names, name)
		}

		sort.Strings(names)
	}

	for _, name := range names {
		series, ok := saved[name]
		if !ok {
			return fmt.Errorf("no saved series %q in %s", name, args.Series)
		}

		// Saved series keep raw values only.
		sig := &m.Signal{Path: []string{name}, Width: 64, Rule: m.Radix{Base: 10}}

		if err := w.ui.DisplaySeries(ctx, controller.SeriesView{Title: name, Signal: sig, Samples: series}); err != nil {
			return fmt.Errorf("display series: %w", err)
		}
	}

	return nil
}
