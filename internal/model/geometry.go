package model

// GaugeGeometry is the outline of one link gauge.
type GaugeGeometry struct {
	Direction   Direction `yaml:"direction"`
	Utilization float64   `yaml:"utilization"`
	Outline     []Point   `yaml:"outline"`
}

// NodeGeometry places a node and its gauges in presentation space.
type NodeGeometry struct {
	Position Position        `yaml:"position"`
	Origin   bool            `yaml:"origin,omitempty"`
	Corner   Point           `yaml:"corner"`
	Center   Point           `yaml:"center"`
	Size     float64         `yaml:"size"`
	Gauges   []GaugeGeometry `yaml:"gauges,omitempty"`
}

// Geometry is what an external renderer needs to draw a run.
type Geometry struct {
	Run   string         `yaml:"run"`
	Mesh  MeshConfig     `yaml:"mesh"`
	Nodes []NodeGeometry `yaml:"nodes"`
}
