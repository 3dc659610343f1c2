package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMesh is returned for mesh configurations that cannot describe a
// rectangular mesh.
var ErrInvalidMesh = errors.New("invalid mesh configuration")

// Direction is one of the four link directions of a mesh node.
type Direction int

// Directions in counter-clockwise order starting at North.
const (
	North Direction = iota
	West
	South
	East
)

// Directions lists all link directions.
var Directions = []Direction{North, West, South, East}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	}

	return fmt.Sprintf("direction(%d)", int(d))
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// ParseDirection accepts the direction names and their first letters.
func ParseDirection(text string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "north", "n":
		return North, nil
	case "west", "w":
		return West, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	}

	return 0, fmt.Errorf("unknown direction %q", text)
}

// Position is a node's coordinate in the mesh.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// Point is a 2D point in presentation space, y pointing up.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p * f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// MeshConfig is the read-only record describing a simulated run.
type MeshConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	LinkDelay int     `yaml:"link_delay"`
	PacketLen int     `yaml:"packet_len"`
	ArrivalP  float64 `yaml:"p"`
	EventRate float64 `yaml:"e"`
	Seed      uint64  `yaml:"rng_seed"`
}

// Validate checks that the configuration describes a usable mesh.
func (c MeshConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidMesh, c.Width, c.Height)
	}

	if c.LinkDelay < 0 || c.PacketLen < 0 {
		return fmt.Errorf("%w: negative link delay or packet length", ErrInvalidMesh)
	}

	if c.ArrivalP < 0 || c.ArrivalP > 1 {
		return fmt.Errorf("%w: arrival probability %v outside [0, 1]", ErrInvalidMesh, c.ArrivalP)
	}

	return nil
}

// Contains reports whether pos lies inside the mesh.
func (c MeshConfig) Contains(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < c.Width && pos.Y < c.Height
}

// Positions lists every node position in row-major order.
func (c MeshConfig) Positions() []Position {
	positions := make([]Position, 0, c.Width*c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			positions = append(positions, Position{X: x, Y: y})
		}
	}

	return positions
}

// NodeRole flags special nodes of the mesh.
type NodeRole struct {
	IsOrigin bool `yaml:"origin"`
}

// Node is a simulated hardware instance: its position, role and root scope.
type Node struct {
	Position Position
	Role     NodeRole
	Root     *Scope
}

// Path is a filesystem path.
type Path string

// Run is a loaded simulation run: the mesh configuration and its nodes.
type Run struct {
	Name   string
	Config MeshConfig
	Nodes  []*Node
	Start  Time
	End    Time
}

// Node returns the node at pos.
func (r *Run) Node(pos Position) (*Node, bool) {
	for _, node := range r.Nodes {
		if node.Position == pos {
			return node, true
		}
	}

	return nil, false
}

// Origin returns the origin node, if the run has one.
func (r *Run) Origin() (*Node, bool) {
	for _, node := range r.Nodes {
		if node.Role.IsOrigin {
			return node, true
		}
	}

	return nil, false
}
