package domain

import (
	"math"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// Angle returns the counter-clockwise rotation of d in degrees, North being 0.
func Angle(d m.Direction) float64 {
	return float64(((int(d)%4)+4)%4) * 90
}

// Rotate turns point around origin by the angle of dir.
func Rotate(point, origin m.Point, dir m.Direction) m.Point {
	return RotateDegrees(point, origin, Angle(dir))
}

// RotateDegrees turns point around origin counter-clockwise by deg degrees in
// a y-up frame. Quarter turns are exact.
func RotateDegrees(point, origin m.Point, deg float64) m.Point {
	sin, cos := sinCos(deg)
	d := point.Sub(origin)

	return m.Point{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	}.Add(origin)
}

func sinCos(deg float64) (float64, float64) {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	switch deg {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}

	return math.Sincos(deg * math.Pi / 180)
}

// HasNeighbor reports whether the node at pos has a link in direction dir.
// North decreases y, West decreases x.
func HasNeighbor(pos m.Position, mesh m.MeshConfig, dir m.Direction) bool {
	switch dir {
	case m.North:
		return pos.Y > 0
	case m.South:
		return pos.Y+1 < mesh.Height
	case m.West:
		return pos.X > 0
	case m.East:
		return pos.X+1 < mesh.Width
	}

	return false
}

// Neighbor returns the position adjacent to pos in direction dir. It does not
// check the mesh bounds; see HasNeighbor.
func Neighbor(pos m.Position, dir m.Direction) m.Position {
	switch dir {
	case m.North:
		pos.Y--
	case m.South:
		pos.Y++
	case m.West:
		pos.X--
	case m.East:
		pos.X++
	}

	return pos
}

// Neighbors lists the directions in which pos has a link.
func Neighbors(pos m.Position, mesh m.MeshConfig) []m.Direction {
	var dirs []m.Direction

	for _, dir := range m.Directions {
		if HasNeighbor(pos, mesh, dir) {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// NodeSpacing is the distance between node origins in node sizes.
const NodeSpacing = 1.5

// NodeOrigin places the node at pos in a y-up presentation frame: x grows to
// the east, mesh rows grow downwards.
func NodeOrigin(pos m.Position, size float64) m.Point {
	return m.Point{
		X: float64(pos.X) * NodeSpacing * size,
		Y: -float64(pos.Y) * NodeSpacing * size,
	}
}

// GaugePolygon returns the outline of a link gauge for direction dir. The
// gauge is built pointing north from center, length long and filled to
// fill (0..1), then rotated into dir. The first four points are the frame,
// the last four the filled part.
func GaugePolygon(center m.Point, length, fill float64, dir m.Direction) []m.Point {
	fill = math.Max(0, math.Min(1, fill))
	half := length / 8

	north := []m.Point{
		{X: center.X - half, Y: center.Y},
		{X: center.X + half, Y: center.Y},
		{X: center.X + half, Y: center.Y + length},
		{X: center.X - half, Y: center.Y + length},
		{X: center.X - half, Y: center.Y},
		{X: center.X + half, Y: center.Y},
		{X: center.X + half, Y: center.Y + length*fill},
		{X: center.X - half, Y: center.Y + length*fill},
	}

	out := make([]m.Point, len(north))
	for i, p := range north {
		out[i] = Rotate(p, center, dir)
	}

	return out
}
