package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

func assertPointNear(t *testing.T, want, got m.Point) {
	t.Helper()

	assert.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestRotate_NorthIsIdentity(t *testing.T) {
	p := m.Point{X: 3.5, Y: -2}
	o := m.Point{X: 1, Y: 1}

	assert.Equal(t, p, domain.Rotate(p, o, m.North))
}

func TestRotate_Directions(t *testing.T) {
	o := m.Point{X: 10, Y: 10}
	tip := m.Point{X: 10, Y: 12}

	tests := []struct {
		dir  m.Direction
		want m.Point
	}{
		{m.North, m.Point{X: 10, Y: 12}},
		{m.West, m.Point{X: 8, Y: 10}},
		{m.South, m.Point{X: 10, Y: 8}},
		{m.East, m.Point{X: 12, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Rotate(tip, o, tt.dir))
		})
	}
}

func TestRotate_Composes(t *testing.T) {
	p := m.Point{X: 4, Y: 1.5}
	o := m.Point{X: -1, Y: 2}

	for _, d1 := range m.Directions {
		for _, d2 := range m.Directions {
			composed := domain.Rotate(domain.Rotate(p, o, d1), o, d2)
			sum := math.Mod(domain.Angle(d1)+domain.Angle(d2), 360)

			assertPointNear(t, domain.RotateDegrees(p, o, sum), composed)
		}
	}

	northWest := domain.Rotate(domain.Rotate(p, o, m.North), o, m.West)
	assertPointNear(t, domain.Rotate(p, o, m.West), northWest)
}

func TestRotateDegrees_Arbitrary(t *testing.T) {
	got := domain.RotateDegrees(m.Point{X: 1, Y: 0}, m.Point{}, 45)

	assertPointNear(t, m.Point{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, got)
	assertPointNear(t, domain.RotateDegrees(m.Point{X: 1, Y: 0}, m.Point{}, 315), domain.RotateDegrees(m.Point{X: 1, Y: 0}, m.Point{}, -45))
}

func TestHasNeighbor(t *testing.T) {
	mesh := m.MeshConfig{Width: 4, Height: 3}

	corner := m.Position{X: 0, Y: 0}
	assert.False(t, domain.HasNeighbor(corner, mesh, m.West))
	assert.False(t, domain.HasNeighbor(corner, mesh, m.North))
	assert.True(t, domain.HasNeighbor(corner, mesh, m.East))
	assert.True(t, domain.HasNeighbor(corner, mesh, m.South))

	far := m.Position{X: 3, Y: 2}
	assert.False(t, domain.HasNeighbor(far, mesh, m.East))
	assert.False(t, domain.HasNeighbor(far, mesh, m.South))
	assert.True(t, domain.HasNeighbor(far, mesh, m.West))
	assert.True(t, domain.HasNeighbor(far, mesh, m.North))

	assert.Equal(t, []m.Direction{m.North, m.West, m.South, m.East}, domain.Neighbors(m.Position{X: 1, Y: 1}, mesh))
}

func TestNeighbor_StaysInMesh(t *testing.T) {
	mesh := m.MeshConfig{Width: 4, Height: 3}

	for _, pos := range mesh.Positions() {
		for _, dir := range m.Directions {
			assert.Equal(t, domain.HasNeighbor(pos, mesh, dir), mesh.Contains(domain.Neighbor(pos, dir)), "%s %s", pos, dir)
		}
	}
}

func TestNodeOrigin(t *testing.T) {
	assert.Equal(t, m.Point{X: 30, Y: -15}, domain.NodeOrigin(m.Position{X: 2, Y: 1}, 10))
}

func TestGaugePolygon(t *testing.T) {
	center := m.Point{X: 0, Y: 0}

	north := domain.GaugePolygon(center, 8, 0.5, m.North)
	assert.Len(t, north, 8)
	assert.Equal(t, m.Point{X: 1, Y: 8}, north[2])
	assert.Equal(t, m.Point{X: 1, Y: 4}, north[6])

	east := domain.GaugePolygon(center, 8, 2, m.East)
	assert.Equal(t, m.Point{X: 8, Y: -1}, east[2])
	assert.Equal(t, east[2], east[6])
}
