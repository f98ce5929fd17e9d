package geom

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var square = []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

func TestPointInPolygon(t *testing.T) {
	tests := []struct {
		name     string
		point    mgl64.Vec2
		polygon  []mgl64.Vec2
		expected bool
	}{
		{"center of square", mgl64.Vec2{5, 5}, square, true},
		{"outside right", mgl64.Vec2{15, 5}, square, false},
		{"outside above", mgl64.Vec2{5, -1}, square, false},
		{"reversed winding", mgl64.Vec2{5, 5}, []mgl64.Vec2{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, true},
		{"concave notch", mgl64.Vec2{5, 8}, []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {5, 5}, {0, 10}}, false},
		{"concave body", mgl64.Vec2{5, 2}, []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {5, 5}, {0, 10}}, true},
		{"empty polygon", mgl64.Vec2{0, 0}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointInPolygon(tt.point, tt.polygon))
		})
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 225.0, DistanceSquared(mgl64.Vec2{0, 0}, mgl64.Vec2{15, 0}))
	assert.Equal(t, 5.0, Distance(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}))
}

func TestCentroidAndRadius(t *testing.T) {
	c := Centroid(square)
	assert.InDelta(t, 5.0, c[0], 1e-9)
	assert.InDelta(t, 5.0, c[1], 1e-9)
	assert.InDelta(t, 100.0, SignedArea(square), 1e-9)
	assert.InDelta(t, 7.0710678, BoundingRadius(c, square), 1e-6)

	// Collinear points have no area; the vertex average is used.
	line := []mgl64.Vec2{{0, 0}, {2, 0}, {4, 0}}
	assert.Equal(t, mgl64.Vec2{2, 0}, Centroid(line))
}

func TestBounds(t *testing.T) {
	r := Bounds([]mgl64.Vec2{{-1.5, 2.2}, {3.1, -4}})
	assert.Equal(t, image.Rect(-2, -4, 4, 3), r)
	assert.Equal(t, image.Rectangle{}, Bounds(nil))
}
