package shadows

import "github.com/go-gl/mathgl/mgl64"

// Segment represents an occluder edge that can cast shadows
type Segment struct {
	A, B mgl64.Vec2
	Part int // Index of the part this edge came from, in the order parts were collected
}

// Mesh is the lit area of one light as a triangle fan around the light's
// position, plus the occluder interiors the light also illuminates.
type Mesh struct {
	Center    mgl64.Vec2
	Polygon   []mgl64.Vec2 // Visibility polygon, ordered by angle
	Indices   []uint16     // Fan triangles: 0 is Center, i is Polygon[i-1]
	Interiors [][]mgl64.Vec2
}
