// Package geom provides the small amount of 2D math the light and hull
// types share.
package geom

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm.
// Winding order does not matter; vertices must already be in the same space as point.
func PointInPolygon(point mgl64.Vec2, polygon []mgl64.Vec2) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i][0], polygon[i][1]
		xj, yj := polygon[j][0], polygon[j][1]

		if ((yi > point[1]) != (yj > point[1])) &&
			(point[0] < (xj-xi)*(point[1]-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// DistanceSquared returns the squared Euclidean distance between two points.
func DistanceSquared(a, b mgl64.Vec2) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return dx*dx + dy*dy
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b mgl64.Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// SignedArea returns the shoelace area of the polygon. Positive for
// counter-clockwise winding in a y-up frame.
func SignedArea(polygon []mgl64.Vec2) float64 {
	area := 0.0
	j := len(polygon) - 1
	for i := range polygon {
		area += polygon[j][0]*polygon[i][1] - polygon[i][0]*polygon[j][1]
		j = i
	}
	return area / 2
}

// Centroid returns the area-weighted centroid of a simple polygon. Degenerate
// polygons (zero area) fall back to the vertex average.
func Centroid(polygon []mgl64.Vec2) mgl64.Vec2 {
	if len(polygon) == 0 {
		return mgl64.Vec2{}
	}

	area := SignedArea(polygon)
	if math.Abs(area) < 1e-12 {
		var sum mgl64.Vec2
		for _, p := range polygon {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(polygon)))
	}

	var cx, cy float64
	j := len(polygon) - 1
	for i := range polygon {
		cross := polygon[j][0]*polygon[i][1] - polygon[i][0]*polygon[j][1]
		cx += (polygon[j][0] + polygon[i][0]) * cross
		cy += (polygon[j][1] + polygon[i][1]) * cross
		j = i
	}
	factor := 1 / (6 * area)
	return mgl64.Vec2{cx * factor, cy * factor}
}

// BoundingRadius returns the distance from center to the farthest vertex.
func BoundingRadius(center mgl64.Vec2, polygon []mgl64.Vec2) float64 {
	maxSq := 0.0
	for _, p := range polygon {
		if d := DistanceSquared(center, p); d > maxSq {
			maxSq = d
		}
	}
	return math.Sqrt(maxSq)
}

// Bounds returns the integer rectangle enclosing the given points. The
// minimum corner is floored and the maximum corner ceiled.
func Bounds(points []mgl64.Vec2) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := points[0][0], points[0][1]
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}
