package shadows

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// ComputeVisibilityPolygon calculates what a light at origin can reach.
// Returns a polygon representing the lit area (everything outside is in shadow).
// boundarySteps extra rays are spread evenly around the circle so the
// polygon follows maxDistance where nothing blocks it.
func ComputeVisibilityPolygon(origin mgl64.Vec2, segments []Segment, maxDistance float64, boundarySteps int) []mgl64.Vec2 {
	// Collect all unique endpoints (vertices) from occluder segments
	vertices := collectVertices(segments)

	// Cast at each vertex and just beside it so rays slip past corners
	var angles []float64
	epsilon := 0.0001
	for _, vertex := range vertices {
		angle := math.Atan2(vertex[1]-origin[1], vertex[0]-origin[0])
		angles = append(angles,
			angle-epsilon,
			angle,
			angle+epsilon,
		)
	}
	for i := 0; i < boundarySteps; i++ {
		angles = append(angles, 2*math.Pi*float64(i)/float64(boundarySteps))
	}

	// Remove duplicate angles and sort
	angleMap := make(map[float64]bool)
	var uniqueAngles []float64
	for _, angle := range angles {
		// Normalize angle to [0, 2π)
		normalized := math.Mod(angle, 2.0*math.Pi)
		if normalized < 0 {
			normalized += 2.0 * math.Pi
		}
		if !angleMap[normalized] {
			angleMap[normalized] = true
			uniqueAngles = append(uniqueAngles, normalized)
		}
	}

	sort.Float64s(uniqueAngles)

	// For each angle, cast a ray and find the closest intersection
	visiblePoints := make([]mgl64.Vec2, 0, len(uniqueAngles))
	for _, angle := range uniqueAngles {
		dx := math.Cos(angle)
		dy := math.Sin(angle)

		closestDist := maxDistance
		closestPoint := mgl64.Vec2{
			origin[0] + dx*maxDistance,
			origin[1] + dy*maxDistance,
		}

		for _, seg := range segments {
			if intersect, dist, point := raySegmentIntersection(origin, dx, dy, seg); intersect {
				if dist < closestDist {
					closestDist = dist
					closestPoint = point
				}
			}
		}

		visiblePoints = append(visiblePoints, closestPoint)
	}

	return visiblePoints
}

// IsVisible reports whether target can be seen from origin without crossing
// any of the segments. Segments that touch target itself do not block it.
func IsVisible(origin, target mgl64.Vec2, segments []Segment) bool {
	dir := target.Sub(origin)
	length := dir.Len()
	if length == 0 {
		return true
	}
	dx, dy := dir[0]/length, dir[1]/length

	for _, seg := range segments {
		if intersect, dist, _ := raySegmentIntersection(origin, dx, dy, seg); intersect && dist < length-1e-6 {
			return false
		}
	}
	return true
}

// collectVertices extracts all unique endpoint vertices from segments
func collectVertices(segments []Segment) []mgl64.Vec2 {
	vertexMap := make(map[mgl64.Vec2]bool)

	var vertices []mgl64.Vec2
	for _, seg := range segments {
		for _, v := range [2]mgl64.Vec2{seg.A, seg.B} {
			if !vertexMap[v] {
				vertexMap[v] = true
				vertices = append(vertices, v)
			}
		}
	}

	return vertices
}

// raySegmentIntersection checks if a ray intersects a line segment
// Returns: (intersects bool, distance float64, intersection point)
func raySegmentIntersection(origin mgl64.Vec2, dx, dy float64, seg Segment) (bool, float64, mgl64.Vec2) {
	// Ray: P = origin + t * (dx, dy) for t >= 0
	// Segment: Q = seg.A + u * (seg.B - seg.A) for 0 <= u <= 1
	segDX := seg.B[0] - seg.A[0]
	segDY := seg.B[1] - seg.A[1]

	denominator := dx*segDY - dy*segDX
	if math.Abs(denominator) < 1e-10 {
		// Ray and segment are parallel
		return false, 0, mgl64.Vec2{}
	}

	diffX := seg.A[0] - origin[0]
	diffY := seg.A[1] - origin[1]

	// Cramer's rule on t*(dx,dy) - u*seg = diff
	t := (diffX*segDY - diffY*segDX) / denominator
	u := (diffX*dy - diffY*dx) / denominator

	if u >= 0 && u <= 1 && t >= 0 {
		return true, t, mgl64.Vec2{origin[0] + t*dx, origin[1] + t*dy}
	}

	return false, 0, mgl64.Vec2{}
}
