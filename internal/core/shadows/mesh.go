package shadows

import (
	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lumen/internal/core/geom"
	"chosenoffset.com/lumen/internal/core/light"
	"chosenoffset.com/lumen/internal/core/occluder"
)

// BoundarySteps is the number of rays used to trace the edge of an
// unobstructed light.
const BoundarySteps = 48

// MeshFor builds the lit area of l against the given occluders. Hulls that
// contain the light do not occlude it, and parts outside the light's reach
// are ignored. A light that does not cast shadows gets a plain disc.
func MeshFor(l *light.Light, hulls []occluder.Hull) Mesh {
	origin := l.Position()

	var parts []occluder.HullPart
	if l.CastsShadows() {
		for _, h := range hulls {
			if l.IsInside(h) {
				continue
			}
			for _, part := range h.Parts() {
				if part.Enabled() && l.Intersects(part) {
					parts = append(parts, part)
				}
			}
		}
	}

	segments := SegmentsFromParts(parts)
	polygon := ComputeVisibilityPolygon(origin, segments, l.Range(), BoundarySteps)

	mesh := Mesh{
		Center:  origin,
		Polygon: polygon,
		Indices: fanIndices(len(polygon)),
	}

	switch l.ShadowType() {
	case light.ShadowIlluminated:
		for _, part := range parts {
			mesh.Interiors = append(mesh.Interiors, part.TransformedHullVertices())
		}
	case light.ShadowOccluded:
		for i, part := range parts {
			others := segmentsExcept(segments, i)
			for _, v := range part.TransformedHullVertices() {
				if IsVisible(origin, v, others) {
					mesh.Interiors = append(mesh.Interiors, part.TransformedHullVertices())
					break
				}
			}
		}
	}

	return mesh
}

// Contains reports whether point lies in the lit fan.
func (m Mesh) Contains(point mgl64.Vec2) bool {
	return len(m.Polygon) >= 3 && geom.PointInPolygon(point, m.Polygon)
}

// fanIndices triangulates a closed fan of n rim points around a center
// vertex at index 0. Rims too large for uint16 indices are truncated.
func fanIndices(n int) []uint16 {
	if n < 2 {
		return nil
	}
	if n > 65534 {
		n = 65534
	}
	indices := make([]uint16, 0, n*3)
	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		indices = append(indices, 0, uint16(i+1), uint16(next))
	}
	return indices
}

func segmentsExcept(segments []Segment, part int) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Part != part {
			out = append(out, s)
		}
	}
	return out
}
