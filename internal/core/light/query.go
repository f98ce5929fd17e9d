package light

import (
	"chosenoffset.com/lumen/internal/core/geom"
	"chosenoffset.com/lumen/internal/core/occluder"
)

// Intersects treats the light as a circle of radius Range and the part as a
// circle of its bounding radius, and reports whether the circles overlap.
// It may accept parts that do not touch the lit area but never rejects one
// that does.
func (l *Light) Intersects(part occluder.HullPart) bool {
	sum := l.lightRange + part.Radius()
	return geom.DistanceSquared(l.position, part.Centroid()) < sum*sum
}

// IsInside reports whether the light's position lies inside any enabled part of h.
func (l *Light) IsInside(h occluder.Hull) bool {
	for _, part := range h.Parts() {
		if l.IsInsidePart(part) {
			return true
		}
	}
	return false
}

// IsInsidePart reports whether the light's position lies inside part.
// Disabled parts never contain the light.
func (l *Light) IsInsidePart(part occluder.HullPart) bool {
	if !part.Enabled() {
		return false
	}
	return geom.PointInPolygon(l.position, part.TransformedHullVertices())
}
