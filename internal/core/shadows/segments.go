package shadows

import (
	"chosenoffset.com/lumen/internal/core/occluder"
)

// SegmentsFromParts turns every enabled part into the closed loop of edges
// that bounds it. Segment.Part is the index into parts.
func SegmentsFromParts(parts []occluder.HullPart) []Segment {
	var segments []Segment
	for i, part := range parts {
		if !part.Enabled() {
			continue
		}
		vertices := part.TransformedHullVertices()
		if len(vertices) < 2 {
			continue
		}
		j := len(vertices) - 1
		for k := range vertices {
			segments = append(segments, Segment{A: vertices[j], B: vertices[k], Part: i})
			j = k
		}
	}
	return segments
}
