// Package occluder defines what the light pass needs to know about the
// shapes that cast shadows. Hull geometry and its transform live elsewhere;
// lights only read these views.
package occluder

import "github.com/go-gl/mathgl/mgl64"

// HullPart is a single polygon of an occluder, already transformed into world space.
type HullPart interface {
	// Centroid is the world-space center used for circle tests.
	Centroid() mgl64.Vec2
	// Radius bounds every vertex of the part around Centroid.
	Radius() float64
	// Enabled reports whether the part takes part in occlusion.
	Enabled() bool
	// TransformedHullVertices returns the world-space polygon. Callers must not modify it.
	TransformedHullVertices() []mgl64.Vec2
}

// Hull is an occluder made of one or more parts.
type Hull interface {
	Parts() []HullPart
}
