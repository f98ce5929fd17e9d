// Package hull implements polygon occluders. A Hull owns one or more parts
// in local space and keeps their world-space copies current whenever its
// transform changes.
package hull

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lumen/internal/core/check"
	"chosenoffset.com/lumen/internal/core/geom"
	"chosenoffset.com/lumen/internal/core/occluder"
)

// DirtyFlags records hull changes the lighting pass has not consumed yet.
type DirtyFlags uint8

const (
	DirtyTransform DirtyFlags = 1 << iota
	DirtyEnabled

	DirtyAll DirtyFlags = DirtyTransform | DirtyEnabled
)

// Hull is an occluder made of one or more polygon parts sharing a transform.
type Hull struct {
	parts []*Part

	position mgl64.Vec2
	origin   mgl64.Vec2
	rotation float64
	scale    mgl64.Vec2
	enabled  bool

	dirty DirtyFlags
}

// New builds a hull from local-space polygons. Every polygon needs at least
// three points.
func New(polygons ...[]mgl64.Vec2) (*Hull, error) {
	if err := check.NotLessThan(len(polygons), 1, "polygons", "Hull needs at least one part."); err != nil {
		return nil, err
	}

	h := &Hull{
		scale:   mgl64.Vec2{1, 1},
		enabled: true,
		dirty:   DirtyAll,
	}
	for _, points := range polygons {
		if err := check.NotLessThan(len(points), 3, "points", "Hull part needs at least 3 points."); err != nil {
			return nil, err
		}
		local := make([]mgl64.Vec2, len(points))
		copy(local, points)
		h.parts = append(h.parts, &Part{
			hull:        h,
			points:      local,
			enabled:     true,
			transformed: make([]mgl64.Vec2, len(points)),
		})
	}
	h.transform()
	return h, nil
}

// NewRectangle builds a single-part axis-aligned rectangle hull.
func NewRectangle(x, y, w, h float64) (*Hull, error) {
	return New([]mgl64.Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
}

// Parts implements occluder.Hull.
func (h *Hull) Parts() []occluder.HullPart {
	parts := make([]occluder.HullPart, len(h.parts))
	for i, p := range h.parts {
		parts[i] = p
	}
	return parts
}

// Part returns the i-th part.
func (h *Hull) Part(i int) *Part {
	return h.parts[i]
}

func (h *Hull) Position() mgl64.Vec2 {
	return h.position
}

func (h *Hull) SetPosition(pos mgl64.Vec2) {
	if h.position == pos {
		return
	}
	h.position = pos
	h.markTransformed()
}

// Origin is the local point that Position, Rotation and Scale act around.
func (h *Hull) Origin() mgl64.Vec2 {
	return h.origin
}

func (h *Hull) SetOrigin(origin mgl64.Vec2) {
	if h.origin == origin {
		return
	}
	h.origin = origin
	h.markTransformed()
}

// Rotation is in radians.
func (h *Hull) Rotation() float64 {
	return h.rotation
}

func (h *Hull) SetRotation(rad float64) {
	if h.rotation == rad {
		return
	}
	h.rotation = rad
	h.markTransformed()
}

func (h *Hull) Scale() mgl64.Vec2 {
	return h.scale
}

// SetScale fails unless both components are positive.
func (h *Hull) SetScale(scale mgl64.Vec2) error {
	for _, s := range scale {
		if s <= 0 {
			return &check.ArgumentError{Name: "scale", Value: scale, Message: "Scale must be positive.", Kind: check.ErrArgumentBelowMinimum}
		}
	}
	if h.scale == scale {
		return nil
	}
	h.scale = scale
	h.markTransformed()
	return nil
}

func (h *Hull) Enabled() bool {
	return h.enabled
}

// SetEnabled toggles the whole hull; a disabled hull disables all its parts.
func (h *Hull) SetEnabled(enabled bool) {
	if h.enabled == enabled {
		return
	}
	h.enabled = enabled
	h.dirty |= DirtyEnabled
}

func (h *Hull) DirtyFlags() DirtyFlags {
	return h.dirty
}

func (h *Hull) AnyDirty(mask DirtyFlags) bool {
	return h.dirty&mask != 0
}

// ClearDirty is called by the pass consuming hull changes.
func (h *Hull) ClearDirty(mask DirtyFlags) {
	h.dirty &^= mask
}

// Bounds returns the world-space rectangle around every enabled part.
func (h *Hull) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, p := range h.parts {
		if !p.Enabled() {
			continue
		}
		r = r.Union(geom.Bounds(p.transformed))
	}
	return r
}

func (h *Hull) markTransformed() {
	h.transform()
	h.dirty |= DirtyTransform
}

// transform recomputes every part's world-space vertices, centroid and radius.
func (h *Hull) transform() {
	m := mgl64.Translate2D(h.position[0], h.position[1]).
		Mul3(mgl64.HomogRotate2D(h.rotation)).
		Mul3(mgl64.Scale2D(h.scale[0], h.scale[1])).
		Mul3(mgl64.Translate2D(-h.origin[0], -h.origin[1]))

	for _, p := range h.parts {
		for i, v := range p.points {
			p.transformed[i] = m.Mul3x1(v.Vec3(1)).Vec2()
		}
		p.centroid = geom.Centroid(p.transformed)
		p.radius = geom.BoundingRadius(p.centroid, p.transformed)
	}
}

// Part is one polygon of a hull.
type Part struct {
	hull        *Hull
	points      []mgl64.Vec2
	enabled     bool
	transformed []mgl64.Vec2
	centroid    mgl64.Vec2
	radius      float64
}

// Enabled is false when either the part or its hull is disabled.
func (p *Part) Enabled() bool {
	return p.enabled && p.hull.enabled
}

func (p *Part) SetEnabled(enabled bool) {
	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	p.hull.dirty |= DirtyEnabled
}

func (p *Part) Centroid() mgl64.Vec2 {
	return p.centroid
}

func (p *Part) Radius() float64 {
	return p.radius
}

// TransformedHullVertices returns the world-space polygon. The slice is
// reused across transforms.
func (p *Part) TransformedHullVertices() []mgl64.Vec2 {
	return p.transformed
}

// Points returns the local-space polygon.
func (p *Part) Points() []mgl64.Vec2 {
	return p.points
}
