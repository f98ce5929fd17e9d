// Package light models a single 2D light source: its attributes, which of
// them changed since the renderer last looked, and which occluders it can
// reach.
//
// A Light is not safe for concurrent mutation. The spatial queries only read
// state and may run in parallel as long as nothing mutates the light or the
// hulls meanwhile.
package light

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lumen/internal/core/check"
	"chosenoffset.com/lumen/internal/render"
)

const (
	DefaultRange     = 100.0
	DefaultRadius    = 20.0
	DefaultIntensity = 1.0

	// MinRange is the smallest accepted range, and the lower bound for radius.
	MinRange = 1.0
)

// Light is a point or area light. Enabled, CastsShadows, Position, Range and
// Radius are tracked by DirtyFlags; Intensity, ShadowType, Color and Texture
// are not.
type Light struct {
	enabled      bool
	castsShadows bool
	position     mgl64.Vec2
	lightRange   float64
	radius       float64

	intensity  float64
	shadowType ShadowType
	color      Color
	texture    render.Image

	dirty DirtyFlags
}

// New creates a light with default attributes and every dirty flag set.
// texture may be nil; the light keeps a reference but never disposes it.
func New(texture render.Image) *Light {
	return &Light{
		enabled:      true,
		castsShadows: true,
		lightRange:   DefaultRange,
		radius:       DefaultRadius,
		intensity:    DefaultIntensity,
		shadowType:   ShadowIlluminated,
		color:        White,
		texture:      texture,
		dirty:        DirtyAll,
	}
}

func (l *Light) Enabled() bool {
	return l.enabled
}

func (l *Light) SetEnabled(enabled bool) {
	assign(l, PropEnabled, &l.enabled, enabled)
}

func (l *Light) CastsShadows() bool {
	return l.castsShadows
}

func (l *Light) SetCastsShadows(casts bool) {
	assign(l, PropCastsShadows, &l.castsShadows, casts)
}

func (l *Light) Position() mgl64.Vec2 {
	return l.position
}

func (l *Light) SetPosition(pos mgl64.Vec2) {
	assign(l, PropPosition, &l.position, pos)
}

// Range is the distance the light reaches.
func (l *Light) Range() float64 {
	return l.lightRange
}

// SetRange sets the light's reach. It fails when v < 1.
//
// Radius is not re-checked: shrinking the range below the current radius is
// accepted and leaves Radius() > Range() until SetRadius is called again.
func (l *Light) SetRange(v float64) error {
	if err := check.NotLessThan(v, MinRange, "value", "Range cannot be smaller than 1."); err != nil {
		return err
	}
	assign(l, PropRange, &l.lightRange, v)
	return nil
}

// RangeSquared is Range*Range.
func (l *Light) RangeSquared() float64 {
	return l.lightRange * l.lightRange
}

// Radius is the size of the emitting area.
func (l *Light) Radius() float64 {
	return l.radius
}

// SetRadius fails unless 1 <= v <= Range().
func (l *Light) SetRadius(v float64) error {
	if err := check.WithinRange(v, MinRange, l.lightRange, "value", "Radius cannot be smaller than 1 and larger than Range."); err != nil {
		return err
	}
	assign(l, PropRadius, &l.radius, v)
	return nil
}

func (l *Light) Intensity() float64 {
	return l.intensity
}

// SetIntensity is unchecked; a zero intensity makes IntensityFactor infinite.
func (l *Light) SetIntensity(v float64) {
	l.intensity = v
}

// IntensityFactor is 1/Intensity², used to normalize falloff in the shader.
func (l *Light) IntensityFactor() float64 {
	return 1 / (l.intensity * l.intensity)
}

func (l *Light) ShadowType() ShadowType {
	return l.shadowType
}

func (l *Light) SetShadowType(t ShadowType) {
	l.shadowType = t
}

func (l *Light) Color() Color {
	return l.color
}

func (l *Light) SetColor(c Color) {
	l.color = c
}

// Texture returns the borrowed texture handle, possibly nil.
func (l *Light) Texture() render.Image {
	return l.texture
}

// SetTexture replaces the texture reference. The previous texture is left
// untouched; its owner decides when to dispose it.
func (l *Light) SetTexture(tex render.Image) {
	l.texture = tex
}

// DirtyFlags returns the flags accumulated since the last ClearDirty.
func (l *Light) DirtyFlags() DirtyFlags {
	return l.dirty
}

// AnyDirty reports whether any flag in mask is set.
func (l *Light) AnyDirty(mask DirtyFlags) bool {
	return l.dirty&mask != 0
}

// ClearDirty resets the flags in mask. It is meant for the pass that
// consumes the flags; the light itself only ever sets them.
func (l *Light) ClearDirty(mask DirtyFlags) {
	l.dirty &^= mask
}

// BoundingRectangle returns the axis-aligned square of half-extent Range
// around Position, truncated toward zero.
func (l *Light) BoundingRectangle() image.Rectangle {
	x := int(l.position[0] - l.lightRange)
	y := int(l.position[1] - l.lightRange)
	size := int(l.lightRange * 2)
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + size, Y: y + size},
	}
}
