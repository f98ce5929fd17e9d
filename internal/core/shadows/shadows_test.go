package shadows

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lumen/internal/core/hull"
	"chosenoffset.com/lumen/internal/core/light"
	"chosenoffset.com/lumen/internal/core/occluder"
)

func rect(t *testing.T, x, y, w, h float64) *hull.Hull {
	t.Helper()
	hl, err := hull.NewRectangle(x, y, w, h)
	require.NoError(t, err)
	return hl
}

func TestRaySegmentIntersection(t *testing.T) {
	seg := Segment{A: mgl64.Vec2{5, -1}, B: mgl64.Vec2{5, 1}}

	hit, dist, point := raySegmentIntersection(mgl64.Vec2{0, 0}, 1, 0, seg)
	require.True(t, hit)
	assert.InDelta(t, 5.0, dist, 1e-9)
	assert.InDelta(t, 5.0, point[0], 1e-9)
	assert.InDelta(t, 0.0, point[1], 1e-9)

	// Pointing away
	hit, _, _ = raySegmentIntersection(mgl64.Vec2{0, 0}, -1, 0, seg)
	assert.False(t, hit)

	// Passing beside the segment
	hit, _, _ = raySegmentIntersection(mgl64.Vec2{0, 5}, 1, 0, seg)
	assert.False(t, hit)

	// Parallel
	hit, _, _ = raySegmentIntersection(mgl64.Vec2{0, 0}, 0, 1, seg)
	assert.False(t, hit)
}

func TestSegmentsFromParts(t *testing.T) {
	h, err := hull.New(
		[]mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}},
		[]mgl64.Vec2{{5, 5}, {6, 5}, {6, 6}, {5, 6}},
	)
	require.NoError(t, err)

	segments := SegmentsFromParts(h.Parts())
	assert.Len(t, segments, 7)
	assert.Equal(t, mgl64.Vec2{1, 1}, segments[0].A)
	assert.Equal(t, mgl64.Vec2{0, 0}, segments[0].B)
	assert.Equal(t, 1, segments[3].Part)

	h.Part(0).SetEnabled(false)
	assert.Len(t, SegmentsFromParts(h.Parts()), 4)
}

func TestVisibilityPolygonUnobstructed(t *testing.T) {
	origin := mgl64.Vec2{10, 10}
	polygon := ComputeVisibilityPolygon(origin, nil, 50, 16)

	require.Len(t, polygon, 16)
	for _, p := range polygon {
		assert.InDelta(t, 50.0, p.Sub(origin).Len(), 1e-9)
	}
}

func TestVisibilityPolygonBlocked(t *testing.T) {
	wall := rect(t, 20, -50, 5, 100)
	segments := SegmentsFromParts(wall.Parts())

	polygon := ComputeVisibilityPolygon(mgl64.Vec2{0, 0}, segments, 100, 32)

	// Nothing in the polygon reaches past the wall's near face.
	for _, p := range polygon {
		if math.Abs(p[1]) < 40 {
			assert.LessOrEqual(t, p[0], 20.0+1e-6)
		}
	}
}

func TestIsVisible(t *testing.T) {
	wall := rect(t, 20, -50, 5, 100)
	segments := SegmentsFromParts(wall.Parts())

	assert.True(t, IsVisible(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, segments))
	assert.False(t, IsVisible(mgl64.Vec2{0, 0}, mgl64.Vec2{40, 0}, segments))
	// A vertex on the wall itself is visible.
	assert.True(t, IsVisible(mgl64.Vec2{0, 0}, mgl64.Vec2{20, -50}, segments))
}

func TestMeshFor(t *testing.T) {
	l := light.New(nil)
	require.NoError(t, l.SetRange(100))

	near := rect(t, 30, -5, 10, 10)
	far := rect(t, 500, 500, 10, 10)

	mesh := MeshFor(l, []occluder.Hull{near, far})
	require.NotEmpty(t, mesh.Polygon)
	assert.Len(t, mesh.Indices, len(mesh.Polygon)*3)
	assert.Equal(t, mgl64.Vec2{0, 0}, mesh.Center)

	assert.True(t, mesh.Contains(mgl64.Vec2{20, 0}))
	assert.False(t, mesh.Contains(mgl64.Vec2{60, 0}), "behind the near hull")
	assert.True(t, mesh.Contains(mgl64.Vec2{-60, 0}))

	// Illuminated lights the near hull only; the far one is out of reach.
	require.Len(t, mesh.Interiors, 1)
}

func TestMeshForWithoutShadows(t *testing.T) {
	l := light.New(nil)
	l.SetCastsShadows(false)

	mesh := MeshFor(l, []occluder.Hull{rect(t, 30, -5, 10, 10)})
	assert.Len(t, mesh.Polygon, BoundarySteps)
	assert.True(t, mesh.Contains(mgl64.Vec2{60, 0}))
	assert.Empty(t, mesh.Interiors)
}

func TestMeshForLightInsideHull(t *testing.T) {
	l := light.New(nil)
	l.SetPosition(mgl64.Vec2{5, 5})

	box := rect(t, 0, 0, 10, 10)
	mesh := MeshFor(l, []occluder.Hull{box})

	// The containing hull does not occlude its own light.
	assert.True(t, mesh.Contains(mgl64.Vec2{50, 5}))
	assert.Empty(t, mesh.Interiors)
}

func TestMeshForShadowTypes(t *testing.T) {
	front := rect(t, 20, -20, 5, 40)
	hidden := rect(t, 50, -5, 5, 10)
	hulls := []occluder.Hull{front, hidden}

	l := light.New(nil)

	l.SetShadowType(light.ShadowIlluminated)
	assert.Len(t, MeshFor(l, hulls).Interiors, 2)

	l.SetShadowType(light.ShadowSolid)
	assert.Empty(t, MeshFor(l, hulls).Interiors)

	l.SetShadowType(light.ShadowOccluded)
	interiors := MeshFor(l, hulls).Interiors
	require.Len(t, interiors, 1)
	assert.Equal(t, front.Part(0).TransformedHullVertices(), interiors[0])
}

func TestFanIndices(t *testing.T) {
	assert.Nil(t, fanIndices(1))
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 1}, fanIndices(3))
}
