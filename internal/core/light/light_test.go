package light

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lumen/internal/core/check"
)

// clean returns a default light with its flags consumed.
func clean() *Light {
	l := New(nil)
	l.ClearDirty(DirtyAll)
	return l
}

func TestNewDefaults(t *testing.T) {
	l := New(nil)

	assert.True(t, l.Enabled())
	assert.True(t, l.CastsShadows())
	assert.Equal(t, 100.0, l.Range())
	assert.Equal(t, 20.0, l.Radius())
	assert.Equal(t, 1.0, l.Intensity())
	assert.Equal(t, ShadowIlluminated, l.ShadowType())
	assert.Equal(t, White, l.Color())
	assert.Nil(t, l.Texture())
	assert.Equal(t, DirtyAll, l.DirtyFlags())
	assert.True(t, l.AnyDirty(DirtyPosition))
}

func TestTrackedSettersRaiseFlagOnChange(t *testing.T) {
	tests := []struct {
		name string
		flag DirtyFlags
		set  func(l *Light) error
	}{
		{"enabled", DirtyEnabled, func(l *Light) error { l.SetEnabled(false); return nil }},
		{"casts shadows", DirtyCastsShadows, func(l *Light) error { l.SetCastsShadows(false); return nil }},
		{"position", DirtyPosition, func(l *Light) error { l.SetPosition(mgl64.Vec2{3, 4}); return nil }},
		{"range", DirtyRange, func(l *Light) error { return l.SetRange(50) }},
		{"radius", DirtyRadius, func(l *Light) error { return l.SetRadius(10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := clean()
			require.NoError(t, tt.set(l))
			assert.Equal(t, tt.flag, l.DirtyFlags())

			// A second identical write adds nothing.
			l.ClearDirty(DirtyAll)
			require.NoError(t, tt.set(l))
			assert.Equal(t, DirtyFlags(0), l.DirtyFlags())
		})
	}
}

func TestSameValueWritesAreNotDirty(t *testing.T) {
	l := clean()

	l.SetEnabled(true)
	l.SetCastsShadows(true)
	l.SetPosition(mgl64.Vec2{})
	require.NoError(t, l.SetRange(100))
	require.NoError(t, l.SetRadius(20))

	assert.Equal(t, DirtyFlags(0), l.DirtyFlags())
}

func TestDirtyFlagsAccumulate(t *testing.T) {
	l := clean()

	l.SetPosition(mgl64.Vec2{1, 1})
	require.NoError(t, l.SetRange(40))
	l.SetPosition(mgl64.Vec2{2, 2})
	l.SetPosition(mgl64.Vec2{2, 2})

	assert.Equal(t, DirtyPosition|DirtyRange, l.DirtyFlags())
	assert.True(t, l.AnyDirty(DirtyRange|DirtyEnabled))
	assert.False(t, l.AnyDirty(DirtyEnabled|DirtyCastsShadows))

	l.ClearDirty(DirtyPosition)
	assert.Equal(t, DirtyRange, l.DirtyFlags())
}

func TestUntrackedSettersNeverDirty(t *testing.T) {
	l := clean()

	l.SetIntensity(2)
	l.SetShadowType(ShadowSolid)
	l.SetColor(Color{R: 1, A: 1})
	l.SetTexture(nil)

	assert.Equal(t, DirtyFlags(0), l.DirtyFlags())
	assert.Equal(t, 2.0, l.Intensity())
	assert.Equal(t, ShadowSolid, l.ShadowType())
	assert.Equal(t, Color{R: 1, A: 1}, l.Color())
}

func TestSetRangeRejectsBelowOne(t *testing.T) {
	l := clean()

	for _, v := range []float64{0.999, 0, -5} {
		err := l.SetRange(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, check.ErrArgumentBelowMinimum)
	}
	assert.Equal(t, 100.0, l.Range())
	assert.Equal(t, DirtyFlags(0), l.DirtyFlags())

	require.NoError(t, l.SetRange(1))
	assert.Equal(t, 1.0, l.Range())
}

func TestSetRadiusRejectsOutsideRange(t *testing.T) {
	l := clean()
	require.NoError(t, l.SetRange(50))
	l.ClearDirty(DirtyAll)

	for _, v := range []float64{0.5, 50.0001, 100} {
		err := l.SetRadius(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, check.ErrArgumentOutOfRange)
	}
	assert.Equal(t, 20.0, l.Radius())
	assert.Equal(t, DirtyFlags(0), l.DirtyFlags())

	require.NoError(t, l.SetRadius(1))
	require.NoError(t, l.SetRadius(50))
	assert.Equal(t, 50.0, l.Radius())
	assert.Equal(t, DirtyRadius, l.DirtyFlags())
}

func TestSetRangeBelowRadiusKeepsRadius(t *testing.T) {
	l := clean()

	// Radius is 20; shrinking range to 10 is accepted as-is.
	require.NoError(t, l.SetRange(10))
	assert.Equal(t, 20.0, l.Radius())
	assert.Greater(t, l.Radius(), l.Range())
	assert.Equal(t, DirtyRange, l.DirtyFlags())

	// The next radius write is checked against the new range.
	assert.ErrorIs(t, l.SetRadius(20), check.ErrArgumentOutOfRange)
	require.NoError(t, l.SetRadius(10))
}

func TestRangeSquared(t *testing.T) {
	l := New(nil)
	for _, v := range []float64{1, 2.5, 100, 333.3} {
		require.NoError(t, l.SetRange(v))
		assert.Equal(t, v*v, l.RangeSquared())
	}
}

func TestIntensityFactor(t *testing.T) {
	l := New(nil)
	assert.Equal(t, 1.0, l.IntensityFactor())

	l.SetIntensity(2)
	assert.Equal(t, 0.25, l.IntensityFactor())

	l.SetIntensity(0)
	assert.True(t, math.IsInf(l.IntensityFactor(), 1))
}

func TestBoundingRectangle(t *testing.T) {
	tests := []struct {
		name     string
		pos      mgl64.Vec2
		lrange   float64
		expected image.Rectangle
	}{
		{"centered at 10,10", mgl64.Vec2{10, 10}, 5, image.Rect(5, 5, 15, 15)},
		{"default at origin", mgl64.Vec2{0, 0}, 100, image.Rect(-100, -100, 100, 100)},
		{"truncates toward zero", mgl64.Vec2{10.7, -3.7}, 2.6, image.Rect(8, -6, 13, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(nil)
			l.SetPosition(tt.pos)
			require.NoError(t, l.SetRange(tt.lrange))

			r := l.BoundingRectangle()
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, int(tt.lrange*2), r.Dx())
			assert.Equal(t, int(tt.lrange*2), r.Dy())
		})
	}
}

func TestPropertyTable(t *testing.T) {
	tracked := map[Property]DirtyFlags{
		PropEnabled:      DirtyEnabled,
		PropCastsShadows: DirtyCastsShadows,
		PropPosition:     DirtyPosition,
		PropRange:        DirtyRange,
		PropRadius:       DirtyRadius,
	}
	for p, flag := range tracked {
		assert.True(t, p.Tracked(), p.String())
		assert.Equal(t, flag, p.Flag(), p.String())
	}

	for _, p := range []Property{PropIntensity, PropShadowType, PropColor, PropTexture} {
		assert.False(t, p.Tracked(), p.String())
		assert.False(t, p.Validated(), p.String())
	}

	assert.True(t, PropRange.Validated())
	assert.True(t, PropRadius.Validated())
	assert.False(t, PropPosition.Validated())
	assert.Equal(t, "Unknown", Property(42).String())
}

func TestDirtyFlagsString(t *testing.T) {
	assert.Equal(t, "None", DirtyFlags(0).String())
	assert.Equal(t, "All", DirtyAll.String())
	assert.Equal(t, "Position|Range", (DirtyPosition | DirtyRange).String())
}

func TestColor(t *testing.T) {
	c, err := ColorFromHex("ffc864")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 200.0/255, c.G, 1e-6)
	assert.InDelta(t, 100.0/255, c.B, 1e-6)
	assert.Equal(t, float32(1), c.A)

	c, err = ColorFromHex("#00000080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.A, 1e-6)

	_, err = ColorFromHex("fff")
	assert.Error(t, err)
	_, err = ColorFromHex("zzzzzz")
	assert.Error(t, err)

	r, g, b, a := White.RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestParseShadowType(t *testing.T) {
	for _, st := range []ShadowType{ShadowIlluminated, ShadowSolid, ShadowOccluded} {
		parsed, err := ParseShadowType(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
	_, err := ParseShadowType("glowing")
	assert.Error(t, err)
}
