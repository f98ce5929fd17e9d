package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lumen/internal/core/hull"
	"chosenoffset.com/lumen/internal/core/light"
	"chosenoffset.com/lumen/internal/render"
	"chosenoffset.com/lumen/internal/render/lighting"
)

// staticLight describes one of the fixed lights placed around the demo room.
type staticLight struct {
	pos        mgl64.Vec2
	lightRange float64
	color      string
}

// BuildScene fills the manager with the demo occluders and fixed lights for
// a width x height room. It returns the spinning hull so Update can turn it.
func BuildScene(m *lighting.Manager, width, height float64, texture render.Image) (*hull.Hull, error) {
	w, h := width, height

	boxes := [][4]float64{
		{w * 0.20, h * 0.25, 80, 40},
		{w * 0.70, h * 0.20, 40, 140},
		{w * 0.45, h * 0.65, 120, 30},
		{w * 0.15, h * 0.70, 30, 30},
	}
	for _, b := range boxes {
		hl, err := hull.NewRectangle(b[0], b[1], b[2], b[3])
		if err != nil {
			return nil, err
		}
		m.AddHull(hl)
	}

	// A two-part "L" shaped hull: light inside either arm counts as inside.
	ell, err := hull.New(
		[]mgl64.Vec2{{0, 0}, {120, 0}, {120, 25}, {0, 25}},
		[]mgl64.Vec2{{0, 25}, {25, 25}, {25, 110}, {0, 110}},
	)
	if err != nil {
		return nil, err
	}
	ell.SetPosition(mgl64.Vec2{w * 0.80, h * 0.70})
	m.AddHull(ell)

	// A concave star that spins in Update.
	spinner, err := hull.New(star(5, 45, 18))
	if err != nil {
		return nil, err
	}
	spinner.SetPosition(mgl64.Vec2{w * 0.50, h * 0.35})
	m.AddHull(spinner)

	statics := []staticLight{
		{mgl64.Vec2{w * 0.10, h * 0.10}, 260, "ff8040"},
		{mgl64.Vec2{w * 0.90, h * 0.10}, 220, "4080ff"},
		{mgl64.Vec2{w * 0.60, h * 0.90}, 300, "60ff80"},
	}
	for _, s := range statics {
		l, err := m.NewLight(texture)
		if err != nil {
			return nil, err
		}
		if err := l.SetRange(s.lightRange); err != nil {
			return nil, err
		}
		c, err := light.ColorFromHex(s.color)
		if err != nil {
			return nil, err
		}
		l.SetColor(c)
		l.SetPosition(s.pos)
		m.AddLight(l)
	}

	return spinner, nil
}

// star returns a concave polygon centered on the origin.
func star(points int, outer, inner float64) []mgl64.Vec2 {
	vertices := make([]mgl64.Vec2, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := math.Pi * float64(i) / float64(points)
		vertices = append(vertices, mgl64.Vec2{r * math.Cos(angle), r * math.Sin(angle)})
	}
	return vertices
}
