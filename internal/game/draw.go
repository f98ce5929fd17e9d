package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lumen/internal/core/geom"
	"chosenoffset.com/lumen/internal/core/light"
	"chosenoffset.com/lumen/internal/core/shadows"
	"chosenoffset.com/lumen/internal/render"
)

var (
	floorColor = color.RGBA{90, 86, 80, 255}
	hullColor  = color.RGBA{40, 44, 52, 255}
)

// Draw renders the scene, the light map and the UI.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()

	// Ensure render textures exist and are the right size
	g.SceneTexture = g.ensureTexture(g.SceneTexture, w, h)
	g.LightMap = g.ensureTexture(g.LightMap, w, h)
	if g.WhiteImg == nil {
		g.WhiteImg = g.Renderer.NewImage(3, 3)
		g.WhiteImg.Fill(color.White)
	}

	// Step 1: Scene without lighting
	g.SceneTexture.Fill(floorColor)
	g.drawHulls(g.SceneTexture)

	// Step 2: Accumulate every light's lit area
	g.drawLightMap()

	// Step 3: Combine
	g.applyLighting(screen)

	// Step 4: UI on top, unaffected by lighting
	g.drawUI(screen)
	g.FrameCount++
}

func (g *Game) ensureTexture(img render.Image, w, h int) render.Image {
	if img != nil && !needsResize(img, w, h) {
		return img
	}
	if img != nil {
		img.Dispose()
	}
	return g.Renderer.NewImage(w, h)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

func (g *Game) drawHulls(dst render.Image) {
	r, gr, b, a := colorComponents(hullColor)
	for _, hl := range g.LightingManager.Hulls() {
		for _, part := range hl.Parts() {
			if !part.Enabled() {
				continue
			}
			vertices, indices := fan(part.Centroid(), part.TransformedHullVertices(), func(mgl64.Vec2) [4]float32 {
				return [4]float32{r, gr, b, a}
			})
			dst.DrawTriangles(vertices, indices, g.WhiteImg, &render.DrawTrianglesOptions{AntiAlias: true})
		}
	}
}

func (g *Game) drawLightMap() {
	ambient := uint8(255 * g.LightingManager.AmbientLight())
	g.LightMap.Fill(color.RGBA{ambient, ambient, ambient, 255})

	opts := &render.DrawTrianglesOptions{Blend: render.BlendLighter}
	for _, id := range g.LightingManager.IDs() {
		l, _ := g.LightingManager.Light(id)
		mesh, ok := g.LightingManager.Mesh(id)
		if !ok || !l.Enabled() {
			continue
		}

		src := g.WhiteImg
		if tex := l.Texture(); tex != nil {
			src = tex
		}
		shade := falloff(l)

		vertices := lightVertices(l, mesh, src)
		g.LightMap.DrawTriangles(vertices, mesh.Indices, src, opts)

		for _, interior := range mesh.Interiors {
			vs, is := fan(geom.Centroid(interior), interior, shade)
			g.LightMap.DrawTriangles(vs, is, g.WhiteImg, opts)
		}
	}
}

// lightVertices turns a light mesh into textured vertices. Texture
// coordinates map the light's bounding square onto the whole texture.
func lightVertices(l *light.Light, mesh shadows.Mesh, tex render.Image) []render.Vertex {
	shade := falloff(l)
	tw, th := tex.Size()
	rng := l.Range()
	origin := l.Position().Sub(mgl64.Vec2{rng, rng})

	vertex := func(p mgl64.Vec2) render.Vertex {
		c := shade(p)
		uv := p.Sub(origin).Mul(1 / (2 * rng))
		return render.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: float32(uv[0] * float64(tw)), SrcY: float32(uv[1] * float64(th)),
			ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
		}
	}

	vertices := make([]render.Vertex, 0, len(mesh.Polygon)+1)
	vertices = append(vertices, vertex(mesh.Center))
	for _, p := range mesh.Polygon {
		vertices = append(vertices, vertex(p))
	}
	return vertices
}

// falloff returns the premultiplied light color reaching a point.
func falloff(l *light.Light) func(mgl64.Vec2) [4]float32 {
	c := l.Color()
	pos, rng, exp := l.Position(), l.Range(), l.IntensityFactor()
	return func(p mgl64.Vec2) [4]float32 {
		t := 1 - math.Min(geom.Distance(pos, p)/rng, 1)
		f := float32(math.Pow(t, exp)) * c.A
		return [4]float32{c.R * f, c.G * f, c.B * f, f}
	}
}

// fan triangulates a polygon that is star-shaped around center.
func fan(center mgl64.Vec2, polygon []mgl64.Vec2, shade func(mgl64.Vec2) [4]float32) ([]render.Vertex, []uint16) {
	vertices := make([]render.Vertex, 0, len(polygon)+1)
	for _, p := range append([]mgl64.Vec2{center}, polygon...) {
		c := shade(p)
		vertices = append(vertices, render.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
		})
	}

	n := len(polygon)
	indices := make([]uint16, 0, n*3)
	for i := 0; i < n; i++ {
		indices = append(indices, 0, uint16(i+1), uint16((i+1)%n+1))
	}
	return vertices, indices
}

func (g *Game) applyLighting(screen render.Image) {
	if g.LightingShader == nil {
		screen.DrawImage(g.SceneTexture, nil)
		screen.DrawImage(g.LightMap, &render.DrawImageOptions{Blend: render.BlendMultiply})
		return
	}

	w, h := screen.Size()
	opts := &render.DrawRectShaderOptions{Uniforms: g.LightingManager.Uniforms(0, 0)}
	opts.Images[0] = g.SceneTexture
	opts.Images[1] = g.LightMap
	screen.DrawRectShader(w, h, g.LightingShader, opts)
}

func (g *Game) drawUI(screen render.Image) {
	pl := g.playerLight()
	px, py := float32(g.Player.Pos[0]), float32(g.Player.Pos[1])
	g.Renderer.FillCircle(screen, px, py, 6, color.RGBA{255, 255, 100, 255})

	if g.ShowDebug {
		for _, id := range g.LightingManager.IDs() {
			l, _ := g.LightingManager.Light(id)
			if !l.Enabled() {
				continue
			}
			pos := l.Position()
			g.Renderer.StrokeCircle(screen, float32(pos[0]), float32(pos[1]), float32(l.Radius()), 1, color.RGBA{255, 255, 255, 160})
			for _, occ := range g.LightingManager.Occluders(id) {
				for _, part := range occ.Parts() {
					g.Renderer.StrokePolygon(screen, flatten(part.TransformedHullVertices()), 1, color.RGBA{255, 80, 80, 200})
				}
			}
		}

		lines := []string{
			fmt.Sprintf("range %.0f  radius %.0f  shadows %s  type %s",
				pl.Range(), pl.Radius(), onOff(pl.CastsShadows()), pl.ShadowType()),
			fmt.Sprintf("occluders %d  inside hull %v  lit by others %v",
				len(g.LightingManager.Occluders(g.PlayerLight)), g.LightingManager.Inside(g.PlayerLight), g.PlayerLit),
			"WASD move  L light  C shadows  T type  Q/E range  F1 debug",
		}
		for i, line := range lines {
			g.Renderer.DrawText(screen, line, 10, 10+i*16)
		}
	}

	y := g.ScreenHeight - 30
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, 10, y)
		y -= 16
	}
}

func flatten(points []mgl64.Vec2) []float32 {
	out := make([]float32, 0, len(points)*2)
	for _, p := range points {
		out = append(out, float32(p[0]), float32(p[1]))
	}
	return out
}

func colorComponents(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
