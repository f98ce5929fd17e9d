// Package game is the interactive lighting demo: a player-carried light,
// a few fixed lights and a room of occluders, driven through the
// renderer-agnostic interfaces in internal/render.
package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lumen/internal/config"
	"chosenoffset.com/lumen/internal/core/hull"
	"chosenoffset.com/lumen/internal/core/light"
	"chosenoffset.com/lumen/internal/logging"
	"chosenoffset.com/lumen/internal/render"
	"chosenoffset.com/lumen/internal/render/lighting"
)

const (
	rangeStep   = 5.0
	spinPerTick = 0.01
)

// Game holds all demo state.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Player       Player
	PlayerLight  string // Light id in LightingManager

	Renderer        render.Renderer
	InputMgr        render.InputManager
	Log             logging.Logger
	LightingManager *lighting.Manager
	LightingShader  render.Shader // Optional; falls back to multiply blending
	LightTexture    render.Image  // Shared by every light, owned here

	Spinner *hull.Hull

	WhiteImg     render.Image
	SceneTexture render.Image
	LightMap     render.Image

	// UI state
	Messages  []Message
	ShowDebug bool
	PlayerLit bool // Whether any other light reaches the player

	FrameCount int
}

// New creates the demo and populates the scene. shader and texture may be nil.
func New(cfg *config.Config, renderer render.Renderer, input render.InputManager, log logging.Logger,
	manager *lighting.Manager, shader render.Shader, texture render.Image) (*Game, error) {
	g := &Game{
		ScreenWidth:     cfg.Window.Width,
		ScreenHeight:    cfg.Window.Height,
		Player:          Player{Pos: mgl64.Vec2{float64(cfg.Window.Width) / 2, float64(cfg.Window.Height) / 2}, Speed: 3},
		Renderer:        renderer,
		InputMgr:        input,
		Log:             log,
		LightingManager: manager,
		LightingShader:  shader,
		LightTexture:    texture,
		ShowDebug:       cfg.Debug,
	}

	spinner, err := BuildScene(manager, float64(g.ScreenWidth), float64(g.ScreenHeight), texture)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	g.Spinner = spinner

	playerLight, err := manager.NewLight(texture)
	if err != nil {
		return nil, fmt.Errorf("failed to create player light: %w", err)
	}
	playerLight.SetPosition(g.Player.Pos)
	g.PlayerLight = manager.AddLight(playerLight)

	log.Infof("scene ready: %d lights, %d hulls", len(manager.Lights()), len(manager.Hulls()))
	return g, nil
}

func (g *Game) playerLight() *light.Light {
	l, _ := g.LightingManager.Light(g.PlayerLight)
	return l
}

// Update handles input, moves things and runs the lighting pass.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	pl := g.playerLight()

	var move mgl64.Vec2
	if g.InputMgr.IsKeyPressed(render.KeyW) {
		move[1] -= 1
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) {
		move[1] += 1
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) {
		move[0] -= 1
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) {
		move[0] += 1
	}
	if move != (mgl64.Vec2{}) {
		g.Player.Pos = g.clamp(g.Player.Pos.Add(move.Normalize().Mul(g.Player.Speed)))
	}
	// Unchanged positions do not dirty the light.
	pl.SetPosition(g.Player.Pos)

	if g.InputMgr.IsKeyJustPressed(render.KeyL) {
		pl.SetEnabled(!pl.Enabled())
		g.addMessage(fmt.Sprintf("Light %s", onOff(pl.Enabled())))
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyC) {
		pl.SetCastsShadows(!pl.CastsShadows())
		g.addMessage(fmt.Sprintf("Shadows %s", onOff(pl.CastsShadows())))
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyT) {
		pl.SetShadowType((pl.ShadowType() + 1) % 3)
		g.addMessage(fmt.Sprintf("Shadow type: %s", pl.ShadowType()))
	}
	if g.InputMgr.IsKeyPressed(render.KeyQ) {
		if err := pl.SetRange(pl.Range() - rangeStep); err != nil {
			g.Log.Debugf("range not changed: %v", err)
		}
	}
	if g.InputMgr.IsKeyPressed(render.KeyE) {
		if err := pl.SetRange(pl.Range() + rangeStep); err != nil {
			g.Log.Warnf("range not changed: %v", err)
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF1) {
		g.ShowDebug = !g.ShowDebug
	}

	if g.Spinner != nil {
		g.Spinner.SetRotation(g.Spinner.Rotation() + spinPerTick)
	}

	g.LightingManager.Update()
	g.PlayerLit = g.isPlayerLit()
	return nil
}

// isPlayerLit reports whether any light other than the player's reaches
// the player's position.
func (g *Game) isPlayerLit() bool {
	for _, id := range g.LightingManager.IDs() {
		if id == g.PlayerLight {
			continue
		}
		if mesh, ok := g.LightingManager.Mesh(id); ok && mesh.Contains(g.Player.Pos) {
			return true
		}
	}
	return false
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) clamp(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(p[0], 0, float64(g.ScreenWidth)),
		mgl64.Clamp(p[1], 0, float64(g.ScreenHeight)),
	}
}

func (g *Game) addMessage(text string) {
	g.Messages = append(g.Messages, Message{Text: text, TimeLeft: 2, MaxTime: 2})
}

func (g *Game) updateMessages(dt float64) {
	kept := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			kept = append(kept, msg)
		}
	}
	g.Messages = kept
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
