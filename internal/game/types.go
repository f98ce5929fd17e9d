package game

import "github.com/go-gl/mathgl/mgl64"

// Player carries the movable light around the scene.
type Player struct {
	Pos   mgl64.Vec2
	Speed float64
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
