package render

import (
	"image"
	"image/color"
)

// Shader represents a compiled shader program.
type Shader interface {
	// Dispose releases shader resources.
	Dispose()
}

// DrawRectShaderOptions contains options for drawing with a shader.
type DrawRectShaderOptions struct {
	// Images are the source images for the shader (up to 4).
	Images [4]Image
	// Uniforms are the shader uniform values.
	Uniforms map[string]interface{}
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Light and shadow code only talks to this interface.
type Renderer interface {
	// NewImage creates an offscreen render target.
	NewImage(width, height int) Image

	// FillCircle and StrokeCircle draw debug markers.
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// StrokePolygon outlines a closed polygon.
	StrokePolygon(dst Image, points []float32, strokeWidth float32, clr color.Color)

	// DrawText draws debug text.
	DrawText(dst Image, text string, x, y int)

	// CompileShader compiles shader source code into a Shader.
	CompileShader(src []byte) (Shader, error)
}

// Image is a renderable surface. Lights hold Images as textures without
// owning them: whoever created the Image disposes it.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)
	DrawRectShader(width, height int, shader Shader, opts *DrawRectShaderOptions)

	// Dispose releases the image resources.
	Dispose()
}

// Blend selects how drawn pixels combine with the destination.
type Blend int

const (
	// BlendSourceOver is regular alpha blending.
	BlendSourceOver Blend = iota
	// BlendLighter adds source to destination; used to accumulate lights.
	BlendLighter
	// BlendMultiply multiplies destination by source; used to apply a light map.
	BlendMultiply
)

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM  GeoM
	Blend Blend
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	Rotate(angle float64)
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
	Blend     Blend
}

// Vertex represents a vertex for triangle rendering.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the demo controls
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyL // Light toggle key
	KeyC // Shadow casting toggle
	KeyT // Cycle shadow type
	KeyQ // Shrink range
	KeyE // Grow range
	KeyF1
	KeyEscape
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
