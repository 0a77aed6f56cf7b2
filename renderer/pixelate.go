package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/pipeline"
)

// PixelatePass draws a texture through the block pixelation shader.
type PixelatePass struct {
	blockSize     int
	width         float32
	height        float32
	shader        rl.Shader
	pixelSizeLoc  int32
	resolutionLoc int32
	initialized   bool
}

// NewPixelatePass creates the pixelation pass for a width x height target.
func NewPixelatePass(blockSize int, width, height int32) *PixelatePass {
	return &PixelatePass{
		blockSize: blockSize,
		width:     float32(width),
		height:    float32(height),
	}
}

// Name returns the pass name.
func (p *PixelatePass) Name() string {
	return pipeline.PassPixelate
}

// Init initializes the pass (must be called after raylib window is created).
func (p *PixelatePass) Init() {
	if p.initialized {
		return
	}

	p.shader = rl.LoadShaderFromMemory(vertexShader, pixelateFragment)
	p.pixelSizeLoc = rl.GetShaderLocation(p.shader, "pixelSize")
	p.resolutionLoc = rl.GetShaderLocation(p.shader, "resolution")

	rl.SetShaderValue(p.shader, p.pixelSizeLoc, []float32{float32(p.blockSize)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(p.shader, p.resolutionLoc, []float32{p.width, p.height}, rl.ShaderUniformVec2)

	p.initialized = true
}

// Draw pixelates src into the currently bound target.
func (p *PixelatePass) Draw(src rl.Texture2D) {
	if !p.initialized {
		p.Init()
	}

	rl.BeginShaderMode(p.shader)
	rl.DrawTextureRec(src, flipped(p.width, p.height), rl.Vector2{}, rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (p *PixelatePass) Unload() {
	if p.initialized {
		rl.UnloadShader(p.shader)
		p.initialized = false
	}
}

// flipped returns a source rect that draws a render texture upright
// (render textures are stored bottom-up, OpenGL convention).
func flipped(width, height float32) rl.Rectangle {
	return rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  width,
		Height: -height,
	}
}
