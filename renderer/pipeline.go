// Package renderer draws the snow with raylib: the scene pass renders
// billboards into an offscreen texture and the pixelation pass resamples it.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/pipeline"
)

// Pipeline runs the GPU scene pass then the GPU pixelation pass.
// The final frame stays in an offscreen texture until Present.
type Pipeline struct {
	width, height int32
	scene         *PointsPass
	pixelate      *PixelatePass

	sceneTarget  rl.RenderTexture2D
	outputTarget rl.RenderTexture2D
	timer        pipeline.PhaseTimer
	initialized  bool
}

// NewPipeline creates a GPU pipeline at the camera's viewport size.
func NewPipeline(cam *camera.Camera, mat pipeline.Material, blockSize int) *Pipeline {
	w, h := int32(cam.ViewportW), int32(cam.ViewportH)
	return &Pipeline{
		width:    w,
		height:   h,
		scene:    NewPointsPass(cam, mat),
		pixelate: NewPixelatePass(blockSize, w, h),
	}
}

// SetTimer installs a phase timer (nil disables timing).
func (p *Pipeline) SetTimer(t pipeline.PhaseTimer) {
	p.timer = t
}

// Passes returns the pass names in execution order.
func (p *Pipeline) Passes() []string {
	return []string{p.scene.Name(), p.pixelate.Name()}
}

// Init creates the render targets and compiles both shaders.
// Must be called after the raylib window is created.
func (p *Pipeline) Init() {
	if p.initialized {
		return
	}
	p.sceneTarget = rl.LoadRenderTexture(p.width, p.height)
	p.outputTarget = rl.LoadRenderTexture(p.width, p.height)
	p.scene.Init()
	p.pixelate.Init()
	p.initialized = true
}

// Render draws the position buffer through both passes into the output texture.
// Must not be called between BeginTextureMode/EndTextureMode.
func (p *Pipeline) Render(positions []float32) {
	if !p.initialized {
		p.Init()
	}

	p.startPhase(pipeline.PassScene)
	rl.BeginTextureMode(p.sceneTarget)
	p.scene.Draw(positions)
	rl.EndTextureMode()

	p.startPhase(pipeline.PassPixelate)
	rl.BeginTextureMode(p.outputTarget)
	rl.ClearBackground(rl.Blank)
	p.pixelate.Draw(p.sceneTarget.Texture)
	rl.EndTextureMode()
}

// Present draws the last rendered frame to the current target, upright.
func (p *Pipeline) Present() {
	rl.DrawTextureRec(p.outputTarget.Texture, flipped(float32(p.width), float32(p.height)), rl.Vector2{}, rl.White)
}

// Output returns the texture holding the last rendered frame (stored bottom-up).
func (p *Pipeline) Output() rl.Texture2D {
	return p.outputTarget.Texture
}

// Unload releases GPU resources.
func (p *Pipeline) Unload() {
	if !p.initialized {
		return
	}
	p.scene.Unload()
	p.pixelate.Unload()
	rl.UnloadRenderTexture(p.sceneTarget)
	rl.UnloadRenderTexture(p.outputTarget)
	p.initialized = false
}

func (p *Pipeline) startPhase(name string) {
	if p.timer != nil {
		p.timer.StartPhase(name)
	}
}
