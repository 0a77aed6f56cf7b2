// Package pipeline renders the snow on the CPU: a scene pass that draws every
// particle as a screen-facing point sprite, followed by a pixelation pass.
// The GPU renderer mirrors the same two passes; this package is the
// reference used headless and in tests.
package pipeline

import (
	"image"

	"github.com/pthm-cable/flurry/camera"
)

// Pass names, also used as perf phases.
const (
	PassScene    = "scene"
	PassPixelate = "pixelate"
)

// PhaseTimer receives a call as each pass starts.
type PhaseTimer interface {
	StartPhase(phase string)
}

// Pipeline runs the scene pass then the pixelation pass, always both and
// always in that order.
type Pipeline struct {
	scene    *ScenePass
	pixelate *PixelatePass

	target *image.RGBA // scene pass output
	output *image.RGBA // final frame
	timer  PhaseTimer
}

// New creates a pipeline rendering at the camera's viewport size.
func New(cam *camera.Camera, mat Material, blockSize int) *Pipeline {
	rect := image.Rect(0, 0, int(cam.ViewportW), int(cam.ViewportH))
	return &Pipeline{
		scene:    NewScenePass(cam, mat),
		pixelate: NewPixelatePass(blockSize),
		target:   image.NewRGBA(rect),
		output:   image.NewRGBA(rect),
	}
}

// SetTimer installs a phase timer (nil disables timing).
func (p *Pipeline) SetTimer(t PhaseTimer) {
	p.timer = t
}

// Passes returns the pass names in execution order.
func (p *Pipeline) Passes() []string {
	return []string{p.scene.Name(), p.pixelate.Name()}
}

// Render draws the given position buffer and returns the final frame.
// The returned image is reused by the next call.
func (p *Pipeline) Render(positions []float32) *image.RGBA {
	p.startPhase(PassScene)
	p.scene.Render(p.target, positions)

	p.startPhase(PassPixelate)
	p.pixelate.Apply(p.output, p.target)

	return p.output
}

// Scene returns the scene pass output of the last Render.
func (p *Pipeline) Scene() *image.RGBA {
	return p.target
}

func (p *Pipeline) startPhase(name string) {
	if p.timer != nil {
		p.timer.StartPhase(name)
	}
}
