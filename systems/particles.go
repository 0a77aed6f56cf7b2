package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
)

// EmitParams holds the emission parameters. Fixed at startup.
type EmitParams struct {
	Origin   components.Position
	Angle    float64 // radians
	SpeedMin float64 // speed is drawn once in [SpeedMin, SpeedMax)
	SpeedMax float64
	SpreadX  float64 // full width of the x position jitter
	SpreadZ  float64 // full width of the z position jitter
	JitterVX float64 // full widths of the velocity jitter
	JitterVY float64
	JitterVZ float64
}

// EmitParamsFromConfig builds emission parameters from the snow config.
func EmitParamsFromConfig(cfg config.SnowConfig) EmitParams {
	return EmitParams{
		Origin:   components.Position{X: cfg.Origin[0], Y: cfg.Origin[1], Z: cfg.Origin[2]},
		Angle:    cfg.Angle,
		SpeedMin: cfg.SpeedMin,
		SpeedMax: cfg.SpeedMax,
		SpreadX:  cfg.SpreadX,
		SpreadZ:  cfg.SpreadZ,
		JitterVX: cfg.JitterVX,
		JitterVY: cfg.JitterVY,
		JitterVZ: cfg.JitterVZ,
	}
}

// Emitter activates one free slot per call.
type Emitter struct {
	params EmitParams
	rng    *rand.Rand
	speed  float64
}

// NewEmitter creates an emitter. The base speed is drawn from rng here and
// stays fixed for the emitter's lifetime.
func NewEmitter(params EmitParams, rng *rand.Rand) *Emitter {
	return &Emitter{
		params: params,
		rng:    rng,
		speed:  params.SpeedMin + rng.Float64()*(params.SpeedMax-params.SpeedMin),
	}
}

// Speed returns the base emission speed.
func (e *Emitter) Speed() float64 {
	return e.speed
}

// Emit activates the first inactive slot, if any, and returns its index.
// At most one slot is activated per call.
func (e *Emitter) Emit(p *Pool) (int, bool) {
	i, ok := p.FirstInactive()
	if !ok {
		return -1, false
	}

	o := e.params.Origin
	pos := components.Position{
		X: o.X + e.centered()*e.params.SpreadX,
		Y: o.Y,
		Z: o.Z + e.centered()*e.params.SpreadZ,
	}
	vel := components.Velocity{
		X: e.speed*math.Cos(e.params.Angle) + e.centered()*e.params.JitterVX,
		Y: e.speed*math.Sin(e.params.Angle) + e.centered()*e.params.JitterVY,
		Z: e.centered() * e.params.JitterVZ,
	}

	p.Write(i, pos, vel)
	return i, true
}

// centered returns a uniform value in [-0.5, 0.5).
func (e *Emitter) centered() float64 {
	return e.rng.Float64() - 0.5
}
