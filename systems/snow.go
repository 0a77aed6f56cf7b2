package systems

import (
	"math/rand"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
)

// Snow is the complete simulation state advanced once per frame.
type Snow struct {
	Pool    *Pool
	Emitter *Emitter

	floorY    float64
	emitEvery int
	frame     int64
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Despawned int
	Emitted   int // slot index, or -1 when nothing was emitted
}

// NewSnow creates the simulation with every slot inactive.
func NewSnow(cfg config.SnowConfig, rng *rand.Rand) *Snow {
	rest := components.Position{X: cfg.Rest[0], Y: cfg.Rest[1], Z: cfg.Rest[2]}
	return &Snow{
		Pool:      NewPool(cfg.Capacity, rest),
		Emitter:   NewEmitter(EmitParamsFromConfig(cfg), rng),
		floorY:    cfg.FloorY,
		emitEvery: cfg.EmitEvery,
	}
}

// Step integrates all active particles, then invokes the emitter on every
// emitEvery-th frame. The frame counter advances whether or not anything emits.
func (s *Snow) Step() StepResult {
	res := StepResult{Emitted: -1}
	res.Despawned = s.Pool.Integrate(s.floorY)

	s.frame++
	if s.frame%int64(s.emitEvery) == 0 {
		if i, ok := s.Emitter.Emit(s.Pool); ok {
			res.Emitted = i
		}
	}
	return res
}

// Frame returns the number of steps taken.
func (s *Snow) Frame() int64 {
	return s.frame
}
