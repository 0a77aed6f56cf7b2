// Package systems contains the CPU-side snow simulation: the particle pool,
// the emitter and the integrator.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flurry/components"
)

// Pool is a fixed-capacity set of particle slots.
// Each slot is an ECS entity created once and never removed; slot i always
// denotes the same entity. The position buffer mirrors every slot's position
// as consecutive float32 (x, y, z) triples for upload to the renderer.
type Pool struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Particle]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Particle]

	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	partMap *ecs.Map1[components.Particle]

	slots  []ecs.Entity
	buffer []float32
	rest   components.Position
	active int
	dirty  bool
}

// NewPool creates a pool of capacity slots, all inactive and resting at rest.
func NewPool(capacity int, rest components.Position) *Pool {
	world := ecs.NewWorld()

	p := &Pool{
		world:   world,
		mapper:  ecs.NewMap3[components.Position, components.Velocity, components.Particle](world),
		filter:  ecs.NewFilter3[components.Position, components.Velocity, components.Particle](world),
		posMap:  ecs.NewMap1[components.Position](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		partMap: ecs.NewMap1[components.Particle](world),
		slots:   make([]ecs.Entity, capacity),
		buffer:  make([]float32, capacity*3),
		rest:    rest,
		dirty:   true,
	}

	for i := range p.slots {
		pos := rest
		vel := components.Velocity{}
		part := components.Particle{Index: i}
		p.slots[i] = p.mapper.NewEntity(&pos, &vel, &part)
		p.sync(i, pos)
	}

	return p
}

// Capacity returns the fixed number of slots.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Rest returns the resting point of inactive slots.
func (p *Pool) Rest() components.Position {
	return p.rest
}

// Position returns slot i's position.
func (p *Pool) Position(i int) components.Position {
	return *p.posMap.Get(p.slots[i])
}

// Velocity returns slot i's velocity.
func (p *Pool) Velocity(i int) components.Velocity {
	return *p.velMap.Get(p.slots[i])
}

// Active reports whether slot i is active.
func (p *Pool) Active(i int) bool {
	return p.partMap.Get(p.slots[i]).Active
}

// ActiveCount returns the number of active slots.
func (p *Pool) ActiveCount() int {
	return p.active
}

// Reset parks slot i at the resting point and deactivates it.
// Velocity is left as-is until the slot is written again.
func (p *Pool) Reset(i int) {
	e := p.slots[i]
	pos := p.posMap.Get(e)
	part := p.partMap.Get(e)

	*pos = p.rest
	if part.Active {
		part.Active = false
		p.active--
	}
	p.sync(i, *pos)
	p.dirty = true
}

// Write sets slot i's position and velocity and marks it active.
func (p *Pool) Write(i int, pos components.Position, vel components.Velocity) {
	e := p.slots[i]
	part := p.partMap.Get(e)

	*p.posMap.Get(e) = pos
	*p.velMap.Get(e) = vel
	if !part.Active {
		part.Active = true
		p.active++
	}
	p.sync(i, pos)
	p.dirty = true
}

// FirstInactive returns the lowest inactive slot index.
// Linear in capacity; a free list would avoid the scan if pools grow large.
func (p *Pool) FirstInactive() (int, bool) {
	if p.active == len(p.slots) {
		return -1, false
	}
	for i, e := range p.slots {
		if !p.partMap.Get(e).Active {
			return i, true
		}
	}
	return -1, false
}

// Buffer returns the flattened position buffer. Callers must not modify it.
func (p *Pool) Buffer() []float32 {
	return p.buffer
}

// Dirty reports whether the buffer changed since the last ClearDirty.
func (p *Pool) Dirty() bool {
	return p.dirty
}

// ClearDirty marks the buffer as uploaded.
func (p *Pool) ClearDirty() {
	p.dirty = false
}

// sync copies a position into the buffer triple for slot i.
func (p *Pool) sync(i int, pos components.Position) {
	b := p.buffer[i*3 : i*3+3]
	b[0] = float32(pos.X)
	b[1] = float32(pos.Y)
	b[2] = float32(pos.Z)
}
