// Package components defines ECS components for the snow simulation.
package components

// Position represents a particle's world position.
type Position struct {
	X, Y, Z float64
}

// Velocity represents a particle's displacement per frame.
type Velocity struct {
	X, Y, Z float64
}

// Particle ties an entity to its pool slot.
type Particle struct {
	Index  int  // Slot index, stable for the life of the pool
	Active bool // Inactive slots rest at the pool's resting point
}
