package systems

// Integrate advances every active slot by one frame of explicit Euler
// (position += velocity). Slots that end below floorY are reset to the
// resting point. Returns the number of slots despawned.
func (p *Pool) Integrate(floorY float64) int {
	despawned := 0

	query := p.filter.Query()
	for query.Next() {
		pos, vel, part := query.Get()
		if !part.Active {
			continue
		}

		pos.X += vel.X
		pos.Y += vel.Y
		pos.Z += vel.Z

		if pos.Y < floorY {
			*pos = p.Rest()
			part.Active = false
			p.active--
			despawned++
		}

		p.sync(part.Index, *pos)
	}

	p.dirty = true
	return despawned
}
