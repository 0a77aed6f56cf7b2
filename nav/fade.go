package nav

// Fade eases an opacity toward a target at a fixed rate per second.
type Fade struct {
	Opacity float64
	Target  float64
	Rate    float64
}

// In starts fading toward fully visible.
func (f *Fade) In() {
	f.Target = 1
}

// Out starts fading toward invisible.
func (f *Fade) Out() {
	f.Target = 0
}

// Set jumps straight to v with no transition.
func (f *Fade) Set(v float64) {
	f.Opacity = v
	f.Target = v
}

// Update advances the opacity by dt seconds.
func (f *Fade) Update(dt float64) {
	step := f.Rate * dt
	if f.Rate <= 0 {
		f.Opacity = f.Target
		return
	}
	switch {
	case f.Opacity < f.Target:
		f.Opacity = min(f.Opacity+step, f.Target)
	case f.Opacity > f.Target:
		f.Opacity = max(f.Opacity-step, f.Target)
	}
}

// Settled reports whether the opacity reached its target.
func (f *Fade) Settled() bool {
	return f.Opacity == f.Target
}
