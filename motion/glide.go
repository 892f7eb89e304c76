package motion

// GlideAt returns start + (target-start)*(step/total). The final step and
// anything past it return target exactly so repeated glides do not drift.
func GlideAt(start, target float64, step, total int) float64 {
	if total <= 0 || step >= total {
		return target
	}
	if step <= 0 {
		return start
	}
	return start + (target-start)*(float64(step)/float64(total))
}

// Glide walks a linear interpolation one step at a time.
type Glide struct {
	Start  float64
	Target float64
	Steps  int

	step int
}

// NewGlide creates a glide of the given step count. A non-positive count
// completes on the first step.
func NewGlide(start, target float64, steps int) *Glide {
	return &Glide{Start: start, Target: target, Steps: steps}
}

// Next advances one step and returns the new position and whether the glide
// has reached its target.
func (g *Glide) Next() (x float64, done bool) {
	if g == nil {
		return 0, true
	}
	g.step++
	x = GlideAt(g.Start, g.Target, g.step, g.Steps)
	return x, g.step >= g.Steps
}

// Step returns how many steps have been taken.
func (g *Glide) Step() int {
	if g == nil {
		return 0
	}
	return g.step
}
