package weather

import "math"

// stepParticle advances one particle by one tick. Particles are
// independent; the caller iterates the population in order but no
// particle reads another's state.
//
// Order per tick: fall, sway, drift, melt trigger, melt decay with
// reset on radius exhaustion, off-canvas reset, horizontal wrap.
func stepParticle(p *Particle, canvasWidth, canvasHeight float64, t Tuning, src Source) {
	p.Y += p.FallSpeed
	p.X += math.Sin((p.Y+p.SwayPhase)*t.SwayFrequency) * p.SwayAmplitude * swayDirection
	p.X += p.DriftRate * p.FallSpeed

	// One-way latch; cleared only by reset.
	if !p.Melting && p.Y >= p.MeltStartY {
		p.Melting = true
	}

	wasReset := false
	if p.Melting {
		p.Radius -= p.MeltRate
		if p.Radius <= 0 {
			// Never leave a non-positive radius in the population.
			p.reset(canvasWidth, canvasHeight, t, src)
			wasReset = true
		}
	}

	if !wasReset && p.Y > canvasHeight {
		p.reset(canvasWidth, canvasHeight, t, src)
	}

	// Hard boundary teleport, not a modulo wrap: an excursion past
	// either edge lands exactly on the opposite edge regardless of
	// overshoot. Matches the reference behavior.
	if p.X < 0 {
		p.X = canvasWidth
	} else if p.X > canvasWidth {
		p.X = 0
	}
}
