package parameter

import "time"

// Firework burst emission
const (
	// BurstParticleCount is the default number of particles spawned per burst
	BurstParticleCount = 48

	// BurstSpeedMinFloat is minimum initial particle speed (cells/sec)
	BurstSpeedMinFloat = 6.0
	// BurstSpeedMaxFloat is maximum initial particle speed (cells/sec)
	BurstSpeedMaxFloat = 16.0

	// BurstGravityFloat pulls particles downward (cells/sec²)
	BurstGravityFloat = 9.0

	// BurstDragFloat - quadratic drag coefficient (1/cell), drag scales with speed²
	BurstDragFloat = 0.04

	// BurstAspectFloat widens horizontal velocity to compensate for
	// terminal cell aspect ratio (cells are ~2x taller than wide)
	BurstAspectFloat = 2.0

	// ParticleCap bounds live particles across all bursts
	ParticleCap = 512
)

// Particle lifetimes; each particle draws uniformly from the range
const (
	ParticleLifetimeMin = 600 * time.Millisecond
	ParticleLifetimeMax = 1400 * time.Millisecond
)
