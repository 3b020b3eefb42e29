package particle

import (
	"math"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wolfadex/noom-colors/parameter"
)

// Particle is one animated firework fragment. Positions and velocities
// are in fractional cells; integration happens in float space and only
// rendering snaps to the grid.
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Age        float64 // seconds since spawn
	Lifetime   float64 // seconds
	Color      colorful.Color
}

// Emission tunes how a burst spawns its particles.
type Emission struct {
	Count       int
	SpeedMin    float64 // cells/sec
	SpeedMax    float64 // cells/sec
	Gravity     float64 // cells/sec²
	Drag        float64 // 1/cell, quadratic
	Aspect      float64 // horizontal velocity multiplier
	LifetimeMin time.Duration
	LifetimeMax time.Duration
}

// DefaultEmission returns the stock firework tuning.
func DefaultEmission() Emission {
	return Emission{
		Count:       parameter.BurstParticleCount,
		SpeedMin:    parameter.BurstSpeedMinFloat,
		SpeedMax:    parameter.BurstSpeedMaxFloat,
		Gravity:     parameter.BurstGravityFloat,
		Drag:        parameter.BurstDragFloat,
		Aspect:      parameter.BurstAspectFloat,
		LifetimeMin: parameter.ParticleLifetimeMin,
		LifetimeMax: parameter.ParticleLifetimeMax,
	}
}

// System owns all live particles. Single-threaded: Burst, Update and
// Render are only ever called from the frame loop.
type System struct {
	cfg       Emission
	rng       *rand.Rand
	particles []Particle
}

func NewSystem(cfg Emission) *System {
	return &System{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		particles: make([]Particle, 0, parameter.ParticleCap),
	}
}

// Burst spawns cfg.Count particles radially from a cell, each with a
// random direction, speed in [SpeedMin, SpeedMax], lifetime in
// [LifetimeMin, LifetimeMax] and a color drawn from colors. Spawning
// stops silently at the particle cap.
func (s *System) Burst(x, y int, colors []colorful.Color) {
	if len(colors) == 0 {
		return
	}

	for i := 0; i < s.cfg.Count; i++ {
		if len(s.particles) >= parameter.ParticleCap {
			return
		}

		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.cfg.SpeedMin + s.rng.Float64()*(s.cfg.SpeedMax-s.cfg.SpeedMin)
		lifeRange := (s.cfg.LifetimeMax - s.cfg.LifetimeMin).Seconds()

		s.particles = append(s.particles, Particle{
			X:        float64(x),
			Y:        float64(y),
			VelX:     math.Cos(angle) * speed * s.cfg.Aspect,
			VelY:     math.Sin(angle) * speed,
			Lifetime: s.cfg.LifetimeMin.Seconds() + s.rng.Float64()*lifeRange,
			Color:    colors[s.rng.Intn(len(colors))],
		})
	}
}

// Update integrates all particles by dt seconds and drops expired
// ones: v += g*dt, quadratic drag against the current speed, then
// p += v*dt.
func (s *System) Update(dt float64) {
	kept := s.particles[:0]

	for _, p := range s.particles {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}

		p.VelY += s.cfg.Gravity * dt

		speed := math.Hypot(p.VelX, p.VelY)
		damp := 1 - s.cfg.Drag*speed*dt
		if damp < 0 {
			damp = 0
		}
		p.VelX *= damp
		p.VelY *= damp

		p.X += p.VelX * dt
		p.Y += p.VelY * dt

		kept = append(kept, p)
	}

	s.particles = kept
}

// Live reports the number of active particles.
func (s *System) Live() int {
	return len(s.particles)
}
