// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package erosion

import (
	"log"
	"math/rand"

	"github.com/veldspar/strata/geom"
	"github.com/veldspar/strata/terrain"
)

// weatherSampleCap bounds the random cells weathered per step so step
// cost stays roughly constant regardless of accumulated erosion.
const weatherSampleCap = 1000

type Config struct {
	// MaxParticles caps concurrently live droplets; spawn requests
	// beyond it are dropped, not queued.
	MaxParticles int
	// Thermal enables slope weathering each step.
	Thermal bool
	// ThermalIterations is the cascade count per sampled cell.
	ThermalIterations int
}

func DefaultConfig() Config {
	return Config{
		MaxParticles:      256,
		Thermal:           true,
		ThermalIterations: 3,
	}
}

// Simulator orchestrates droplet lifecycles and periodic weathering
// over one map. It owns its random stream; a fixed seed reproduces a
// full simulation exactly.
type Simulator struct {
	terrain   *terrain.Map
	particles []*Particle
	rng       *rand.Rand
	config    Config
}

func NewSimulator(m *terrain.Map, seed int64, config Config) *Simulator {
	return &Simulator{
		terrain: m,
		rng:     rand.New(rand.NewSource(seed)),
		config:  config,
	}
}

func (s *Simulator) ParticleCount() int {
	return len(s.particles)
}

// Step spawns up to spawn new droplets, advances every live droplet
// exactly once, then weathers a bounded random sample of cells. The
// order (spawn, advance, weather) is fixed.
func (s *Simulator) Step(spawn int) {
	for i := 0; i < spawn && len(s.particles) < s.config.MaxParticles; i++ {
		s.particles = append(s.particles, NewParticle(s.spawnPos()))
	}

	// Reverse order is safe for in-loop removal.
	for i := len(s.particles) - 1; i >= 0; i-- {
		p := s.particles[i]
		outcome := p.Move(s.terrain)
		if outcome == Flowing {
			outcome = p.Interact(s.terrain)
		}
		if outcome == Halted {
			if err := p.Deposit(s.terrain); err != nil {
				log.Println("deposit:", err)
			}
			s.particles = append(s.particles[:i], s.particles[i+1:]...)
		}
	}

	if s.config.Thermal {
		w, h := s.terrain.Width(), s.terrain.Height()
		samples := minInt(weatherSampleCap, w*h/10)
		for i := 0; i < samples; i++ {
			ApplyCascade(s.terrain, s.rng.Intn(w), s.rng.Intn(h), s.config.ThermalIterations)
		}
	}
}

// Reset discards in-flight particles and empties the map, returning
// the pool to its fully-free state without reallocating the arena.
func (s *Simulator) Reset() {
	s.particles = s.particles[:0]
	s.terrain.Reset()
}

// spawnPos picks a random position whose rounded cell stays inside
// the 1-cell interior inset, so a fresh droplet never halts on its
// first Move.
func (s *Simulator) spawnPos() geom.Vec2f {
	return geom.Vec2f{
		X: 1 + s.rng.Float32()*float32(s.terrain.Width()-3),
		Y: 1 + s.rng.Float32()*float32(s.terrain.Height()-3),
	}
}
