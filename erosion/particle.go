// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package erosion simulates hydraulic droplet erosion and thermal
// slope weathering against a layered terrain map.
package erosion

import (
	"github.com/veldspar/strata/geom"
	"github.com/veldspar/strata/soil"
	"github.com/veldspar/strata/terrain"
)

const (
	inertia     = 0.3
	gravity     = 4.0
	timeStep    = 0.2
	minVolume   = 0.01
	evaporation = 0.985
	maxSediment = 1.0
	wettingRate = 0.05
)

// Outcome reports whether a particle keeps flowing after a step
// operation. On the first Halted the simulator must call Deposit
// exactly once before discarding the particle.
type Outcome uint8

const (
	Flowing Outcome = iota
	Halted
)

// Particle is one simulated water droplet. Volume starts at 1 and only
// ever decays; a particle below minVolume or outside the grid's 1-cell
// interior inset halts.
type Particle struct {
	Pos      geom.Vec2f
	Vel      geom.Vec2f
	Volume   float32
	Sediment float32
	Carried  soil.Type

	// prevHeight is the interpolated terrain height under the particle
	// before its last move, for the erosion height differential.
	prevHeight float32
}

func NewParticle(pos geom.Vec2f) *Particle {
	return &Particle{
		Pos:    pos,
		Volume: 1,
	}
}

// Move advances the particle one step down the local gradient,
// blending with its previous velocity by inertia. Halts on evaporated
// volume or on leaving the interior.
func (p *Particle) Move(m *terrain.Map) Outcome {
	if p.Volume < minVolume {
		return Halted
	}

	x, y := p.cell()
	grad := gradient(m, x, y)
	p.prevHeight = bilinearHeight(m, p.Pos)

	if grad.LengthSquared() > 1e-12 {
		downhill := grad.Norm().Mul(-1)
		p.Vel = p.Vel.Mul(inertia).AddScaled(downhill, (1-inertia)*gravity)
	} else {
		// Degenerate gradient; coast on the old velocity.
		p.Vel = p.Vel.Mul(inertia)
	}
	p.Pos = p.Pos.AddScaled(p.Vel, timeStep)

	x, y = p.cell()
	if x < 1 || y < 1 || x >= m.Width()-1 || y >= m.Height()-1 {
		return Halted
	}
	return Flowing
}

// Interact exchanges mass with the column under the particle. Faster
// flow over soluble ground raises capacity and erodes; slowing below
// capacity deposits carried sediment. Volume and sediment then decay
// by evaporation. Material the column could not supply is lost, not
// owed.
func (p *Particle) Interact(m *terrain.Map) Outcome {
	x, y := p.cell()
	surface := m.SurfaceType(x, y)
	props := m.Soils().Get(surface)

	heightDiff := p.prevHeight - bilinearHeight(m, p.Pos)
	capacity := max(0, props.Solubility*heightDiff*p.Vel.Length())

	if deficit := capacity - p.Sediment; deficit > 0 {
		want := min(deficit, props.EquilibriumRate) * p.Volume
		removed := want - m.RemoveMaterial(x, y, want)
		if removed > 0 {
			p.Sediment += removed
			p.Carried = surface
		}
	} else {
		amount := min(-deficit, props.EquilibriumRate) * p.Sediment
		if amount > 0 && m.AddMaterial(x, y, amount, p.Carried) == nil {
			p.Sediment -= amount
		}
	}

	p.Volume *= evaporation
	p.Sediment = min(p.Sediment*evaporation, maxSediment)
	m.Saturate(x, y, p.Volume*wettingRate)

	if p.Volume < minVolume {
		return Halted
	}
	return Flowing
}

// Deposit flushes any still-carried sediment onto the terrain at the
// particle's cell. Called exactly once when the particle halts; only
// evaporation may destroy mass.
func (p *Particle) Deposit(m *terrain.Map) error {
	if p.Sediment <= 0 {
		return nil
	}
	x, y := p.cell()
	x = clampInt(x, 0, m.Width()-1)
	y = clampInt(y, 0, m.Height()-1)
	if err := m.AddMaterial(x, y, p.Sediment, p.Carried); err != nil {
		return err
	}
	p.Sediment = 0
	return nil
}

func (p *Particle) cell() (int, int) {
	rounded := p.Pos.Round()
	return int(rounded.X), int(rounded.Y)
}

// gradient is the central finite difference of total height around a
// cell. Out-of-range samples read as 0, which steers particles off
// cliffs at the border; Move's interior inset halts them first.
func gradient(m *terrain.Map, x, y int) geom.Vec2f {
	return geom.Vec2f{
		X: (m.TotalHeight(x+1, y) - m.TotalHeight(x-1, y)) * 0.5,
		Y: (m.TotalHeight(x, y+1) - m.TotalHeight(x, y-1)) * 0.5,
	}
}

// bilinearHeight interpolates total height at a continuous position
// from the four surrounding cells.
func bilinearHeight(m *terrain.Map, pos geom.Vec2f) float32 {
	corner := pos.Floor()
	frac := pos.Sub(corner)
	x0, y0 := int(corner.X), int(corner.Y)
	fx, fy := frac.X, frac.Y

	h00 := m.TotalHeight(x0, y0)
	h10 := m.TotalHeight(x0+1, y0)
	h01 := m.TotalHeight(x0, y0+1)
	h11 := m.TotalHeight(x0+1, y0+1)

	return geom.Lerp(geom.Lerp(h00, h10, fx), geom.Lerp(h01, h11, fx), fy)
}
