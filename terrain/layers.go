// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain stores layered-soil terrain as per-cell stacks of
// runs backed by a fixed-capacity pool.
package terrain

import (
	"github.com/veldspar/strata/soil"
)

// Map owns the per-cell stratigraphy of a width x height grid. Each
// cell is referenced by its topmost run; an empty cell is NilRun.
// No two vertically adjacent runs of a column share a soil type.
//
// All queries degrade to documented defaults out of range or on empty
// cells (0 height, Bedrock surface, 0 water depth); callers can iterate
// near borders without bounds checks.
type Map struct {
	width  int
	height int
	tops   []RunID
	pool   *Pool
	soils  *soil.Table
}

// New creates an empty map with a run pool of the given capacity.
func New(width, height, capacity int) *Map {
	m := &Map{
		width:  width,
		height: height,
		tops:   make([]RunID, width*height),
		pool:   NewPool(capacity),
		soils:  soil.NewTable(),
	}
	for i := range m.tops {
		m.tops[i] = NilRun
	}
	return m
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

func (m *Map) Pool() *Pool {
	return m.pool
}

// Soils returns the property table owned by this map.
func (m *Map) Soils() *soil.Table {
	return m.soils
}

func (m *Map) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *Map) top(x, y int) RunID {
	if !m.Contains(x, y) {
		return NilRun
	}
	return m.tops[x+y*m.width]
}

// TotalHeight returns floor plus height of the cell's top run, or 0.
func (m *Map) TotalHeight(x, y int) float32 {
	id := m.top(x, y)
	if id == NilRun {
		return 0
	}
	run := m.pool.run(id)
	return run.Floor + run.Height
}

// SurfaceType returns the soil type of the cell's top run, or Bedrock.
func (m *Map) SurfaceType(x, y int) soil.Type {
	id := m.top(x, y)
	if id == NilRun {
		return soil.Bedrock
	}
	return m.pool.run(id).Type
}

// SurfaceHeight returns the height of the cell's top run alone, or 0.
// This is the material available to weathering in one transfer.
func (m *Map) SurfaceHeight(x, y int) float32 {
	id := m.top(x, y)
	if id == NilRun {
		return 0
	}
	return m.pool.run(id).Height
}

// WaterDepth returns the water held by the cell's top run, or 0.
func (m *Map) WaterDepth(x, y int) float32 {
	id := m.top(x, y)
	if id == NilRun {
		return 0
	}
	run := m.pool.run(id)
	return run.Height * run.Saturation * m.soils.Get(run.Type).Porosity
}

// AddMaterial deposits amount of typ on top of the cell's column. A
// same-type top run merges in place without allocating; this is what
// keeps steady-state erosion allocation free. Returns ErrPoolExhausted
// if a new run is needed and the pool is empty; no material is added in
// that case.
func (m *Map) AddMaterial(x, y int, amount float32, typ soil.Type) error {
	if amount <= 0 || !m.Contains(x, y) {
		return nil
	}
	i := x + y*m.width

	top := m.tops[i]
	if top != NilRun {
		run := m.pool.run(top)
		if run.Type == typ {
			run.Height += amount
			return nil
		}
	}

	id, err := m.pool.Get(amount, typ)
	if err != nil {
		return err
	}
	run := m.pool.run(id)
	if top != NilRun {
		prior := m.pool.run(top)
		run.Floor = prior.Floor + prior.Height
	}
	run.below = top
	m.tops[i] = id
	return nil
}

// RemoveMaterial strips up to amount off the top of the cell's column,
// releasing depleted runs, and returns the unsatisfied remainder.
func (m *Map) RemoveMaterial(x, y int, amount float32) float32 {
	if amount <= 0 || !m.Contains(x, y) {
		return amount
	}
	i := x + y*m.width

	for amount > 0 {
		top := m.tops[i]
		if top == NilRun {
			return amount
		}
		run := m.pool.run(top)
		if run.Height <= 0 {
			// Stale zero-height run left by a previous exact removal.
			m.tops[i] = run.below
			m.pool.Release(top)
			continue
		}
		if run.Height > amount {
			run.Height -= amount
			return 0
		}
		amount -= run.Height
		m.tops[i] = run.below
		m.pool.Release(top)
	}
	return amount
}

// Saturate wets the cell's top run, clamping saturation to [0, 1].
func (m *Map) Saturate(x, y int, amount float32) {
	id := m.top(x, y)
	if id == NilRun {
		return
	}
	run := m.pool.run(id)
	run.Saturation = clamp(run.Saturation+amount, 0, 1)
}

// Reset empties every column and returns the whole pool to its free
// list. The backing arena is kept.
func (m *Map) Reset() {
	for i := range m.tops {
		m.tops[i] = NilRun
	}
	m.pool.Reset()
}
