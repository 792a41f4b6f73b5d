// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package erosion

import (
	"log"

	"github.com/veldspar/strata/terrain"
)

// Neighbor order is fixed; Cascade re-reads heights after every
// transfer, so results depend on it.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Cascade relaxes one cell against its 8 neighbors. Where the height
// differential exceeds the repose threshold of the cell's surface
// type, half the settling rate's worth of the excess moves to the
// lower neighbor, capped by the material actually present in the top
// run. Off-map neighbors are skipped so no mass falls off the world.
func Cascade(m *terrain.Map, x, y int) {
	for _, o := range neighborOffsets {
		nx, ny := x+o[0], y+o[1]
		if !m.Contains(nx, ny) {
			continue
		}

		heightDiff := m.TotalHeight(x, y) - m.TotalHeight(nx, ny)
		if heightDiff <= 0 {
			continue
		}

		typ := m.SurfaceType(x, y)
		props := m.Soils().Get(typ)
		excess := heightDiff - props.Repose
		if excess <= 0 {
			continue
		}

		amount := min(props.SettlingRate*excess*0.5, m.SurfaceHeight(x, y))
		if amount <= 0 {
			continue
		}

		removed := amount - m.RemoveMaterial(x, y, amount)
		if removed <= 0 {
			continue
		}
		if err := m.AddMaterial(nx, ny, removed, typ); err != nil {
			// Put the material back; the source top was either merged
			// down or freed just above, so this cannot fail.
			_ = m.AddMaterial(x, y, removed, typ)
			log.Println("thermal weathering:", err)
		}
	}
}

// ApplyCascade relaxes one cell n times.
func ApplyCascade(m *terrain.Map, x, y, iterations int) {
	for i := 0; i < iterations; i++ {
		Cascade(m, x, y)
	}
}

// Weather runs full row-major sweeps of Cascade over the whole map.
func Weather(m *terrain.Map, iterations int) {
	for i := 0; i < iterations; i++ {
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				Cascade(m, x, y)
			}
		}
	}
}
