// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/aquilax/go-perlin"
	"github.com/veldspar/strata/soil"
)

const (
	frequency     = 0.035
	zoneFrequency = 0.008

	baseHeight  = 24.0
	heightRange = 18.0
	// TopsoilDepth thin loam run capping every generated column.
	TopsoilDepth = 1.5
)

// Generate rebuilds the map from fractal noise. Every cell gets a thick
// bedrock run sized by the noise value, topped by a thin loam run.
// Deterministic for a fixed seed and pool capacity; needs two runs per
// cell, so generation fails with ErrPoolExhausted if the pool holds
// fewer than 2 * width * height runs.
func (m *Map) Generate(seed int64) error {
	m.Reset()

	detail := perlin.NewPerlin(1.5, 2.0, 4, seed)
	zone := perlin.NewPerlin(2.5, 3.0, 4, seed+1)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fx, fy := float64(x), float64(y)

			h := detail.Noise2D(fx*frequency, fy*frequency) * heightRange

			// Zone is very low frequency
			z := zone.Noise2D(fx*zoneFrequency, fy*zoneFrequency)*2.0 + 0.4
			if z > 1 {
				z = 1
			}
			h *= z

			bedrock := max(float32(h)+baseHeight, 1)
			if err := m.AddMaterial(x, y, bedrock, soil.Bedrock); err != nil {
				return err
			}
			if err := m.AddMaterial(x, y, TopsoilDepth, soil.Loam); err != nil {
				return err
			}
		}
	}
	return nil
}
