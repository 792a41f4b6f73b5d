// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/veldspar/strata/soil"
)

var json = jsoniter.Config{
	MarshalFloatWith6Digits:       true,
	EscapeHTML:                    false,
	SortMapKeys:                   true,
	ObjectFieldMustBeSimpleString: true,
	CaseSensitive:                 true,
}.Froze()

// Cell is one exported grid sample.
type Cell struct {
	Height     float32   `json:"height"`
	Material   soil.Type `json:"surfaceMaterial"`
	WaterDepth float32   `json:"waterDepth"`
}

// GridSnapshot is a dense row-major export of the whole map.
type GridSnapshot struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`
}

// Snapshot reads the map through its query surface into a dense grid.
func Snapshot(m *Map) *GridSnapshot {
	s := &GridSnapshot{
		Width:  m.width,
		Height: m.height,
		Cells:  make([]Cell, m.width*m.height),
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			s.Cells[x+y*m.width] = Cell{
				Height:     m.TotalHeight(x, y),
				Material:   m.SurfaceType(x, y),
				WaterDepth: m.WaterDepth(x, y),
			}
		}
	}
	return s
}

// Encode writes the snapshot as JSON.
func (s *GridSnapshot) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(s)
}

// Decode reads a snapshot previously written by Encode.
func (s *GridSnapshot) Decode(r io.Reader) error {
	return json.NewDecoder(r).Decode(s)
}
