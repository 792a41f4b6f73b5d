// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package soil defines the closed set of material kinds and their
// physical constants.
package soil

// Type is a material kind. Unmapped values resolve to Bedrock.
type Type uint8

const (
	Bedrock Type = iota
	Rock
	Gravel
	Sand
	Loam
	Clay
	typeCount
)

var typeNames = [typeCount]string{
	Bedrock: "bedrock",
	Rock:    "rock",
	Gravel:  "gravel",
	Sand:    "sand",
	Loam:    "loam",
	Clay:    "clay",
}

func (t Type) String() string {
	if t >= typeCount {
		t = Bedrock
	}
	return typeNames[t]
}

// Count returns the number of defined soil types.
func Count() int {
	return int(typeCount)
}

// Properties are the immutable physical constants of one soil type.
type Properties struct {
	Density         float32
	Porosity        float32
	Solubility      float32
	EquilibriumRate float32
	Friction        float32
	// Repose is the height differential tolerated with a neighbor
	// before weathering moves material.
	Repose       float32
	SettlingRate float32
}

// Table is a read-only lookup of Properties per Type. Construct one per
// simulation; there is no process-global table.
type Table struct {
	props [typeCount]Properties
}

func NewTable() *Table {
	t := &Table{}
	t.props[Bedrock] = Properties{
		Density:  2.70,
		Porosity: 0.02,
		Friction: 0.90,
		Repose:   8.0,
	}
	t.props[Rock] = Properties{
		Density:         2.60,
		Porosity:        0.10,
		Solubility:      0.05,
		EquilibriumRate: 0.05,
		Friction:        0.80,
		Repose:          4.0,
		SettlingRate:    0.05,
	}
	t.props[Gravel] = Properties{
		Density:         1.95,
		Porosity:        0.25,
		Solubility:      0.15,
		EquilibriumRate: 0.15,
		Friction:        0.60,
		Repose:          1.5,
		SettlingRate:    0.20,
	}
	t.props[Sand] = Properties{
		Density:         1.60,
		Porosity:        0.35,
		Solubility:      0.45,
		EquilibriumRate: 0.35,
		Friction:        0.35,
		Repose:          0.8,
		SettlingRate:    0.45,
	}
	t.props[Loam] = Properties{
		Density:         1.25,
		Porosity:        0.45,
		Solubility:      0.60,
		EquilibriumRate: 0.40,
		Friction:        0.40,
		Repose:          1.2,
		SettlingRate:    0.30,
	}
	t.props[Clay] = Properties{
		Density:         1.35,
		Porosity:        0.40,
		Solubility:      0.25,
		EquilibriumRate: 0.20,
		Friction:        0.55,
		Repose:          2.5,
		SettlingRate:    0.10,
	}
	return t
}

// Get returns the constants for typ, or the Bedrock entry if typ is not
// a defined type.
func (t *Table) Get(typ Type) Properties {
	if typ >= typeCount {
		typ = Bedrock
	}
	return t.props[typ]
}
