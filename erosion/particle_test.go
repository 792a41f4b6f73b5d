// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package erosion

import (
	"testing"

	"github.com/veldspar/strata/geom"
	"github.com/veldspar/strata/soil"
	"github.com/veldspar/strata/terrain"
)

func flatMap(width, height int, h float32, typ soil.Type) *terrain.Map {
	m := terrain.New(width, height, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_ = m.AddMaterial(x, y, h, typ)
		}
	}
	return m
}

// slopeMap descends toward +x with a sand surface.
func slopeMap(width, height int) *terrain.Map {
	m := terrain.New(width, height, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_ = m.AddMaterial(x, y, float32(40-4*x), soil.Sand)
		}
	}
	return m
}

func TestParticle_EvaporationMonotonic(t *testing.T) {
	m := flatMap(8, 8, 5, soil.Bedrock)
	p := NewParticle(geom.Vec2f{X: 4, Y: 4})

	last := p.Volume
	for i := 0; i < 50; i++ {
		if p.Interact(m) == Halted {
			break
		}
		if p.Volume > last {
			t.Fatalf("expected non-increasing volume, got %v after %v", p.Volume, last)
		}
		last = p.Volume
	}
	if p.Volume >= 1 {
		t.Errorf("expected evaporation to shrink the droplet, got %v", p.Volume)
	}
}

func TestParticle_MoveHaltsOutsideInterior(t *testing.T) {
	m := flatMap(8, 8, 5, soil.Bedrock)
	p := NewParticle(geom.Vec2f{X: 1, Y: 4})
	p.Vel = geom.Vec2f{X: -10}

	if outcome := p.Move(m); outcome != Halted {
		t.Errorf("expected particle leaving the interior to halt")
	}
}

func TestParticle_MoveHaltsEvaporated(t *testing.T) {
	m := flatMap(8, 8, 5, soil.Bedrock)
	p := NewParticle(geom.Vec2f{X: 4, Y: 4})
	p.Volume = minVolume / 2

	if outcome := p.Move(m); outcome != Halted {
		t.Errorf("expected evaporated particle to halt")
	}
}

func TestParticle_ErodesDownhill(t *testing.T) {
	m := slopeMap(8, 8)
	p := NewParticle(geom.Vec2f{X: 2, Y: 4})

	if outcome := p.Move(m); outcome != Flowing {
		t.Fatalf("expected particle to keep flowing")
	}
	if p.Vel.X <= 0 {
		t.Fatalf("expected downhill velocity toward +x, got %+v", p.Vel)
	}
	before := totalMass(m)
	if outcome := p.Interact(m); outcome != Flowing {
		t.Fatalf("expected particle to keep flowing")
	}

	if p.Sediment <= 0 {
		t.Errorf("expected eroded sediment, got %v", p.Sediment)
	}
	if p.Carried != soil.Sand {
		t.Errorf("expected carried sand, got %s", p.Carried)
	}
	// Evaporation already shaved the load, so the terrain lost at
	// least what the droplet still carries.
	if after := totalMass(m); before-after < p.Sediment-0.001 {
		t.Errorf("expected terrain to lose at least the carried load: lost %v, carries %v",
			before-after, p.Sediment)
	}
}

func TestParticle_DepositsWhenOverCapacity(t *testing.T) {
	m := flatMap(8, 8, 5, soil.Rock)
	p := NewParticle(geom.Vec2f{X: 4, Y: 4})
	p.Sediment = 0.8
	p.Carried = soil.Sand

	if outcome := p.Interact(m); outcome != Flowing {
		t.Fatalf("expected particle to keep flowing")
	}

	if p.Sediment >= 0.8 {
		t.Errorf("expected sediment to settle, got %v", p.Sediment)
	}
	if typ := m.SurfaceType(4, 4); typ != soil.Sand {
		t.Errorf("expected deposited sand surface, got %s", typ)
	}
}

func TestParticle_Deposit(t *testing.T) {
	m := flatMap(8, 8, 5, soil.Bedrock)
	p := NewParticle(geom.Vec2f{X: 2, Y: 3})
	p.Sediment = 0.5
	p.Carried = soil.Clay

	if err := p.Deposit(m); err != nil {
		t.Fatal(err)
	}
	if h := m.TotalHeight(2, 3); !approx(h, 5.5) {
		t.Errorf("expected height 5.5 after flush, got %v", h)
	}
	if p.Sediment != 0 {
		t.Errorf("expected no sediment left, got %v", p.Sediment)
	}
	// Flushing an empty particle is a no-op.
	if err := p.Deposit(m); err != nil {
		t.Fatal(err)
	}
	if h := m.TotalHeight(2, 3); !approx(h, 5.5) {
		t.Errorf("expected height unchanged, got %v", h)
	}
}
