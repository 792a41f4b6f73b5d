// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 0.001
}

func TestVec2f_Length(t *testing.T) {
	if l := (Vec2f{X: 3, Y: 4}).Length(); !approx(l, 5) {
		t.Errorf("expected 5, got %v", l)
	}
}

func TestVec2f_Norm(t *testing.T) {
	n := (Vec2f{X: 0, Y: -2}).Norm()
	if !approx(n.X, 0) || !approx(n.Y, -1) {
		t.Errorf("expected unit vector, got %+v", n)
	}
}

func TestVec2f_AddScaled(t *testing.T) {
	v := (Vec2f{X: 1, Y: 1}).AddScaled(Vec2f{X: 2, Y: -4}, 0.5)
	if !approx(v.X, 2) || !approx(v.Y, -1) {
		t.Errorf("expected {2 -1}, got %+v", v)
	}
}

func TestVec2f_Sub(t *testing.T) {
	v := (Vec2f{X: 2.5, Y: -1}).Sub(Vec2f{X: 2, Y: 1})
	if !approx(v.X, 0.5) || !approx(v.Y, -2) {
		t.Errorf("expected {0.5 -2}, got %+v", v)
	}
}

func TestVec2f_Floor(t *testing.T) {
	v := (Vec2f{X: 2.75, Y: -0.25}).Floor()
	if !approx(v.X, 2) || !approx(v.Y, -1) {
		t.Errorf("expected {2 -1}, got %+v", v)
	}
}

func TestLerp(t *testing.T) {
	if v := Lerp(2, 6, 0.25); !approx(v, 3) {
		t.Errorf("expected 3, got %v", v)
	}
}
