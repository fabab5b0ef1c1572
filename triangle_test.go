package engine

import (
	"math"
	"testing"
)

func TestTriangleDerivedFields(t *testing.T) {
	tri := NewTriangle(NewVec3d(0, 0, 0), NewVec3d(1, 0, 0), NewVec3d(0, 1, 0))

	if !vecAlmostEqual(tri.Normal, NewVec3d(0, 0, 1)) {
		t.Errorf("Normal = %v, want (0 0 1)", tri.Normal)
	}
	if !vecAlmostEqual(tri.Center, NewVec3d(1.0/3, 1.0/3, 0)) {
		t.Errorf("Center = %v, want (1/3 1/3 0)", tri.Center)
	}
}

func TestNormalStaysUnitAfterMutation(t *testing.T) {
	tri := NewTriangle(NewVec3d(0.3, -1.2, 4), NewVec3d(2, 0.5, -1), NewVec3d(-3, 2, 2))

	mutations := []struct {
		name  string
		apply func()
	}{
		{"rotate", func() { tri.Rotate(NewVec3d(31, -122, 47)) }},
		{"translate", func() { tri.SetLocation(NewVec3d(10, -20, 5)) }},
		{"rotate again", func() { tri.Rotate(NewVec3d(180, 90, 270)) }},
	}

	for _, m := range mutations {
		m.apply()
		if !almostEqual(tri.Normal.Length(), 1) {
			t.Errorf("after %s: normal length = %f, want 1", m.name, tri.Normal.Length())
		}
	}
}

func TestSetLocationMovesCenterOnly(t *testing.T) {
	tri := NewTriangle(NewVec3d(0, 0, 0), NewVec3d(1, 0, 0), NewVec3d(0, 1, 0))
	normalBefore := tri.Normal.Copy()

	tri.SetLocation(NewVec3d(5, -3, 2))

	if !vecAlmostEqual(tri.Normal, normalBefore) {
		t.Errorf("translation changed the normal: %v -> %v", normalBefore, tri.Normal)
	}
	if !vecAlmostEqual(tri.Center, NewVec3d(1.0/3+5, 1.0/3-3, 2)) {
		t.Errorf("Center = %v after translation", tri.Center)
	}
	if !vecAlmostEqual(tri.A, NewVec3d(5, -3, 2)) {
		t.Errorf("corner A = %v, want (5 -3 2)", tri.A)
	}
}

func TestDegenerateTriangleHasNaNNormal(t *testing.T) {
	p := NewVec3d(1, 1, 1)
	tri := NewTriangle(p, p, p)

	if !math.IsNaN(tri.Normal.X) || !math.IsNaN(tri.Normal.Y) || !math.IsNaN(tri.Normal.Z) {
		t.Errorf("zero-area triangle normal = %v, want NaN components", tri.Normal)
	}
}

func TestTriangleCopiesItsCorners(t *testing.T) {
	a := NewVec3d(0, 0, 0)
	tri := NewTriangle(a, NewVec3d(1, 0, 0), NewVec3d(0, 1, 0))

	a.X = 99

	if tri.A.X != 0 {
		t.Errorf("triangle shares its corner with the caller: A = %v", tri.A)
	}
}
