package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestIdentityLeavesPointsAlone(t *testing.T) {
	x, y := Identity().Apply(3.5, -2)
	if !near(x, 3.5) || !near(y, -2) {
		t.Fatalf("identity moved point to (%v, %v)", x, y)
	}
}

func TestTranslation(t *testing.T) {
	x, y := Translation(10, -4).Apply(1, 2)
	if !near(x, 11) || !near(y, -2) {
		t.Fatalf("got (%v, %v), want (11, -2)", x, y)
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	x, y := Rotation(math.Pi/2).Apply(1, 0)
	if !near(x, 0) || !near(y, 1) {
		t.Fatalf("quarter turn of (1,0) gave (%v, %v)", x, y)
	}
}

func TestScaling(t *testing.T) {
	x, y := Scaling(0.5).Apply(8, -6)
	if !near(x, 4) || !near(y, -3) {
		t.Fatalf("got (%v, %v), want (4, -3)", x, y)
	}
}

func TestMulAppliesRightOperandFirst(t *testing.T) {
	// Scale then translate: (1, 1) -> (2, 2) -> (12, 2).
	m := Translation(10, 0).Mul(Scaling(2))
	x, y := m.Apply(1, 1)
	if !near(x, 12) || !near(y, 2) {
		t.Fatalf("got (%v, %v), want (12, 2)", x, y)
	}

	// The other order translates first: (1, 1) -> (11, 1) -> (22, 2).
	m = Scaling(2).Mul(Translation(10, 0))
	x, y = m.Apply(1, 1)
	if !near(x, 22) || !near(y, 2) {
		t.Fatalf("got (%v, %v), want (22, 2)", x, y)
	}
}

func TestTranslateRotateComposition(t *testing.T) {
	// Rotate (1, 0) a half turn about the origin, then shift by (5, 5).
	m := Translation(5, 5).Mul(Rotation(math.Pi))
	x, y := m.Apply(1, 0)
	if !near(x, 4) || !near(y, 5) {
		t.Fatalf("got (%v, %v), want (4, 5)", x, y)
	}
}
