package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
}

func TestDot(t *testing.T) {
	if !floats.EqualWithinAbs(dot([]float64{1, 2, 3}, []float64{4, -5, 6}), 12, 1e-12) {
		t.Fatal("dot fail")
	}
	if !floats.EqualWithinAbs(dot([]float64{1, 0, 0}, []float64{0, 1, 0}), 0, 1e-12) {
		t.Fatal("orthogonal dot must vanish")
	}
}

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(norm(v), 5, 1e-12) {
		t.Fatalf("norm %f", norm(v))
	}
	u := unit(v)
	if !floats.EqualWithinAbs(norm(u), 1, 1e-12) {
		t.Fatalf("unit norm %f", norm(u))
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of the zero vector must stay zero")
	}
}

func TestAngleConversions(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.5 {
		if ok, err := anglesEqual(Deg2rad(deg), deg*math.Pi/180); !ok {
			t.Fatalf("%f deg: %s", deg, err)
		}
		back := Rad2deg(Deg2rad(deg))
		if !floats.EqualWithinAbs(back, deg, 1e-9) {
			t.Fatalf("round trip for %f gives %f", deg, back)
		}
	}
	if Rad2deg(Deg2rad(360)) != 0 {
		t.Fatal("360 degrees must wrap to zero")
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatal("negative angles must wrap into [0, 2π)")
	}
}
