package orrery

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestRotationAxes(t *testing.T) {
	x := []float64{1, 0, 0}
	// R3 by -90 degrees carries x onto y.
	if !vectorsEqual(MxV33(R3(-math.Pi/2), x), []float64{0, 1, 0}) {
		t.Fatal("R3 rotation failed")
	}
	// R1 leaves its own axis fixed.
	if !vectorsEqual(MxV33(R1(1.234), x), x) {
		t.Fatal("R1 moved the first axis")
	}
	// R2 by -90 degrees carries z onto x.
	if !vectorsEqual(MxV33(R2(-math.Pi/2), []float64{0, 0, 1}), x) {
		t.Fatal("R2 rotation failed")
	}
}

func TestRotationOrthonormal(t *testing.T) {
	for _, θ := range []float64{0, 0.3, math.Pi / 2, 2.8} {
		for _, m := range []*mat64.Dense{R1(θ), R2(θ), R3(θ)} {
			var prod mat64.Dense
			prod.Mul(m, m.T())
			if !mat64.EqualApprox(&prod, mat64.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), 1e-12) {
				t.Fatalf("rotation by %f is not orthonormal", θ)
			}
		}
	}
}

func TestPQW2EclipticIdentity(t *testing.T) {
	v := []float64{12.5, -3, 7}
	if !vectorsEqual(PQW2Ecliptic(0, 0, 0, v), v) {
		t.Fatal("zero-angle transform must be the identity")
	}
}

func TestPQW2EclipticPreservesNorm(t *testing.T) {
	v := []float64{-466.7639, 11447.0219, 0}
	out := PQW2Ecliptic(Deg2rad(87.87), Deg2rad(53.38), Deg2rad(227.89), v)
	if math.Abs(norm(out)-norm(v)) > 1e-6 {
		t.Fatalf("rotation changed the norm: %f vs %f", norm(out), norm(v))
	}
}

func TestPQW2EclipticInclinationOnly(t *testing.T) {
	// A pure inclination tilt moves the in-plane y component out of plane.
	out := PQW2Ecliptic(math.Pi/2, 0, 0, []float64{0, 10, 0})
	if !vectorsEqual(out, []float64{0, 0, 10}) {
		t.Fatalf("tilt failed: %+v", out)
	}
}
