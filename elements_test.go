package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNewElementsValidation(t *testing.T) {
	assertPanic(t, func() {
		NewElements(-1, 0.1, 0, 0, 0, 0, 365, J2000)
	})
	assertPanic(t, func() {
		NewElements(36, 1.0, 0, 0, 0, 0, 365, J2000)
	})
	assertPanic(t, func() {
		NewElements(36, -0.1, 0, 0, 0, 0, 365, J2000)
	})
	assertPanic(t, func() {
		NewElements(36, 0.1, 0, 0, 0, 0, 0, J2000)
	})
}

func TestElementsDerived(t *testing.T) {
	el := NewElements(100, 0.5, 12, 45, 90, 0, 1000, J2000)
	if !floats.EqualWithinAbs(el.Periapsis(), 50, 1e-12) {
		t.Fatalf("periapsis %f", el.Periapsis())
	}
	if !floats.EqualWithinAbs(el.Apoapsis(), 150, 1e-12) {
		t.Fatalf("apoapsis %f", el.Apoapsis())
	}
	if !floats.EqualWithinRel(el.Period(), 1000, 1e-12) {
		t.Fatalf("period %f", el.Period())
	}
	if !floats.EqualWithinAbs(el.Eccentricity(), 0.5, 1e-12) {
		t.Fatalf("eccentricity %f", el.Eccentricity())
	}
}

func TestMeanAnomalyUnwrapped(t *testing.T) {
	// Mean anomaly grows without renormalization into [0, 2π).
	el := NewElements(36, 0, 0, 0, 0, 0, 365, J2000)
	M := el.MeanAnomalyAt(J2000 + 10*365)
	if M < 10*2*math.Pi*0.99 {
		t.Fatalf("mean anomaly appears wrapped: %f", M)
	}
	if !floats.EqualWithinRel(M, 10*2*math.Pi, 1e-9) {
		t.Fatalf("mean anomaly %f after ten periods", M)
	}
}

func TestRadii2ae(t *testing.T) {
	a, e := Radii2ae(4, 2)
	if !floats.EqualWithinAbs(a, 3.0, 1e-12) {
		t.Fatalf("a=%f instead of 3.0", a)
	}
	if !floats.EqualWithinAbs(e, 1/3.0, 1e-12) {
		t.Fatalf("e=%f instead of 1/3", e)
	}
	assertPanic(t, func() {
		Radii2ae(1, 2)
	})
}
