package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCometOrbitDerivation(t *testing.T) {
	co := NewCometOrbit(3.2, 200, 1732, 12, 0, J2000)
	if !floats.EqualWithinAbs(co.a, (3.2+200)/2, 1e-12) {
		t.Fatalf("a=%f", co.a)
	}
	if !floats.EqualWithinAbs(co.Eccentricity(), (200-3.2)/(200+3.2), 1e-12) {
		t.Fatalf("e=%f", co.Eccentricity())
	}
	if !floats.EqualWithinRel(co.Period(), 1732, 1e-12) {
		t.Fatalf("period %f", co.Period())
	}
	assertPanic(t, func() {
		NewCometOrbit(200, 3.2, 1732, 12, 0, J2000)
	})
	assertPanic(t, func() {
		NewCometOrbit(3.2, 200, 0, 12, 0, J2000)
	})
}

func TestCometRadiusExtremes(t *testing.T) {
	co := NewCometOrbit(3.2, 200, 1732, 12, 0, J2000)
	peri := co.ResolveAt(J2000)
	apo := co.ResolveAt(J2000 + 1732/2)
	if !floats.EqualWithinRel(peri.R, 3.2, 1e-6) {
		t.Fatalf("periapsis radius %f", peri.R)
	}
	if !floats.EqualWithinRel(apo.R, 200, 1e-6) {
		t.Fatalf("apoapsis radius %f", apo.R)
	}
}

func TestCometActivityPredicate(t *testing.T) {
	threshold := CometActiveRadius()
	if threshold != 108 {
		t.Fatalf("default activity threshold %f", threshold)
	}
	if !ActiveWithin(threshold-0.1, threshold) {
		t.Fatal("radius just below the threshold must be active")
	}
	if ActiveWithin(threshold+0.1, threshold) {
		t.Fatal("radius just above the threshold must be inactive")
	}
	if ActiveWithin(threshold, threshold) {
		t.Fatal("the threshold itself is not active")
	}
	// The engine computes radii regardless of the threshold; the comet is
	// active at periapsis and dormant at apoapsis.
	co := NewCometOrbit(3.2, 200, 1732, 12, 0, J2000)
	if !ActiveWithin(co.ResolveAt(J2000).R, threshold) {
		t.Fatal("comet at periapsis must be active")
	}
	if ActiveWithin(co.ResolveAt(J2000+866).R, threshold) {
		t.Fatal("comet at apoapsis must be dormant")
	}
}

func TestCometInclinationTilt(t *testing.T) {
	// A circular 90 degree orbit lifts the quarter-phase position entirely
	// into scene Y.
	co := NewCometOrbit(50, 50, 365, 90, 90, J2000)
	p := co.ResolveAt(J2000)
	if !floats.EqualWithinAbs(p.Y, 50, 1e-6) {
		t.Fatalf("Y=%f, expected 50", p.Y)
	}
	if !floats.EqualWithinAbs(p.Z, 0, 1e-6) {
		t.Fatalf("Z=%f, expected 0", p.Z)
	}
	if !floats.EqualWithinAbs(math.Abs(p.X), 0, 1e-6) {
		t.Fatalf("X=%f, expected 0", p.X)
	}
}

func TestCometSharesKeplerCore(t *testing.T) {
	// The comet propagator and the full resolver agree for an equivalent
	// element set in the ecliptic plane.
	co := NewCometOrbit(10, 90, 800, 0, 30, J2000)
	el := NewElements(50, 0.8, 0, 0, 0, 30, 800, J2000)
	for dt := 0.0; dt < 800; dt += 37 {
		pc := co.ResolveAt(J2000 + dt)
		pe := el.ResolveAt(J2000 + dt)
		if !vectorsEqual(pc.Vector(), pe.Vector()) {
			t.Fatalf("Δt=%f: comet %+v vs elements %+v", dt, pc, pe)
		}
	}
}
