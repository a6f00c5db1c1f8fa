package orrery

import (
	"fmt"
	"math"
)

// Elements defines a bound heliocentric orbit via its classical orbital
// elements, referenced to a Julian Date epoch. Distances are in scene units,
// time in days. Elements are immutable once constructed.
type Elements struct {
	a, e, i, Ω, ω, M0 float64
	n                 float64 // mean motion, rad/day
	epoch             float64 // Julian Date of M0
}

// NewElements constructs an element set. Angles are provided in degrees and
// converted to radians exactly once, here. Malformed sets are a hard failure
// at load time, hence the panics: element data is static reference data and
// a bad record is a defect, not a runtime condition.
func NewElements(a, e, i, Ω, ω, M0, period, epoch float64) Elements {
	if a <= 0 {
		panic(fmt.Errorf("semi-major axis must be positive, got %f", a))
	}
	if e < 0 || e >= 1 {
		panic(fmt.Errorf("eccentricity must be in [0, 1), got %f", e))
	}
	if period <= 0 {
		panic(fmt.Errorf("orbital period must be positive, got %f", period))
	}
	return Elements{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(M0), 2 * math.Pi / period, epoch}
}

// Periapsis returns the closest orbital distance from the focus.
func (el Elements) Periapsis() float64 {
	return el.a * (1 - el.e)
}

// Apoapsis returns the farthest orbital distance from the focus.
func (el Elements) Apoapsis() float64 {
	return el.a * (1 + el.e)
}

// Period returns the orbital period in days.
func (el Elements) Period() float64 {
	return 2 * math.Pi / el.n
}

// Eccentricity returns e.
func (el Elements) Eccentricity() float64 {
	return el.e
}

// MeanAnomalyAt returns the unwrapped mean anomaly at the given Julian Date.
// No renormalization into [0, 2π) is needed; the Kepler solver accepts
// unbounded M.
func (el Elements) MeanAnomalyAt(jd float64) float64 {
	return el.M0 + el.n*(jd-el.epoch)
}

func (el Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f T=%.1fd", el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), el.Period())
}

// Radii2ae returns the semi major axis and the eccentricity from the radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
