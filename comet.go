package orrery

import (
	"math"
)

// CometOrbit is the lighter-weight propagator used for synthetic comets. It
// is parameterized by periapsis and apoapsis distance instead of (a, e), and
// by a single orbital phase angle instead of full (M0, Ω, ω). It shares the
// Kepler core with the full resolver.
type CometOrbit struct {
	a, e  float64
	i     float64 // radians
	phase float64 // mean anomaly at epoch, radians
	n     float64 // rad/day
	epoch float64
}

// NewCometOrbit derives an orbit from periapsis/apoapsis distances (scene
// units), an orbital period (days), an inclination and a starting phase
// angle (degrees). Panics when periapsis exceeds apoapsis or the period is
// not positive, as with any other malformed construction-time data.
func NewCometOrbit(peri, apo, period, i, phase, epoch float64) CometOrbit {
	if peri <= 0 {
		panic("periapsis must be positive")
	}
	if period <= 0 {
		panic("orbital period must be positive")
	}
	a, e := Radii2ae(apo, peri)
	return CometOrbit{a, e, Deg2rad(i), Deg2rad(phase), 2 * math.Pi / period, epoch}
}

// Eccentricity returns the derived eccentricity (apo-peri)/(apo+peri).
func (co CometOrbit) Eccentricity() float64 {
	return co.e
}

// Period returns the orbital period in days.
func (co CometOrbit) Period() float64 {
	return 2 * math.Pi / co.n
}

// ResolveAt returns the comet's heliocentric position at the given Julian
// Date. The orbital plane is tilted by the inclination only; comets carry no
// node or periapsis orientation.
func (co CometOrbit) ResolveAt(jd float64) Position {
	M := co.phase + co.n*(jd-co.epoch)
	E := EccentricAnomaly(M, co.e)
	ν := TrueAnomaly(E, co.e)
	r := OrbitRadius(co.a, co.e, ν)
	sν, cν := math.Sincos(ν)
	x := r * cν
	z := r * sν
	si, ci := math.Sincos(co.i)
	return Position{X: x, Y: z * si, Z: z * ci, R: r}
}

// ActiveWithin reports whether a body at orbital radius r is close enough to
// the star to be visually relevant. The threshold is policy belonging to the
// rendering layer; the engine always computes the radius regardless.
func ActiveWithin(r, threshold float64) bool {
	return r < threshold
}

// CometActiveRadius returns the configured default activity threshold in
// scene units.
func CometActiveRadius() float64 {
	return orreryConfig().CometActiveRadius
}
