package orrery

import (
	"errors"
	"math"
)

// ErrDegenerateDirection is returned when a direction-dependent quantity is
// requested for a body sitting at the coordinate origin. Normalizing a zero
// vector would otherwise leak NaN into the scene.
var ErrDegenerateDirection = errors.New("direction undefined at the origin")

// Position is a heliocentric position in the scene frame, where the ecliptic
// is the X/Z plane and Y points out of it, plus the orbital radius R at that
// instant. Positions are a pure function of (elements, Julian Date) and are
// recomputed on every query.
type Position struct {
	X, Y, Z float64
	R       float64
}

// Vector returns the position as a 3x1 slice.
func (p Position) Vector() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// ResolveAt returns the heliocentric position of a body on this orbit at the
// given Julian Date. Deterministic: identical inputs yield bit-identical
// output.
func (el Elements) ResolveAt(jd float64) Position {
	M := el.MeanAnomalyAt(jd)
	E := EccentricAnomaly(M, el.e)
	ν := TrueAnomaly(E, el.e)
	r := OrbitRadius(el.a, el.e, ν)
	sν, cν := math.Sincos(ν)
	ecl := PQW2Ecliptic(el.i, el.ω, el.Ω, []float64{r * cν, r * sν, 0})
	// The renderer's frame is Y-up: the ecliptic X/Y plane maps onto scene
	// X/Z, and the ecliptic normal becomes scene Y.
	return Position{X: ecl[0], Y: ecl[2], Z: ecl[1], R: r}
}

// Sunward returns the unit vector pointing from the position toward the
// origin. A body at the origin (the primary star) has no defined direction
// and must be special-cased by the caller; this returns
// ErrDegenerateDirection rather than a NaN-bearing vector.
func Sunward(p Position) ([]float64, error) {
	v := []float64{-p.X, -p.Y, -p.Z}
	if norm(v) == 0 {
		return nil, ErrDegenerateDirection
	}
	return unit(v), nil
}
