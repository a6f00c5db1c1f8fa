package orrery

import "math"

const (
	// keplerIters is the Newton-Raphson iteration budget. Ten iterations
	// reach float precision for eccentricities up to at least 0.97.
	keplerIters = 10
	// keplerε is the residual at which iteration stops early.
	keplerε = 1e-12
)

// EccentricAnomaly solves Kepler's equation E - e·sin(E) = M for E via
// Newton-Raphson. M may be any real value; it is not wrapped into [0, 2π).
// After the iteration budget the best available estimate is returned rather
// than an error, since an approximate position beats a halted simulation.
func EccentricAnomaly(M, e float64) float64 {
	if e == 0 {
		return M
	}
	E := M
	if e >= 0.8 {
		// Seed away from M for near-parabolic orbits, where E = M is a
		// poor starting point and NR can oscillate. The wrapped anomaly
		// decides which side of M the root lies on.
		Mw := math.Mod(M, 2*math.Pi)
		if Mw < 0 {
			Mw += 2 * math.Pi
		}
		if Mw < math.Pi {
			E = M + e/2
		} else {
			E = M - e/2
		}
	}
	for it := 0; it < keplerIters; it++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < keplerε {
			break
		}
		E -= f / (1 - e*math.Cos(E))
	}
	return E
}

// KeplerResidual returns |E - e·sin(E) - M|, the defect of a candidate
// solution to Kepler's equation.
func KeplerResidual(E, e, M float64) float64 {
	return math.Abs(E - e*math.Sin(E) - M)
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν. The
// half-angle atan2 form has no quadrant ambiguity.
func TrueAnomaly(E, e float64) float64 {
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}

// OrbitRadius returns the orbital-plane radius at true anomaly ν for an
// ellipse of semi-major axis a and eccentricity e.
func OrbitRadius(a, e, ν float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(ν))
}
