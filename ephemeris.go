package orrery

import (
	"fmt"
	"math"
	"sync"

	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

var (
	vsopMu     sync.Mutex
	vsopLoaded = map[string]*planetposition.V87Planet{}
)

// vsopIndex maps catalog keys to the VSOP87 planet numbering.
var vsopIndex = map[string]int{
	"mercury": 1,
	"venus":   2,
	"earth":   3,
	"mars":    4,
	"jupiter": 5,
	"saturn":  6,
	"uranus":  7,
	"neptune": 8,
}

// EphemerisPosition returns the body's heliocentric position from the VSOP87
// series instead of the Kepler propagator, scaled into scene units. Used to
// cross-check the propagator visually; requires `VSOP87.enabled` and a data
// directory in the configuration. The whole series file is loaded on first
// use and cached.
func EphemerisPosition(bodyKey string, jd float64) (Position, error) {
	cfg := orreryConfig()
	if !cfg.VSOP87 {
		return Position{}, fmt.Errorf("VSOP87 ephemeris disabled in configuration")
	}
	if bodyKey == "pluto" {
		// Special case in Sonia Keys' Meeus.
		l, b, r := pluto.Heliocentric(jd)
		return eclipticToScene(l.Rad(), b.Rad(), r*cfg.UnitsPerAU), nil
	}
	num, supported := vsopIndex[bodyKey]
	if !supported {
		return Position{}, fmt.Errorf("no VSOP87 series for body '%s'", bodyKey)
	}
	vsopMu.Lock()
	planet, loaded := vsopLoaded[bodyKey]
	if !loaded {
		var err error
		planet, err = planetposition.LoadPlanetPath(num-1, cfg.VSOP87Dir)
		if err != nil {
			vsopMu.Unlock()
			return Position{}, fmt.Errorf("could not load planet number %d: %s", num, err)
		}
		vsopLoaded[bodyKey] = planet
	}
	vsopMu.Unlock()
	l, b, r := planet.Position2000(jd)
	return eclipticToScene(l.Rad(), b.Rad(), r*cfg.UnitsPerAU), nil
}

// eclipticToScene converts heliocentric ecliptic spherical coordinates
// (longitude, latitude, radius) to the Y-up scene frame.
func eclipticToScene(l, b, r float64) Position {
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	return Position{
		X: r * cB * cL,
		Y: r * sB,
		Z: r * cB * sL,
		R: r,
	}
}
