package orrery

import (
	"fmt"
	"strings"
	"sync"
)

// J2000 is the reference epoch of the catalog element sets, as a Julian Date.
const J2000 = 2451545.0

// BodyKind classifies a tracked celestial object.
type BodyKind uint8

// Kinds of tracked bodies.
const (
	Star BodyKind = iota + 1
	Planet
	DwarfPlanet
	Asteroid
)

func (k BodyKind) String() string {
	switch k {
	case Star:
		return "star"
	case Planet:
		return "planet"
	case DwarfPlanet:
		return "dwarf planet"
	case Asteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// Body ties a tracked celestial object to its orbit. Radius is the physical
// mean radius in km, for display only. The primary star carries no element
// set: it sits at the origin and must be special-cased by callers instead of
// resolved.
type Body struct {
	Key      string
	Name     string
	Kind     BodyKind
	Radius   float64
	Elements Elements
}

func (b Body) String() string {
	return b.Name + " body"
}

// Comet ties a synthetic comet to its simplified orbit.
type Comet struct {
	Key   string
	Name  string
	Orbit CometOrbit
}

var (
	catalogOnce sync.Once
	catBodies   []Body
	catComets   []Comet
	catByKey    map[string]Body
	cometByKey  map[string]Comet
)

// Element values are J2000 heliocentric means; the argument of periapsis and
// mean anomaly at epoch are derived from the tabulated longitudes of
// perihelion and mean longitudes. Semi-major axes are tabulated in AU and
// scaled into scene units at load.
func buildCatalog() {
	au := orreryConfig().UnitsPerAU
	el := func(aAU, e, i, Ω, ω, M0, period float64) Elements {
		return NewElements(aAU*au, e, i, Ω, ω, M0, period, J2000)
	}
	catBodies = []Body{
		{Key: "sun", Name: "Sun", Kind: Star, Radius: 695700},
		{Key: "mercury", Name: "Mercury", Kind: Planet, Radius: 2439.7,
			Elements: el(0.38710, 0.20563, 7.005, 48.331, 29.125, 174.795, 87.969)},
		{Key: "venus", Name: "Venus", Kind: Planet, Radius: 6051.8,
			Elements: el(0.72333, 0.00677, 3.395, 76.680, 54.853, 50.447, 224.701)},
		{Key: "earth", Name: "Earth", Kind: Planet, Radius: 6371.0,
			Elements: el(1.00000, 0.01671, 0.000, 174.873, 288.064, 357.527, 365.256)},
		{Key: "mars", Name: "Mars", Kind: Planet, Radius: 3389.5,
			Elements: el(1.52368, 0.09340, 1.850, 49.562, 286.479, 19.406, 686.980)},
		{Key: "jupiter", Name: "Jupiter", Kind: Planet, Radius: 69911,
			Elements: el(5.20260, 0.04849, 1.303, 100.464, 273.867, 20.020, 4332.59)},
		{Key: "saturn", Name: "Saturn", Kind: Planet, Radius: 58232,
			Elements: el(9.55491, 0.05551, 2.489, 113.666, 339.391, 317.020, 10759.22)},
		{Key: "uranus", Name: "Uranus", Kind: Planet, Radius: 25362,
			Elements: el(19.21845, 0.04630, 0.773, 74.006, 98.999, 141.050, 30688.5)},
		{Key: "neptune", Name: "Neptune", Kind: Planet, Radius: 24622,
			Elements: el(30.11039, 0.00899, 1.770, 131.784, 276.340, 256.225, 60182)},
		{Key: "pluto", Name: "Pluto", Kind: DwarfPlanet, Radius: 1188.3,
			Elements: el(39.482, 0.24880, 17.142, 110.299, 113.771, 14.860, 90560)},
		{Key: "ceres", Name: "Ceres", Kind: DwarfPlanet, Radius: 469.7,
			Elements: el(2.7675, 0.07600, 10.594, 80.306, 73.597, 95.989, 1681.6)},
		{Key: "vesta", Name: "Vesta", Kind: Asteroid, Radius: 262.7,
			Elements: el(2.3615, 0.08870, 7.142, 103.810, 151.199, 205.652, 1325.8)},
		{Key: "pallas", Name: "Pallas", Kind: Asteroid, Radius: 256,
			Elements: el(2.7730, 0.23100, 34.840, 173.080, 310.049, 78.229, 1686.0)},
		{Key: "eros", Name: "Eros", Kind: Asteroid, Radius: 8.4,
			Elements: el(1.4580, 0.22290, 10.829, 304.299, 178.817, 320.216, 643.2)},
	}
	// The comet set is synthetic: distances chosen for the scene, periods
	// from Kepler's third law at the catalog scale. Ikaros is the most
	// eccentric tracked body (e just under 0.97).
	catComets = []Comet{
		{Key: "ikaros", Name: "Ikaros", Orbit: NewCometOrbit(3.2, 200, 1732, 12, 0, J2000)},
		{Key: "levy", Name: "Levy", Orbit: NewCometOrbit(10, 160, 1325, 25, 120, J2000)},
		{Key: "tempest", Name: "Tempest", Orbit: NewCometOrbit(18, 120, 969, 5, 240, J2000)},
	}
	catByKey = make(map[string]Body, len(catBodies))
	for _, b := range catBodies {
		catByKey[b.Key] = b
	}
	cometByKey = make(map[string]Comet, len(catComets))
	for _, c := range catComets {
		cometByKey[c.Key] = c
	}
}

// Catalog returns every tracked body, the primary star first.
func Catalog() []Body {
	catalogOnce.Do(buildCatalog)
	return catBodies
}

// Comets returns the synthetic comet set.
func Comets() []Comet {
	catalogOnce.Do(buildCatalog)
	return catComets
}

// CometFromString returns the comet from its key.
func CometFromString(name string) (Comet, error) {
	catalogOnce.Do(buildCatalog)
	c, found := cometByKey[strings.ToLower(name)]
	if !found {
		return Comet{}, fmt.Errorf("undefined comet '%s'", name)
	}
	return c, nil
}

// BodyFromString returns the body from its name or key.
func BodyFromString(name string) (Body, error) {
	catalogOnce.Do(buildCatalog)
	b, found := catByKey[strings.ToLower(name)]
	if !found {
		return Body{}, fmt.Errorf("undefined body '%s'", name)
	}
	return b, nil
}
