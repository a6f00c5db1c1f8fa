package orrery

import (
	"fmt"
	"math"
)

// Clock owns the simulated Julian Date. It is advanced exactly once per tick
// by a single scheduling owner; concurrent advancement must be serialized by
// the caller. The stored date only moves forward through Advance, and jumps
// discontinuously through SetDate or SetJD.
type Clock struct {
	jd    float64
	accel float64 // simulated days per real second multiplier, >= 0
}

// NewClock returns a clock starting at the given Julian Date with 1x
// acceleration.
func NewClock(jd float64) *Clock {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		panic(fmt.Errorf("non-finite julian date %f", jd))
	}
	return &Clock{jd: jd, accel: 1}
}

// SetAcceleration sets the time acceleration factor. Zero freezes time.
// Negative or non-finite factors are not a supported state and clamp to zero.
func (c *Clock) SetAcceleration(f float64) {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	c.accel = f
}

// Acceleration returns the current time acceleration factor.
func (c *Clock) Acceleration() float64 {
	return c.accel
}

// Advance progresses simulated time by the given real-time delta and returns
// the new Julian Date. The advance is capped per tick so that even extreme
// acceleration cannot teleport bodies within a single frame.
func (c *Clock) Advance(realSeconds float64) float64 {
	if realSeconds <= 0 || math.IsNaN(realSeconds) || math.IsInf(realSeconds, 0) {
		return c.jd
	}
	cfg := orreryConfig()
	days := realSeconds * c.accel * cfg.DaysPerSecond
	if days > cfg.MaxDaysPerTick {
		days = cfg.MaxDaysPerTick
	}
	c.jd += days
	return c.jd
}

// SetDate jumps the clock to midnight of the given ISO-8601 calendar date.
// Unlike Advance, jumps are not rate limited.
func (c *Clock) SetDate(date string) error {
	jd, err := DateToJulian(date)
	if err != nil {
		return err
	}
	c.jd = jd
	return nil
}

// SetJD jumps the clock to an arbitrary Julian Date.
func (c *Clock) SetJD(jd float64) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		panic(fmt.Errorf("non-finite julian date %f", jd))
	}
	c.jd = jd
}

// JD returns the current simulated Julian Date.
func (c *Clock) JD() float64 {
	return c.jd
}

// DateString formats the current simulated date for display. Not used in the
// per-tick position math.
func (c *Clock) DateString() (string, error) {
	return JulianToDate(c.jd)
}
