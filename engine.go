package orrery

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/kit/log"
)

// Engine is the function-call boundary consumed by the rendering layer. It
// owns the simulation clock and resolves catalog bodies against it. All
// per-body resolution is a pure function of (elements, Julian Date), so only
// the clock is mutable state and it has a single writer: the tick owner.
type Engine struct {
	clock   *Clock
	workers int
	logger  kitlog.Logger
}

// BodyState is the per-tick output for one tracked body.
type BodyState struct {
	Key      string
	Position Position
	// Active reports whether the body is within the visual-relevance
	// threshold. Always true for catalog bodies; thresholded for comets.
	Active bool
}

// NewEngine returns an engine with its clock set to the process start date.
func NewEngine(logger kitlog.Logger) *Engine {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "component", "engine")
	return &Engine{
		clock:   NewClock(TodayJD()),
		workers: runtime.NumCPU(),
		logger:  logger,
	}
}

// Clock exposes the engine's simulation clock for acceleration control.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// ResolvePosition returns the heliocentric position of the named body or
// comet at the given Julian Date. The primary star is pinned to the origin;
// direction-dependent queries against it must go through Sunward, which
// reports the degenerate case explicitly.
func (e *Engine) ResolvePosition(bodyKey string, jd float64) (Position, error) {
	if b, err := BodyFromString(bodyKey); err == nil {
		if b.Kind == Star {
			return Position{}, nil
		}
		return b.Elements.ResolveAt(jd), nil
	}
	if c, err := CometFromString(bodyKey); err == nil {
		return c.Orbit.ResolveAt(jd), nil
	}
	return Position{}, fmt.Errorf("undefined body '%s'", bodyKey)
}

// AdvanceClock progresses simulated time by the given real-time delta and
// returns the new Julian Date. Called once per tick by the scheduling owner.
func (e *Engine) AdvanceClock(realSeconds float64) float64 {
	return e.clock.Advance(realSeconds)
}

// SetSimulatedDate jumps the clock to the given ISO-8601 calendar date.
func (e *Engine) SetSimulatedDate(date string) error {
	if err := e.clock.SetDate(date); err != nil {
		e.logger.Log("msg", "date jump rejected", "date", date, "err", err)
		return err
	}
	e.logger.Log("msg", "date jump", "date", date, "jd", e.clock.JD())
	return nil
}

// FormatDate formats a Julian Date as an ISO-8601 calendar date, for display
// labels only.
func (e *Engine) FormatDate(jd float64) (string, error) {
	return JulianToDate(jd)
}

// ResolveAll resolves every tracked body and comet at the given Julian Date,
// fanning the work out over a fixed worker pool. Resolution is side-effect
// free and independent per body, so this is purely a performance measure;
// results carry no ordering guarantee.
func (e *Engine) ResolveAll(ctx context.Context, jd float64) []BodyState {
	bodies := Catalog()
	comets := Comets()
	threshold := CometActiveRadius()

	jobs := make(chan func() BodyState, e.workers*2)
	results := make(chan BodyState, e.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case results <- job():
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, b := range bodies {
			if b.Kind == Star {
				continue
			}
			el := b.Elements
			key := b.Key
			job := func() BodyState {
				return BodyState{Key: key, Position: el.ResolveAt(jd), Active: true}
			}
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
		for _, c := range comets {
			orbit := c.Orbit
			key := c.Key
			job := func() BodyState {
				p := orbit.ResolveAt(jd)
				return BodyState{Key: key, Position: p, Active: ActiveWithin(p.R, threshold)}
			}
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	states := make([]BodyState, 0, len(bodies)+len(comets))
	for s := range results {
		states = append(states, s)
	}
	return states
}
