package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/helioviz/orrery"
)

// NOTE: This tool drives the engine the way the renderer does: one clock
// advance and one batch resolve per tick, at a fixed frame delta.

/* === CONFIG === */
var (
	startDate string
	accel     float64
	tickSecs  float64
	ticks     int
	traceBody string
	traceDays float64
	traceStep float64
)

/* ===  END  === */

func init() {
	flag.StringVar(&startDate, "date", orrery.Today(), "simulation start date (YYYY-MM-DD)")
	flag.Float64Var(&accel, "accel", 1, "time acceleration factor (0 freezes time)")
	flag.Float64Var(&tickSecs, "dt", 1.0/60, "real seconds per tick")
	flag.IntVar(&ticks, "ticks", 600, "number of ticks to simulate")
	flag.StringVar(&traceBody, "trace", "", "export a CSV orbit trace for this body and exit")
	flag.Float64Var(&traceDays, "trace-days", 365, "days to sample in the trace")
	flag.Float64Var(&traceStep, "trace-step", 1, "sampling step of the trace in days")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "tool", "orrery")

	eng := orrery.NewEngine(logger)
	if err := eng.SetSimulatedDate(startDate); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	if traceBody != "" {
		body, err := orrery.BodyFromString(traceBody)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		if body.Kind == orrery.Star {
			logger.Log("err", "the star has no orbit to trace")
			os.Exit(1)
		}
		if err := orrery.ExportTraceCSV(os.Stdout, body.Elements, eng.Clock().JD(), traceDays, traceStep); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		return
	}

	eng.Clock().SetAcceleration(accel)
	ctx := context.Background()
	start := time.Now()
	threshold := orrery.CometActiveRadius()
	jd := eng.Clock().JD()
	active := 0
	for i := 0; i < ticks; i++ {
		jd = eng.AdvanceClock(tickSecs)
		states := eng.ResolveAll(ctx, jd)
		active = 0
		for _, s := range states {
			if s.Active {
				active++
			}
		}
	}
	date, err := eng.FormatDate(jd)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	logger.Log("msg", "simulation complete",
		"ticks", ticks,
		"date", date,
		"jd", fmt.Sprintf("%.4f", jd),
		"active", active,
		"threshold", threshold,
		"elapsed", time.Since(start),
	)
}
