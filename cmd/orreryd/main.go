package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	kitlog "github.com/go-kit/kit/log"

	"github.com/helioviz/orrery"
)

// orreryd serves the engine state over HTTP for the rendering frontend. The
// engine itself stays presentation-free; this daemon is the delivery surface.

var (
	addr     string
	accel    float64
	tickRate time.Duration
	origin   string
)

func init() {
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.Float64Var(&accel, "accel", 1, "time acceleration factor")
	flag.DurationVar(&tickRate, "tick", time.Second/30, "clock tick interval")
	flag.StringVar(&origin, "origin", "http://localhost:4200", "allowed CORS origin for the frontend")
}

// server serializes access to the engine: the tick loop is the single clock
// writer, handlers only read under the same lock.
type server struct {
	mu     sync.Mutex
	eng    *orrery.Engine
	logger kitlog.Logger
}

func (s *server) tick(dt float64) {
	s.mu.Lock()
	s.eng.AdvanceClock(dt)
	s.mu.Unlock()
}

type positionJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	R float64 `json:"r"`
}

func toJSON(p orrery.Position) positionJSON {
	return positionJSON{X: p.X, Y: p.Y, Z: p.Z, R: p.R}
}

// getBodies returns every tracked body and comet at the current simulated
// instant.
func (s *server) getBodies(c *gin.Context) {
	s.mu.Lock()
	jd := s.eng.Clock().JD()
	s.mu.Unlock()

	threshold := orrery.CometActiveRadius()
	type bodyResp struct {
		Key      string       `json:"key"`
		Name     string       `json:"name"`
		Kind     string       `json:"kind"`
		Position positionJSON `json:"position"`
		Active   bool         `json:"active"`
	}
	var out []bodyResp
	for _, b := range orrery.Catalog() {
		br := bodyResp{Key: b.Key, Name: b.Name, Kind: b.Kind.String(), Active: true}
		if b.Kind != orrery.Star {
			br.Position = toJSON(b.Elements.ResolveAt(jd))
		}
		out = append(out, br)
	}
	for _, cm := range orrery.Comets() {
		p := cm.Orbit.ResolveAt(jd)
		out = append(out, bodyResp{
			Key:      cm.Key,
			Name:     cm.Name,
			Kind:     "comet",
			Position: toJSON(p),
			Active:   orrery.ActiveWithin(p.R, threshold),
		})
	}
	c.JSON(http.StatusOK, gin.H{"jd": jd, "data": out, "count": len(out)})
}

// getBody returns a single body by key.
func (s *server) getBody(c *gin.Context) {
	key := strings.ToLower(c.Param("key"))
	s.mu.Lock()
	jd := s.eng.Clock().JD()
	p, err := s.eng.ResolvePosition(key, jd)
	s.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "body not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jd": jd, "key": key, "position": toJSON(p)})
}

// getState returns the clock state for display labels.
func (s *server) getState(c *gin.Context) {
	s.mu.Lock()
	jd := s.eng.Clock().JD()
	factor := s.eng.Clock().Acceleration()
	date, err := s.eng.FormatDate(jd)
	s.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jd": jd, "date": date, "acceleration": factor})
}

// setDate jumps the simulation to an explicit date.
func (s *server) setDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	err := s.eng.SetSimulatedDate(req.Date)
	jd := s.eng.Clock().JD()
	s.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jd": jd, "date": req.Date})
}

// setAcceleration changes the time acceleration factor.
func (s *server) setAcceleration(c *gin.Context) {
	var req struct {
		Factor float64 `json:"factor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	s.eng.Clock().SetAcceleration(req.Factor)
	factor := s.eng.Clock().Acceleration()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"acceleration": factor})
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "tool", "orreryd")

	eng := orrery.NewEngine(logger)
	eng.Clock().SetAcceleration(accel)
	srv := &server{eng: eng, logger: logger}

	// The tick loop is the single clock writer.
	go func() {
		ticker := time.NewTicker(tickRate)
		defer ticker.Stop()
		for range ticker.C {
			srv.tick(tickRate.Seconds())
		}
	}()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	api := r.Group("/api")
	{
		api.GET("/bodies", srv.getBodies)
		api.GET("/bodies/:key", srv.getBody)
		api.GET("/state", srv.getState)
		api.POST("/state/date", srv.setDate)
		api.POST("/state/acceleration", srv.setAcceleration)
	}

	logger.Log("msg", "listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
}
