// Command server is a demonstration HTTP API around a world.World, mirroring
// the teacher's gin + gin-contrib/cors particle-query server (main.go):
// same router construction, same query-handler shape (parse float query
// params, 400 on parse failure, JSON array response), generalized from the
// single /find-nearby handler to the disc domain's seed/tick/query surface.
// The core packages (geometry, shapes, quadtree, arena, particle, motion,
// vision) have zero import dependency on gin; this package is purely the
// demo/integration surface named in spec.md §1's "process entry/CLI" as an
// external collaborator.
package main

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ParticleField/config"
	"ParticleField/geometry"
	"ParticleField/motion"
	"ParticleField/observer"
	"ParticleField/particle"
	"ParticleField/quadtree"
	"ParticleField/randomsource"
	"ParticleField/world"
)

// server wraps a *world.World with the coarse-grained lock cmd/server uses
// to serialize mutating handlers, the same guard granularity as the
// teacher's quadtree.QuadTree.mu, lifted one level up because spec.md §5
// forbids two ticks racing on overlapping corridors.
type server struct {
	mu sync.Mutex
	w  *world.World
}

func newServer() *server {
	cfg := config.Default(config.ArenaShape{
		Circle: &config.CircleShape{CenterX: 0, CenterY: 0, Radius: 500},
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	w := world.New(cfg, randomsource.NewDefault(1), observer.NewLogObserver(nil))
	return &server{w: w}
}

type particleResponse struct {
	ID          uint64  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Radius      float64 `json:"radius"`
	Orientation float64 `json:"orientation"`
}

func toResponse(p particle.Particle) particleResponse {
	return particleResponse{
		ID:          uint64(p.ID),
		X:           p.Center.X,
		Y:           p.Center.Y,
		Radius:      p.Radius,
		Orientation: p.Orientation,
	}
}

// handleSeedParticles handles POST /particles?n=&allow_overlap=
func (s *server) handleSeedParticles(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "1"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametro 'n' non valido"})
		return
	}
	allowOverlap := c.DefaultQuery("allow_overlap", "false") == "true"

	s.mu.Lock()
	placed := s.w.AddParticles(n, allowOverlap)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"requested": n, "placed": placed})
}

// handleListParticles handles GET /particles
func (s *server) handleListParticles(c *gin.Context) {
	s.mu.Lock()
	all := s.w.Table.All()
	s.mu.Unlock()

	results := make([]particleResponse, 0, len(all))
	for _, p := range all {
		results = append(results, toResponse(p))
	}
	c.JSON(http.StatusOK, results)
}

// handleTick handles POST /tick?id=&dx=&dy=&magnitude= (id omitted ticks
// every particle; dx omitted draws a random heading per particle).
func (s *server) handleTick(c *gin.Context) {
	magnitude, err := strconv.ParseFloat(c.DefaultQuery("magnitude", "1"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametro 'magnitude' non valido"})
		return
	}

	move := motion.Move{Magnitude: magnitude, ThetaMin: 0, ThetaMax: 360}
	if dxStr, ok := c.GetQuery("dx"); ok {
		dx, errDx := strconv.ParseFloat(dxStr, 64)
		dy, errDy := strconv.ParseFloat(c.Query("dy"), 64)
		if errDx != nil || errDy != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parametri 'dx'/'dy' non validi"})
			return
		}
		dir := geometry.V2{X: dx, Y: dy}
		move.Direction = &dir
	}

	idStr, hasID := c.GetQuery("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if !hasID {
		s.w.TickAll(move)
		c.JSON(http.StatusOK, gin.H{"ticked": s.w.Table.Count()})
		return
	}
	idVal, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametro 'id' non valido"})
		return
	}
	if err := s.w.Tick(particle.ID(idVal), move); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticked": 1})
}

// handleQueryCorridor handles GET /query/corridor?ax=&ay=&bx=&by=&r=
func (s *server) handleQueryCorridor(c *gin.Context) {
	ax, errAx := strconv.ParseFloat(c.Query("ax"), 64)
	ay, errAy := strconv.ParseFloat(c.Query("ay"), 64)
	bx, errBx := strconv.ParseFloat(c.Query("bx"), 64)
	by, errBy := strconv.ParseFloat(c.Query("by"), 64)
	r, errR := strconv.ParseFloat(c.Query("r"), 64)
	if errAx != nil || errAy != nil || errBx != nil || errBy != nil || errR != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametri 'ax','ay','bx','by','r' non validi o mancanti"})
		return
	}

	s.mu.Lock()
	found := s.w.QuerySweptCorridor(geometry.V2{X: ax, Y: ay}, geometry.V2{X: bx, Y: by}, r)
	s.mu.Unlock()
	c.JSON(http.StatusOK, discResponses(found))
}

// handleQuerySector handles GET /query/sector?x=&y=&facing=&range=&aperture=
func (s *server) handleQuerySector(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	facing, errF := strconv.ParseFloat(c.Query("facing"), 64)
	rng, errR := strconv.ParseFloat(c.Query("range"), 64)
	aperture, errA := strconv.ParseFloat(c.Query("aperture"), 64)
	if errX != nil || errY != nil || errF != nil || errR != nil || errA != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametri 'x','y','facing','range','aperture' non validi o mancanti"})
		return
	}

	s.mu.Lock()
	found := s.w.QuerySector(geometry.V2{X: x, Y: y}, facing, rng, aperture)
	s.mu.Unlock()
	c.JSON(http.StatusOK, discResponses(found))
}

// handleQueryCircle handles GET /query/circle?x=&y=&r=
func (s *server) handleQueryCircle(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	r, errR := strconv.ParseFloat(c.Query("r"), 64)
	if errX != nil || errY != nil || errR != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametri 'x','y','r' non validi o mancanti"})
		return
	}

	s.mu.Lock()
	found := s.w.QueryCircleMembers(geometry.V2{X: x, Y: y}, r)
	s.mu.Unlock()
	c.JSON(http.StatusOK, discResponses(found))
}

// discResponse mirrors particleResponse's JSON shape for the lightweight
// quadtree.Disc values a query returns (no orientation/FOV).
type discResponse struct {
	ID     uint64  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

func discResponses(found []quadtree.Disc) []discResponse {
	out := make([]discResponse, 0, len(found))
	for _, d := range found {
		out = append(out, discResponse{ID: uint64(d.ID), X: d.Center.X, Y: d.Center.Y, Radius: d.Radius})
	}
	return out
}

func (s *server) handleHealthz(c *gin.Context) {
	s.mu.Lock()
	sessionID := s.w.SessionID
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session_id": sessionID.String()})
}

func main() {
	s := newServer()

	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/particles", s.handleSeedParticles)
	r.GET("/particles", s.handleListParticles)
	r.POST("/tick", s.handleTick)
	r.GET("/query/corridor", s.handleQueryCorridor)
	r.GET("/query/sector", s.handleQuerySector)
	r.GET("/query/circle", s.handleQueryCircle)
	r.GET("/healthz", s.handleHealthz)

	log.Println("API server listening on http://localhost:8080")
	r.Run(":8080")
}
