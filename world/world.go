// Package world is the top-level orchestrator the core's other packages are
// borrowed from: it owns the arena, the quadtree index, the particle table,
// and the motion resolver, and exposes the operations a driver loop calls
// once per tick. It generalizes the teacher's package-level `tree
// *quadtree.QuadTree` plus `simulateDriver`'s insert/remove/reinsert loop
// (main.go) into a single owned, synchronous type: no goroutines, since
// spec.md §5 forbids concurrent mutation of one arena.
package world

import (
	"github.com/google/uuid"

	"ParticleField/arena"
	"ParticleField/config"
	"ParticleField/geometry"
	"ParticleField/motion"
	"ParticleField/observer"
	"ParticleField/particle"
	"ParticleField/quadtree"
	"ParticleField/randomsource"
	"ParticleField/vision"
)

// World owns every piece of shared state one simulation needs: the arena
// boundary, the spatial index, the particle table and the motion resolver
// that ties them together for a single moving disc at a time.
type World struct {
	// SessionID distinguishes concurrently-running demo worlds; it is an
	// ambient/demo concern surfaced by cmd/server and is never consulted
	// by any core algorithm.
	SessionID uuid.UUID

	Config   config.Config
	Arena    arena.Arena
	Index    *quadtree.Index
	Table    *particle.Table
	Resolver *motion.Resolver
	Random   randomsource.Source
	Observer observer.GeometryObserver
}

// New constructs a World from a validated Config. Callers must call
// cfg.Validate() first; New does not re-validate (construction failure on
// invalid config is cfg.Validate's job per spec.md §7).
func New(cfg config.Config, src randomsource.Source, obs observer.GeometryObserver) *World {
	if obs == nil {
		obs = observer.NullObserver{}
	}
	a, capacity, maxDepth := cfg.Build()
	idx := quadtree.NewIndex(a.AABB(), capacity, maxDepth, cfg.Epsilon(), obs)
	table := particle.NewTable()

	w := &World{
		SessionID: uuid.New(),
		Config:    cfg,
		Arena:     a,
		Index:     idx,
		Table:     table,
		Random:    src,
		Observer:  obs,
	}
	w.Resolver = &motion.Resolver{
		Arena:      a,
		Index:      idx,
		Table:      table,
		Random:     src,
		Observer:   obs,
		EpsilonRel: cfg.Epsilon(),
	}
	return w
}

// AddParticle inserts a single particle directly (radius and position
// already chosen by the caller), bypassing random placement. It returns the
// assigned ID. Used by tests and by AddParticles' retry loop.
func (w *World) AddParticle(p particle.Particle, allowOverlap bool) (particle.ID, bool) {
	p.ID = 0
	center := p.Center
	radius := p.Radius

	// Reserve the id first so the disc carries its real identity into the
	// index, then roll back the table entry if the index rejects it.
	id := w.Table.Add(p)
	disc := quadtree.Disc{ID: id, Center: center, Radius: radius}
	if w.Index.Insert(disc, allowOverlap) == quadtree.Rejected {
		w.Table.Delete(id)
		return 0, false
	}
	w.Observer.DiscDrawn(uint64(id), center, radius)
	return id, true
}

// AddParticles implements spec.md §4.5: draws n random interior points (via
// Config's radius policy) and inserts each with allowOverlap, retrying up
// to maxIters times per particle on rejection. Particles that exhaust their
// retries are skipped, not fatal to the batch; the caller gets back how
// many of the n requested were actually placed.
func (w *World) AddParticles(n int, allowOverlap bool) (placed int) {
	maxIters := w.Config.MaxPlacementRetries
	if maxIters <= 0 {
		maxIters = 100
	}
	for i := 0; i < n; i++ {
		radius := w.drawRadius()
		ok := false
		for attempt := 0; attempt <= maxIters; attempt++ {
			center := w.Arena.RandomInteriorPoint(radius, w.Random)
			p := particle.Particle{Center: center, Radius: radius}
			if _, inserted := w.AddParticle(p, allowOverlap); inserted {
				ok = true
				break
			}
		}
		if ok {
			placed++
		} else {
			// Placement exhausted (spec.md §7): reported, not fatal; the
			// caller can compare placed against n to detect the shortfall.
			w.Observer.PlacementExhausted(radius, maxIters+1)
		}
	}
	return placed
}

func (w *World) drawRadius() float64 {
	if !w.Config.RandomRadiusEnabled {
		return w.Config.DefaultRadius
	}
	r := w.Config.RandomRadiusRange
	return randomsource.Range(w.Random, r.Min, r.Max)
}

// RemoveParticle removes a particle from both the table and the index.
func (w *World) RemoveParticle(id particle.ID) {
	p, ok := w.Table.Get(id)
	if !ok {
		return
	}
	w.Index.Remove(quadtree.Disc{ID: id, Center: p.Center, Radius: p.Radius})
	w.Table.Delete(id)
	w.Observer.DiscRemoved(uint64(id))
}

// Tick advances one particle per spec.md §4.3.
func (w *World) Tick(id particle.ID, move motion.Move) error {
	return w.Resolver.Advance(id, move)
}

// TickAll advances every particle currently in the table with the same
// move template (direction nil draws a fresh heading per particle),
// mirroring the teacher's per-driver loop lifted into one sequential pass
// (no goroutines, per spec.md §5).
func (w *World) TickAll(move motion.Move) {
	for _, p := range w.Table.All() {
		_ = w.Resolver.Advance(p.ID, move)
	}
}

// QuerySweptCorridor is a read-only passthrough to the index.
func (w *World) QuerySweptCorridor(a, b geometry.V2, r float64) []quadtree.Disc {
	return w.Index.QuerySweptCorridor(a, b, r)
}

// QuerySector is a read-only passthrough to the index.
func (w *World) QuerySector(center geometry.V2, facingDegrees, rng, aperture float64) []quadtree.Disc {
	return w.Index.QuerySector(center, facingDegrees, rng, aperture)
}

// QueryCircleMembers is a read-only passthrough to the index.
func (w *World) QueryCircleMembers(center geometry.V2, radius float64) []quadtree.Disc {
	return w.Index.QueryCircleMembers(quadtree.Disc{Center: center, Radius: radius})
}

// Vision returns every particle visible to the particle identified by id,
// per spec.md §4.4. It returns nil if the particle is unknown or has no
// FOV configured.
func (w *World) Vision(id particle.ID) []vision.Hit {
	p, ok := w.Table.Get(id)
	if !ok {
		return nil
	}
	return vision.Query(w.Index, w.Table, p, w.Config.Epsilon())
}
