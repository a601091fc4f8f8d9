// Package motion implements the swept-circle movement resolver: the single
// algorithm that turns a requested direction and magnitude into a disc's
// new center, honoring the arena boundary and any obstacles encountered
// along the way. It generalizes particle.py's Particle.move and
// zone.py's CircleZone.move_circles_randomly into one reusable resolver
// driven by injected collaborators rather than globals.
package motion

import (
	"math"
	"sort"

	"ParticleField/arena"
	"ParticleField/geometry"
	"ParticleField/observer"
	"ParticleField/particle"
	"ParticleField/quadtree"
)

// Move describes one requested displacement. If Direction is non-nil, the
// particle moves exactly Magnitude units along it; otherwise a heading is
// drawn uniformly from [ThetaMin, ThetaMax] degrees.
type Move struct {
	Direction          *geometry.V2
	ThetaMin, ThetaMax float64
	Magnitude          float64
}

// Resolver applies Move requests against one world's shared state: the
// arena boundary, the spatial index, and the particle table. A Resolver
// holds no per-particle state of its own.
type Resolver struct {
	Arena      arena.Arena
	Index      *quadtree.Index
	Table      *particle.Table
	Random     Source
	Observer   observer.GeometryObserver
	EpsilonRel float64
}

// Source is the subset of randomsource.Source the resolver needs, declared
// locally so this package does not import randomsource just to accept an
// interface value (the teacher's quadtree package similarly only imports
// what its own methods touch).
type Source interface {
	Float64() float64
}

func (r *Resolver) epsilon() float64 {
	if r.EpsilonRel > 0 {
		return r.EpsilonRel
	}
	return geometry.DefaultEpsilonRel
}

// Advance runs the ten-step swept-circle resolution for the particle
// identified by id, per spec.md §4.3. It reports ErrParticleNotFound if id
// is not present in the table.
func (r *Resolver) Advance(id particle.ID, move Move) error {
	p, ok := r.Table.Get(id)
	if !ok {
		return ErrParticleNotFound
	}

	// Step 1: pick the direction.
	delta := r.pickDelta(move)

	// Step 2: tentative move.
	p0 := p.Center
	p1 := p0.Add(delta)

	// Step 3: boundary clip.
	eps := r.epsilon()
	candidate := shapesCircle(p1, p.Radius)
	if !r.Arena.Confines(candidate, eps) {
		p1 = r.Arena.ClipTraversal(p.Radius, p0, p1, eps)
		if !r.Arena.Confines(shapesCircle(p1, p.Radius), eps) {
			r.Observer.InvariantViolated("motion: boundary clip did not restore arena confinement; reverting tick")
			return ErrInvariantViolated
		}
		delta = p1.Sub(p0)
		if geometry.NearlyEqual(delta.LengthSquared(), 0, eps) {
			return nil
		}
	}

	// Step 4: the resolver works on a copy; p.Center is still p0 here.
	self := quadtree.Disc{ID: id, Center: p0, Radius: p.Radius}

	// Step 5: candidate gather.
	candidates := r.Index.QuerySweptCorridor(p0, p1, p.Radius)

	// Step 6/7: partition into obstacles/non-obstacles, each sorted
	// ascending by surface distance.
	obstacles, nonObstacles := partition(candidates, self, p0, delta, eps)
	sortBySurfaceDistance(obstacles, self)
	sortBySurfaceDistance(nonObstacles, self)

	// Step 8: stop at the first real obstacle.
	terminal := stopAtFirstObstacle(obstacles, self, p0, delta, eps)

	// Step 9: non-obstacle veto.
	terminalDisc := quadtree.Disc{ID: id, Center: terminal, Radius: p.Radius}
	for _, c := range nonObstacles {
		if terminalDisc.Circle().Overlaps(c.Circle(), eps) {
			terminal = p0
			break
		}
	}

	// Step 10: commit.
	displacement := terminal.Sub(p0)
	if geometry.NearlyEqual(displacement.LengthSquared(), 0, eps) {
		return nil
	}
	r.Index.Remove(quadtree.Disc{ID: id, Center: p0, Radius: p.Radius})
	p.Center = terminal
	r.Table.Set(p)
	r.Index.Insert(quadtree.Disc{ID: id, Center: terminal, Radius: p.Radius}, true)
	r.Observer.DiscMoved(uint64(id), p0, terminal)
	return nil
}

func (r *Resolver) pickDelta(move Move) geometry.V2 {
	if move.Direction != nil {
		return move.Direction.Resize(move.Magnitude)
	}
	thetaDeg := move.ThetaMin + r.Random.Float64()*(move.ThetaMax-move.ThetaMin)
	return geometry.FromAngle(thetaDeg, move.Magnitude)
}

func shapesCircle(center geometry.V2, radius float64) circleShape {
	return circleShape{Center: center, Radius: radius}
}

// circleShape is a tiny local alias so this file does not need to import
// the shapes package just for the Confines call's argument type; it is
// structurally identical to shapes.Circle.
type circleShape = struct {
	Center geometry.V2
	Radius float64
}

// partition splits candidates into obstacles and non-obstacles per §4.3
// step 6. trajectory is the segment p0->p0+delta.
func partition(candidates []quadtree.Disc, self quadtree.Disc, p0, delta geometry.V2, eps float64) (obstacles, nonObstacles []quadtree.Disc) {
	trajectory := geometry.NewSegment(p0, p0.Add(delta))
	deltaLenSq := delta.LengthSquared()
	for _, c := range candidates {
		if c.ID == self.ID {
			continue
		}
		if isObstacle(c, self, p0, delta, trajectory, deltaLenSq, eps) {
			obstacles = append(obstacles, c)
		} else {
			nonObstacles = append(nonObstacles, c)
		}
	}
	return obstacles, nonObstacles
}

func isObstacle(c, self quadtree.Disc, p0, delta geometry.V2, trajectory geometry.Segment, deltaLenSq, eps float64) bool {
	toCandidate := c.Center.Sub(p0)

	// (a) ahead of trajectory: angle strictly less than 90 degrees.
	if deltaLenSq == 0 {
		return false
	}
	angle := geometry.AngleBetween(delta, toCandidate)
	if !(angle < 90) {
		return false
	}

	// (b) within the swept corridor width.
	distSqLine := trajectory.SquaredDistanceFromLine(c.Center)
	widthThreshold := (self.Radius + c.Radius) * (self.Radius + c.Radius)
	if !(distSqLine < widthThreshold) {
		return false
	}

	// (c) within swept length.
	distSqCenter := p0.DistanceSquared(c.Center)
	var alongSq float64
	if geometry.NearlyEqual(distSqLine, 0, eps) {
		alongSq = distSqCenter
	} else {
		alongSq = distSqCenter - distSqLine
	}
	lengthThreshold := math.Sqrt(deltaLenSq) + self.Radius + c.Radius
	return alongSq < lengthThreshold*lengthThreshold
}

func sortBySurfaceDistance(discs []quadtree.Disc, self quadtree.Disc) {
	sort.Slice(discs, func(i, j int) bool {
		di := self.Circle().DistanceFromCircle(discs[i].Circle())
		dj := self.Circle().DistanceFromCircle(discs[j].Circle())
		return di < dj
	})
}

// stopAtFirstObstacle implements §4.3 step 8: walk the obstacles in
// ascending-distance order, computing each one's true tangency point along
// the trajectory, skipping any the chosen terminal no longer touches.
func stopAtFirstObstacle(obstacles []quadtree.Disc, self quadtree.Disc, p0, delta geometry.V2, eps float64) geometry.V2 {
	trajectory := geometry.NewSegment(p0, p0.Add(delta))
	deltaLen := delta.Length()
	unit := delta
	if deltaLen > 0 {
		unit = delta.Resize(1)
	}
	dCenter := p0.Add(delta)
	stopped := false

	for _, c := range obstacles {
		if stopped {
			current := quadtree.Disc{ID: self.ID, Center: dCenter, Radius: self.Radius}
			if !current.Circle().Overlaps(c.Circle(), eps) {
				continue
			}
		}
		toCandidate := c.Center.Sub(p0)
		proj := toCandidate.Project(delta)
		dPerpSq := trajectory.SquaredDistanceFromLine(c.Center)
		rSum := self.Radius + c.Radius
		tSq := rSum*rSum - dPerpSq
		if tSq <= 0 {
			continue // not actually touched along the swept path
		}
		pStop := p0.Add(proj).Sub(unit.Scale(math.Sqrt(tSq)))
		if pStop.Sub(p0).LengthSquared() > delta.LengthSquared()+eps {
			pStop = p0.Add(unit.Scale(deltaLen))
		}
		dCenter = pStop
		stopped = true
	}
	return dCenter
}
