// Package vision implements the oriented circular sector query a particle
// uses to enumerate the other particles it can see. It reuses the
// quadtree's leaf-level sector traversal for the candidate gather and then
// applies the exact per-particle visibility test from particle.py's
// Particle.search: a target is visible when its surface, not just its
// center, falls within the aperture and range.
package vision

import (
	"math"
	"sort"

	"ParticleField/geometry"
	"ParticleField/particle"
	"ParticleField/quadtree"
)

// Hit is one particle visible to the querying particle, paired with its
// surface-to-surface distance (used for the descending sort spec.md §4.4
// requires).
type Hit struct {
	Target          particle.Particle
	SurfaceDistance float64
}

// Query enumerates every particle in table visible from observer's position,
// facing and field of view, using idx to gather candidate leaves. observer
// itself is always excluded from the results. Returns nil if observer has
// no FOV configured.
func Query(idx *quadtree.Index, table *particle.Table, observer particle.Particle, epsilonRel float64) []Hit {
	if observer.FOV == nil {
		return nil
	}
	facing := observer.Facing()
	candidates := idx.QuerySector(observer.Center, observer.Orientation, observer.FOV.Range, observer.FOV.Aperture)

	halfAperture := observer.FOV.Aperture / 2
	var hits []Hit
	for _, c := range candidates {
		if c.ID == observer.ID {
			continue
		}
		target, ok := table.Get(c.ID)
		if !ok {
			continue
		}
		v := target.Center.Sub(observer.Center)
		lenSq := v.LengthSquared()
		if lenSq == 0 {
			// The target sits exactly on the observer; treat it as
			// visible regardless of aperture.
			hits = append(hits, Hit{Target: target, SurfaceDistance: -observer.Radius - target.Radius})
			continue
		}

		// Subtract the half-angle the target's own disc subtends at the
		// observer, so a target tangent to the sector's edge still
		// counts (spec.md §4.4).
		ratio := (2*lenSq - target.Radius*target.Radius) / (2 * lenSq)
		if ratio > 1 {
			ratio = 1
		} else if ratio < -1 {
			ratio = -1
		}
		subtended := math.Acos(ratio) * 180 / math.Pi

		angle := geometry.AngleBetween(facing, v)
		if !geometry.LessOrNearlyEqual(angle-subtended, halfAperture, epsilonRel) {
			continue
		}

		length := math.Sqrt(lenSq)
		if !geometry.LessOrNearlyEqual(length, observer.FOV.Range+target.Radius, epsilonRel) {
			continue
		}

		hits = append(hits, Hit{
			Target:          target,
			SurfaceDistance: length - observer.Radius - target.Radius,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].SurfaceDistance > hits[j].SurfaceDistance
	})
	return hits
}
