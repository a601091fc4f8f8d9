package observer

import (
	"github.com/sirupsen/logrus"

	"ParticleField/geometry"
)

// LogObserver reports every event as a structured logrus entry, one field
// per value, mirroring the field-per-event shape used for engine
// diagnostics in other spatial-partition-backed engines in the pack.
type LogObserver struct {
	log *logrus.Logger
}

// NewLogObserver wraps an existing *logrus.Logger. Passing nil uses
// logrus.StandardLogger().
func NewLogObserver(log *logrus.Logger) *LogObserver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogObserver{log: log}
}

func (o *LogObserver) DiscDrawn(id uint64, center geometry.V2, radius float64) {
	o.log.WithFields(logrus.Fields{
		"event":  "disc_drawn",
		"id":     id,
		"x":      center.X,
		"y":      center.Y,
		"radius": radius,
	}).Debug("particle placed")
}

func (o *LogObserver) DiscMoved(id uint64, from, to geometry.V2) {
	o.log.WithFields(logrus.Fields{
		"event":  "disc_moved",
		"id":     id,
		"from_x": from.X,
		"from_y": from.Y,
		"to_x":   to.X,
		"to_y":   to.Y,
	}).Debug("particle moved")
}

func (o *LogObserver) DiscRemoved(id uint64) {
	o.log.WithFields(logrus.Fields{
		"event": "disc_removed",
		"id":    id,
	}).Debug("particle removed")
}

func (o *LogObserver) QuadrantDrawn(center geometry.V2, halfWidth, halfHeight float64, depth int) {
	o.log.WithFields(logrus.Fields{
		"event":      "quadrant_drawn",
		"x":          center.X,
		"y":          center.Y,
		"half_width": halfWidth,
		"half_height": halfHeight,
		"depth":      depth,
	}).Trace("quadrant boundary")
}

func (o *LogObserver) QueryHighlight(queryingID uint64, matchedIDs []uint64) {
	o.log.WithFields(logrus.Fields{
		"event":   "query_highlight",
		"id":      queryingID,
		"matched": matchedIDs,
	}).Debug("query result")
}

func (o *LogObserver) InvariantViolated(message string) {
	o.log.WithFields(logrus.Fields{
		"event": "invariant_violated",
	}).Error(message)
}

func (o *LogObserver) PlacementExhausted(radius float64, attempts int) {
	o.log.WithFields(logrus.Fields{
		"event":    "placement_exhausted",
		"radius":   radius,
		"attempts": attempts,
	}).Warn("particle placement exhausted retry budget")
}

var _ GeometryObserver = (*LogObserver)(nil)
