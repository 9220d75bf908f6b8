package flatland

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// defaultCutoffRadius is the cut-off radius a cluster is built with when
// the caller never calls SetCutoffRadius: beyond this distance a scan
// reports out-of-range rather than a finite value.
const defaultCutoffRadius = 1000.0

// readingKind tags the three-way result a scan can produce, so the
// internal protocol never mixes a sentinel with a real distance in
// arithmetic. Scan and the scanner array's Scan still expose the
// plain scalar (+Inf / NaN / finite) at the API boundary.
type readingKind int

const (
	readingFinite readingKind = iota
	readingOutOfRange
	readingImpacted
)

type reading struct {
	kind  readingKind
	value float64
}

func (r reading) toScalar() float64 {
	switch r.kind {
	case readingImpacted:
		return math.NaN()
	case readingOutOfRange:
		return math.Inf(1)
	default:
		return r.value
	}
}

// AsteroidCluster is a bounded collection of Asteroids sharing a single
// interception tolerance, a lock-step clock, and a sticky impact flag.
type AsteroidCluster struct {
	id           uuid.UUID
	capacity     int
	tolerance    float64
	cutoffRadius float64
	asteroids    []*Asteroid
	clock        int64
	impact       bool
}

// NewAsteroidCluster allocates a cluster with room for capacity asteroids
// and the given shared interception tolerance. The scan cut-off radius
// starts at defaultCutoffRadius; call SetCutoffRadius to override it.
func NewAsteroidCluster(capacity int, tolerance float64) *AsteroidCluster {
	return &AsteroidCluster{
		id:           uuid.New(),
		capacity:     capacity,
		tolerance:    tolerance,
		cutoffRadius: defaultCutoffRadius,
		asteroids:    make([]*Asteroid, 0, capacity),
	}
}

// ID returns the cluster's identity, used only for log correlation.
func (c *AsteroidCluster) ID() uuid.UUID { return c.id }

// Tolerance returns the shared interception tolerance.
func (c *AsteroidCluster) Tolerance() float64 { return c.tolerance }

// CutoffRadius returns the distance beyond which a scan reports
// out-of-range rather than a finite value.
func (c *AsteroidCluster) CutoffRadius() float64 { return c.cutoffRadius }

// SetCutoffRadius overrides the cluster's scan cut-off radius, typically
// sourced from internal/config's tuning configuration.
func (c *AsteroidCluster) SetCutoffRadius(radius float64) {
	c.cutoffRadius = radius
}

// AddAsteroid appends a new alive asteroid built from polyX/polyY, using
// the cluster's tolerance and its current clock value (so an asteroid
// added mid-game starts in lock-step with the rest). It returns
// ErrCapacityExceeded once the cluster already holds capacity asteroids.
func (c *AsteroidCluster) AddAsteroid(polyX, polyY Polynomial) error {
	if len(c.asteroids) >= c.capacity {
		return ErrCapacityExceeded
	}
	c.asteroids = append(c.asteroids, newAsteroid(polyX, polyY, c.tolerance, c.clock))
	return nil
}

// Update advances every alive asteroid's local clock by one step, then
// latches the sticky impact flag if any alive asteroid now has y <= 0.
func (c *AsteroidCluster) Update() {
	for _, a := range c.asteroids {
		if a.Alive() {
			a.Update()
		}
	}
	if c.impact {
		return
	}
	for _, a := range c.asteroids {
		if a.Alive() && a.Impacted() {
			c.impact = true
			return
		}
	}
}

// Cleared reports whether no alive asteroids remain.
func (c *AsteroidCluster) Cleared() bool {
	for _, a := range c.asteroids {
		if a.Alive() {
			return false
		}
	}
	return true
}

// Impact returns the sticky impact flag.
func (c *AsteroidCluster) Impact() bool { return c.impact }

// scan is the internal, tagged observation behind the public Scan. It
// never mutates clock or position state.
func (c *AsteroidCluster) scan(x, y float64) reading {
	if c.impact {
		return reading{kind: readingImpacted}
	}
	best := math.Inf(1)
	found := false
	for _, a := range c.asteroids {
		if !a.Alive() {
			continue
		}
		d := a.Distance(x, y)
		if d < best {
			best = d
			found = true
		}
	}
	if !found || best > c.cutoffRadius {
		return reading{kind: readingOutOfRange}
	}
	return reading{kind: readingFinite, value: best}
}

// Scan returns the minimum Euclidean distance from (x, y) to any alive
// asteroid: NaN if the sticky impact flag is set, +Inf if no alive
// asteroid is within the cut-off radius, otherwise the finite minimum
// distance. Scan is a pure observation; it never mutates state.
func (c *AsteroidCluster) Scan(x, y float64) float64 {
	return c.scan(x, y).toScalar()
}

// Intercept marks the first alive asteroid (in insertion order) within
// tolerance of (x, y) as no longer alive. At most one asteroid dies per
// call.
func (c *AsteroidCluster) Intercept(x, y float64) {
	for _, a := range c.asteroids {
		if a.Alive() && a.Intercept(x, y) {
			return
		}
	}
}

// ClusterStats is a non-core diagnostic summary of the cluster's
// currently alive asteroids.
type ClusterStats struct {
	AliveCount int
	// DistanceStdDev is the standard deviation, across alive asteroids, of
	// their cached distance to the origin scanner (x=0, y=0). It has no
	// bearing on any core invariant; it exists to give callers (the
	// defence controller's diagnostic logging) something informative to
	// report about how spread out the swarm currently is.
	DistanceStdDev float64
}

// Stats computes ClusterStats over the currently alive asteroids. Like
// Scan, it is a pure observation.
func (c *AsteroidCluster) Stats() ClusterStats {
	var distances []float64
	for _, a := range c.asteroids {
		if a.Alive() {
			distances = append(distances, a.Distance(0, 0))
		}
	}
	s := ClusterStats{AliveCount: len(distances)}
	if len(distances) > 1 {
		s.DistanceStdDev = stat.StdDev(distances, nil)
	}
	return s
}
