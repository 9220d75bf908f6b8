package flatland

import (
	"math"

	"github.com/google/uuid"
)

// Asteroid is a moving point in y > 0 following two independent
// polynomial trajectories, x(t) and y(t), in an integer local clock t.
//
// The cached position is only meaningful while alive is true; once an
// asteroid is intercepted, its position is frozen and no longer advanced.
type Asteroid struct {
	id       uuid.UUID
	polyX    Polynomial
	polyY    Polynomial
	tolerance float64
	clock    int64
	x, y     float64
	alive    bool
}

// newAsteroid constructs an asteroid at the given starting clock value
// (clusters pass their current clock so mid-game additions stay in
// lock-step). polyX and polyY are already owned, immutable copies - the
// caller (AsteroidCluster.AddAsteroid) is responsible for not aliasing
// caller-owned storage.
func newAsteroid(polyX, polyY Polynomial, tolerance float64, startClock int64) *Asteroid {
	a := &Asteroid{
		id:        uuid.New(),
		polyX:     polyX,
		polyY:     polyY,
		tolerance: tolerance,
		clock:     startClock,
		alive:     true,
	}
	a.x = polyX.Evaluate(startClock)
	a.y = polyY.Evaluate(startClock)
	return a
}

// ID returns the asteroid's identity, used only for log correlation.
func (a *Asteroid) ID() uuid.UUID { return a.id }

// Alive reports whether the asteroid has not yet been intercepted.
func (a *Asteroid) Alive() bool { return a.alive }

// Position returns the cached (x, y) from the last evaluation. Its value
// is only meaningful while Alive() is true.
func (a *Asteroid) Position() (float64, float64) { return a.x, a.y }

// Clock returns the asteroid's local clock.
func (a *Asteroid) Clock() int64 { return a.clock }

// Update advances the local clock by one step and re-evaluates both
// trajectory polynomials. It is a no-op on a dead asteroid.
func (a *Asteroid) Update() {
	if !a.alive {
		return
	}
	a.clock++
	a.x = a.polyX.Evaluate(a.clock)
	a.y = a.polyY.Evaluate(a.clock)
}

// Distance returns the Euclidean distance from the cached position to
// (x, y). Callers must not invoke this on a dead asteroid; the cluster
// skips dead asteroids rather than calling it.
func (a *Asteroid) Distance(x, y float64) float64 {
	dx := a.x - x
	dy := a.y - y
	return math.Sqrt(dx*dx + dy*dy)
}

// Intercept reports a hit when (x, y) is within tolerance of the cached
// position and the asteroid is still alive, comparing via the squared
// distance against tolerance^2 to avoid a square root. A hit transitions
// alive to false.
func (a *Asteroid) Intercept(x, y float64) bool {
	if !a.alive {
		return false
	}
	dx := a.x - x
	dy := a.y - y
	if dx*dx+dy*dy <= a.tolerance*a.tolerance {
		a.alive = false
		return true
	}
	return false
}

// Impacted reports whether the cached y has reached or crossed the
// ground line.
func (a *Asteroid) Impacted() bool {
	return a.y <= 0
}
