package flatland

import "errors"

// ErrCapacityExceeded is returned by AsteroidCluster.AddAsteroid when the
// cluster already holds its configured capacity of asteroids.
var ErrCapacityExceeded = errors.New("flatland: cluster capacity exceeded")

// ErrMalformedPolynomial is returned by NewPolynomial when given an empty
// coefficient sequence.
var ErrMalformedPolynomial = errors.New("flatland: polynomial requires at least one coefficient")

// ErrUnableToClear is returned by Protect when it exhausts its iteration
// cap without the cluster reporting either cleared or impact. Every
// scenario in this repository's test suite is expected to terminate well
// before the cap; seeing this error surface is a fatal defect, not a
// recoverable outcome.
var ErrUnableToClear = errors.New("flatland: defence controller failed to clear the cluster within its iteration cap")
