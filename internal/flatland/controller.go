package flatland

import (
	"math"

	"github.com/banshee-data/flatland-defence/internal/telemetry"
	"gonum.org/v1/gonum/stat"
)

// DefaultMaxIterations is the fallback iteration cap used by Protect when
// the caller does not supply one via ProtectWithLimit. It bounds the
// runaway case where no asteroid ever clears or impacts.
const DefaultMaxIterations = 4096

// Protect drives cluster and scanners through the defence loop until the
// cluster is cleared or an impact is observed, using DefaultMaxIterations
// as its iteration cap.
func Protect(cluster *AsteroidCluster, scanners *ScannerArray) error {
	return ProtectWithLimit(cluster, scanners, DefaultMaxIterations)
}

// ProtectWithLimit is Protect with an explicit iteration cap, typically
// sourced from internal/config's tuning configuration.
func ProtectWithLimit(cluster *AsteroidCluster, scanners *ScannerArray, maxIterations int) error {
	for iteration := 0; iteration < maxIterations; iteration++ {
		if cluster.Cleared() {
			stats := cluster.Stats()
			telemetry.Logf("flatland: cluster %s cleared after %d iterations (alive=%d stddev=%.3f)",
				cluster.ID(), iteration, stats.AliveCount, stats.DistanceStdDev)
			return nil
		}

		distances := scanners.Scan(cluster)
		if anyNaN(distances) {
			telemetry.Logf("flatland: cluster %s reported impact at iteration %d", cluster.ID(), iteration)
			return nil
		}

		spread, tight := readingSpread(distances)
		x, y, found := locateTarget(scanners.Positions(), distances, cluster.Tolerance())
		if found {
			telemetry.Logf("flatland: cluster %s targeting (%.3f, %.3f) at iteration %d (spread=%.3f tight=%v)",
				cluster.ID(), x, y, iteration, spread, tight)
			cluster.Intercept(x, y)
		} else {
			telemetry.Logf("flatland: cluster %s found no intercept target at iteration %d (spread=%.3f tight=%v)",
				cluster.ID(), iteration, spread, tight)
		}

		cluster.Update()
	}

	if cluster.Cleared() || cluster.Impact() {
		return nil
	}
	return ErrUnableToClear
}

// readingSpread computes the standard deviation, via gonum/stat, of the
// in-range (finite) entries of distances - a diagnostic the defence
// controller logs on each iteration; it does not influence which target
// locateTarget picks. tight reports whether at least two readings are in
// range; when it is false, spread is returned as 0 and is meaningless.
func readingSpread(distances []float64) (spread float64, tight bool) {
	var inRange []float64
	for _, d := range distances {
		if !math.IsInf(d, 1) && !math.IsNaN(d) {
			inRange = append(inRange, d)
		}
	}
	if len(inRange) < 2 {
		return 0, false
	}
	return stat.StdDev(inRange, nil), true
}

func anyNaN(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// locateTarget implements the multi-asteroid localisation policy: try
// every contiguous triple of scanners, skipping any triple where a
// reading is out of range, and accept the first triple whose solution
// cross-checks. If no triple succeeds, fall back to firing directly
// overhead of the scanner reporting the smallest finite distance.
func locateTarget(positions, distances []float64, tolerance float64) (x, y float64, ok bool) {
	n := len(positions)
	for a := 0; a+2 < n; a++ {
		b, c := a+1, a+2
		if math.IsInf(distances[a], 1) || math.IsInf(distances[b], 1) || math.IsInf(distances[c], 1) {
			continue
		}
		if x, y, ok := localize(positions, distances, a, b, c, tolerance); ok {
			return x, y, true
		}
	}

	minIdx := -1
	for i, d := range distances {
		if math.IsInf(d, 1) {
			continue
		}
		if minIdx == -1 || d < distances[minIdx] {
			minIdx = i
		}
	}
	if minIdx == -1 {
		return 0, 0, false
	}
	return positions[minIdx], distances[minIdx], true
}
