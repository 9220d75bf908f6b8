package flatland

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S7: defence end-to-end swarm scenario.
func TestProtectSwarmScenario(t *testing.T) {
	c := NewAsteroidCluster(6, 1)
	for i := 0; i < 6; i++ {
		px := mustPoly(t, float64(2*i), 0)
		py := mustPoly(t, -20, float64(1001+100*i))
		require.NoError(t, c.AddAsteroid(px, py))
	}
	s := NewScannerArray([]float64{0, 100, 200, 300, 400})

	err := Protect(c, s)
	require.NoError(t, err)
	assert.True(t, c.Cleared())
	assert.False(t, c.Impact())
}

func TestProtectSingleStaticAsteroid(t *testing.T) {
	c := NewAsteroidCluster(1, 1)
	require.NoError(t, c.AddAsteroid(mustPoly(t, 100), mustPoly(t, 100)))
	s := NewScannerArray([]float64{0, 50, 100, 150, 200})

	err := Protect(c, s)
	require.NoError(t, err)
	assert.True(t, c.Cleared())
	assert.False(t, c.Impact())
}

func TestProtectReportsImpactWithoutError(t *testing.T) {
	// The asteroid stays far outside every scanner's cut-off radius, so it
	// can never be targeted, and its y drops to -2 after the first update.
	c := NewAsteroidCluster(1, 1)
	require.NoError(t, c.AddAsteroid(mustPoly(t, 5000), mustPoly(t, -3, 1)))
	s := NewScannerArray([]float64{0, 50, 100})

	err := Protect(c, s)
	require.NoError(t, err)
	assert.True(t, c.Impact())
	assert.False(t, c.Cleared())
}

func TestProtectWithLimitSurfacesUnableToClear(t *testing.T) {
	// An asteroid that never comes within the cut-off radius and never
	// dips to y <= 0 cannot be cleared or impacted within any cap.
	c := NewAsteroidCluster(1, 1)
	require.NoError(t, c.AddAsteroid(mustPoly(t, 5000), mustPoly(t, 5000)))
	s := NewScannerArray([]float64{0, 50, 100})

	err := ProtectWithLimit(c, s, 10)
	require.ErrorIs(t, err, ErrUnableToClear)
}

func TestLocalizeRecoversKnownPosition(t *testing.T) {
	positions := []float64{0, 50, 100, 150, 200}
	// asteroid at (100, 100); distances per S5.
	distances := []float64{141.4213562, 111.8033989, 100, 111.8033989, 141.4213562}

	x, y, ok := localize(positions, distances, 1, 2, 3, 1)
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1)
	assert.InDelta(t, 100, y, 1)
}

func TestLocalizeRejectsDegenerateTriple(t *testing.T) {
	positions := []float64{0, 0, 100}
	distances := []float64{100, 100, 141}
	_, _, ok := localize(positions, distances, 0, 1, 2, 1)
	assert.False(t, ok)
}

func TestLocateTargetFallsBackToNearestScanner(t *testing.T) {
	// Only one scanner has a finite reading - no triple can be formed, so
	// the fallback fires directly overhead of that scanner.
	positions := []float64{0, 100, 200}
	distances := []float64{math.Inf(1), 10, math.Inf(1)}

	x, y, ok := locateTarget(positions, distances, 1)
	require.True(t, ok)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 10.0, y)
}

func TestLocateTargetNoTargetWhenAllOutOfRange(t *testing.T) {
	positions := []float64{0, 100, 200}
	distances := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}

	_, _, ok := locateTarget(positions, distances, 1)
	assert.False(t, ok)
}

func TestReadingSpreadOfTightCluster(t *testing.T) {
	spread, tight := readingSpread([]float64{100, 101, 99, 100.5})
	require.True(t, tight)
	assert.Less(t, spread, 2.0)
}

func TestReadingSpreadIgnoresOutOfRangeAndImpactedEntries(t *testing.T) {
	spread, tight := readingSpread([]float64{100, math.Inf(1), math.NaN(), 100})
	require.True(t, tight)
	assert.InDelta(t, 0, spread, 1e-9)
}

func TestReadingSpreadNotTightWithFewerThanTwoReadings(t *testing.T) {
	spread, tight := readingSpread([]float64{math.Inf(1), 100, math.Inf(1)})
	assert.False(t, tight)
	assert.Equal(t, 0.0, spread)
}
