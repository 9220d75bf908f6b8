package main

import (
	"testing"

	"github.com/banshee-data/flatland-defence/internal/flatland"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarioSwarm(t *testing.T) {
	s, err := loadScenario("testdata/swarm.json")
	require.NoError(t, err)
	require.Len(t, s.Asteroids, 6)
	require.Len(t, s.Scanners, 5)
}

func TestScenarioEndToEnd(t *testing.T) {
	s, err := loadScenario("testdata/swarm.json")
	require.NoError(t, err)

	cluster := flatland.NewAsteroidCluster(len(s.Asteroids), 1)
	for _, a := range s.Asteroids {
		px, err := flatland.NewPolynomial(a.PolyX)
		require.NoError(t, err)
		py, err := flatland.NewPolynomial(a.PolyY)
		require.NoError(t, err)
		require.NoError(t, cluster.AddAsteroid(px, py))
	}
	scanners := flatland.NewScannerArray(s.Scanners)

	require.NoError(t, flatland.Protect(cluster, scanners))
	require.True(t, cluster.Cleared())
	require.False(t, cluster.Impact())
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := loadScenario("testdata/does-not-exist.json")
	require.Error(t, err)
}
