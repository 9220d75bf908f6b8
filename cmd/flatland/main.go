// Command flatland runs a single Flatland Defence scenario to completion
// and reports whether the cluster was cleared or suffered an impact.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/banshee-data/flatland-defence/internal/config"
	"github.com/banshee-data/flatland-defence/internal/flatland"
	"github.com/banshee-data/flatland-defence/internal/telemetry"
)

var (
	scenarioFile = flag.String("scenario", "", "path to a JSON scenario file (required)")
	configFile   = flag.String("config", config.DefaultConfigPath, "path to JSON tuning configuration file")
)

// scenario is the on-disk shape of a defence run: a set of asteroid
// trajectories (leading-first polynomial coefficients for x(t) and y(t))
// and the scanner positions defending against them.
type scenario struct {
	Asteroids []struct {
		PolyX []float64 `json:"poly_x"`
		PolyY []float64 `json:"poly_y"`
	} `json:"asteroids"`
	Scanners []float64 `json:"scanners"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario JSON: %w", err)
	}
	return &s, nil
}

func run() error {
	flag.Parse()
	if *scenarioFile == "" {
		return fmt.Errorf("missing required -scenario flag")
	}

	tuning, err := config.LoadTuningConfig(*configFile)
	if err != nil {
		telemetry.Logf("flatland: using default tuning (%v)", err)
		tuning = config.EmptyTuningConfig()
	}

	s, err := loadScenario(*scenarioFile)
	if err != nil {
		return err
	}

	cluster := flatland.NewAsteroidCluster(tuning.GetClusterCapacity(), tuning.GetTolerance())
	cluster.SetCutoffRadius(tuning.GetCutoffRadius())
	for _, a := range s.Asteroids {
		px, err := flatland.NewPolynomial(a.PolyX)
		if err != nil {
			return fmt.Errorf("invalid asteroid x-polynomial: %w", err)
		}
		py, err := flatland.NewPolynomial(a.PolyY)
		if err != nil {
			return fmt.Errorf("invalid asteroid y-polynomial: %w", err)
		}
		if err := cluster.AddAsteroid(px, py); err != nil {
			return fmt.Errorf("failed to add asteroid: %w", err)
		}
	}
	scanners := flatland.NewScannerArray(s.Scanners)

	if err := flatland.ProtectWithLimit(cluster, scanners, tuning.GetMaxIterations()); err != nil {
		return err
	}

	switch {
	case cluster.Cleared():
		telemetry.Logf("flatland: scenario cleared, no impact")
	case cluster.Impact():
		telemetry.Logf("flatland: scenario ended in impact")
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		telemetry.Logf("flatland: %v", err)
		os.Exit(1)
	}
}
