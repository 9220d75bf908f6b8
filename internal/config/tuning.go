// Package config loads the JSON-backed tuning parameters for a defence
// run: the shared interception tolerance, the scanner cut-off radius, the
// controller's iteration cap, and the cluster's capacity.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the canonical tuning defaults file, relative to the
// repository root.
const DefaultConfigPath = "config/tuning.defaults.json"

// TuningConfig is the root configuration for a defence run. Every field is
// optional; fields left nil fall back to the Get* defaults below, so a
// caller-supplied file only needs to override what it cares about.
type TuningConfig struct {
	Tolerance       *float64 `json:"tolerance,omitempty"`
	CutoffRadius    *float64 `json:"cutoff_radius,omitempty"`
	MaxIterations   *int     `json:"max_iterations,omitempty"`
	ClusterCapacity *int     `json:"cluster_capacity,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyTuningConfig returns a TuningConfig with every field nil.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The path must end
// in .json and the file must be under 1MB; fields omitted from the file
// keep their defaults, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical tuning defaults, searching from
// the current directory up through a handful of parent directories. Intended
// for test setup; panics if the defaults file cannot be found.
func MustLoadDefaultConfig() *TuningConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,
		"../../../" + DefaultConfigPath,
		"../../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadTuningConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that any set values are physically sensible.
func (c *TuningConfig) Validate() error {
	if c.Tolerance != nil && *c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %f", *c.Tolerance)
	}
	if c.CutoffRadius != nil && *c.CutoffRadius <= 0 {
		return fmt.Errorf("cutoff_radius must be positive, got %f", *c.CutoffRadius)
	}
	if c.MaxIterations != nil && *c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", *c.MaxIterations)
	}
	if c.ClusterCapacity != nil && *c.ClusterCapacity <= 0 {
		return fmt.Errorf("cluster_capacity must be positive, got %d", *c.ClusterCapacity)
	}
	return nil
}

// GetTolerance returns the configured tolerance or the default of 1.
func (c *TuningConfig) GetTolerance() float64 {
	if c.Tolerance == nil {
		return 1.0
	}
	return *c.Tolerance
}

// GetCutoffRadius returns the configured scanner cut-off radius or the
// default of 1000.
func (c *TuningConfig) GetCutoffRadius() float64 {
	if c.CutoffRadius == nil {
		return 1000.0
	}
	return *c.CutoffRadius
}

// GetMaxIterations returns the configured controller iteration cap or the
// default of 4096.
func (c *TuningConfig) GetMaxIterations() int {
	if c.MaxIterations == nil {
		return 4096
	}
	return *c.MaxIterations
}

// GetClusterCapacity returns the configured cluster capacity or the
// default of 64.
func (c *TuningConfig) GetClusterCapacity() int {
	if c.ClusterCapacity == nil {
		return 64
	}
	return *c.ClusterCapacity
}
