// Package config supplies the numeric constants of the simulation that
// are not passed in as explicit arguments: integration step bounds,
// tolerances, validation thresholds, and physical constants such as
// gravity and the gas constant of air. Loading is lazy and
// mutex-guarded and never panics for want of a config file: every
// value has a built-in default, and an optional GOLFTRAJ_CONFIG
// directory (read once via viper) may override most of them (see load
// for the keys). Simulate and Validate read it for tuning knobs; the
// atmosphere and force models read it for their physical constants.
package config

import (
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable constant used outside of the explicit
// BallProperties/Environment arguments.
type Config struct {
	// Integration step control.
	DtMin                  time.Duration
	DtMax                  time.Duration
	PositionTolerance      float64 // meters, τ in 
	TMax                   time.Duration
	MaxBisectionIterations int
	ImpactEpsilon          float64 // meters, |y| convergence target

	// Physical constants.
	Gravity              float64 // m/s^2
	LapseRate            float64 // K/m
	SeaLevelTemperatureK float64
	GasConstantAir       float64 // J/(kg*K)
	HumidityMaxReduction float64 // fractional density reduction at saturation

	// Validation comparator defaults.
	MetricRelativeTolerance float64
	SpinRateTolerance       float64
	WarningFraction         float64 // fraction of threshold that triggers a warning
	ShapeRSquaredThreshold  float64
	StrictRSquaredThreshold float64
	ShapeSampleCount        int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DtMin:                  100 * time.Microsecond,
		DtMax:                  1 * time.Millisecond,
		PositionTolerance:      1e-6,
		TMax:                   60 * time.Second,
		MaxBisectionIterations: 20,
		ImpactEpsilon:          1e-6,

		Gravity:              9.81,
		LapseRate:            0.0065,
		SeaLevelTemperatureK: 288.15,
		GasConstantAir:       287.058,
		HumidityMaxReduction: 0.016,

		MetricRelativeTolerance: 0.20,
		SpinRateTolerance:       0.20,
		WarningFraction:         0.80,
		ShapeRSquaredThreshold:  0.25,
		StrictRSquaredThreshold: 0.95,
		ShapeSampleCount:        50,
	}
}

var (
	mu     sync.Mutex
	loaded bool
	cached Config
)

// Current returns the process-wide configuration, loading it from
// GOLFTRAJ_CONFIG (if set) the first time it is requested and caching
// the result thereafter, defaulting rather than panicking when no
// override is present.
func Current() Config {
	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return cached
	}
	cached = load()
	loaded = true
	return cached
}

// Reset clears the cached configuration; intended for tests that need
// to exercise Current() against a different GOLFTRAJ_CONFIG directory.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = false
}

func load() Config {
	cfg := Default()
	dir := os.Getenv("GOLFTRAJ_CONFIG")
	if dir == "" {
		return cfg
	}
	v := viper.New()
	v.SetConfigName("golftraj")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		// No override file present where the caller pointed us: fall
		// back to defaults rather than failing the simulation.
		return cfg
	}
	applyOverride(v, "integrator.dt_min_seconds", func(f float64) { cfg.DtMin = durationFromSeconds(f) })
	applyOverride(v, "integrator.dt_max_seconds", func(f float64) { cfg.DtMax = durationFromSeconds(f) })
	applyOverride(v, "integrator.position_tolerance", func(f float64) { cfg.PositionTolerance = f })
	applyOverride(v, "integrator.t_max_seconds", func(f float64) { cfg.TMax = durationFromSeconds(f) })
	applyOverride(v, "integrator.impact_epsilon", func(f float64) { cfg.ImpactEpsilon = f })
	applyOverride(v, "physics.gravity", func(f float64) { cfg.Gravity = f })
	applyOverride(v, "physics.lapse_rate", func(f float64) { cfg.LapseRate = f })
	applyOverride(v, "physics.humidity_max_reduction", func(f float64) { cfg.HumidityMaxReduction = f })
	applyOverride(v, "validate.metric_relative_tolerance", func(f float64) { cfg.MetricRelativeTolerance = f })
	applyOverride(v, "validate.spin_rate_tolerance", func(f float64) { cfg.SpinRateTolerance = f })
	applyOverride(v, "validate.shape_r_squared_threshold", func(f float64) { cfg.ShapeRSquaredThreshold = f })
	applyOverride(v, "validate.strict_r_squared_threshold", func(f float64) { cfg.StrictRSquaredThreshold = f })
	if n := v.GetInt("integrator.max_bisection_iterations"); n > 0 {
		cfg.MaxBisectionIterations = n
	}
	if n := v.GetInt("validate.shape_sample_count"); n > 0 {
		cfg.ShapeSampleCount = n
	}
	return cfg
}

func applyOverride(v *viper.Viper, key string, set func(float64)) {
	if v.IsSet(key) {
		set(v.GetFloat64(key))
	}
}

func durationFromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
