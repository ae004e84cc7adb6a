package golftraj

import (
	"fmt"

	"github.com/rhwilloughby/golftraj/config"
	"github.com/rhwilloughby/golftraj/validate"
)

// ValidationCase is a single flight to simulate and check against
// expectations: either an expected metric set, an expected full
// trajectory (enabling the shape comparison too), or both. At least one
// of the two must be present, or there is nothing to check the
// simulation against.
type ValidationCase struct {
	Initial     BallState
	Properties  BallProperties
	Environment Environment

	ExpectedMetrics    *TrajectoryMetrics
	ExpectedTrajectory *Trajectory
}

// Validate reports whether c is well-formed enough to run.
func (c ValidationCase) Validate() error {
	if c.ExpectedMetrics == nil && c.ExpectedTrajectory == nil {
		return newError(CodeInvalidInput, "validation case requires expected metrics or an expected trajectory", nil)
	}
	return nil
}

// ValidationResult is the outcome of running one ValidationCase: the
// trajectory actually simulated, the per-metric and shape comparisons
// against whatever expectations the case supplied, and the resulting
// error/warning lists. IsValid holds iff Errors is empty; Warnings
// never invalidate a result.
type ValidationResult struct {
	ComputedTrajectory Trajectory
	Metrics            []validate.MetricComparison
	Shape              *validate.ShapeResult // nil when the case has no expected trajectory to compare shapes against
	Errors             []*Error              // each CodeValidationShortfall
	Warnings           []*Error              // each CodeValidationShortfall, inside WarnFraction of its threshold
	IsValid            bool
}

// Validate simulates c.Initial/c.Properties/c.Environment and compares
// the result against c's expectations, returning a ValidationResult
// that never surfaces a comparison mismatch as a Go error -- only a
// malformed case or a failed simulation does. It is the package's
// single validation entry point (spec's `validate(case) ->
// ValidationResult`).
func Validate(c ValidationCase) (ValidationResult, error) {
	if err := c.Validate(); err != nil {
		return ValidationResult{}, err
	}

	computed, err := Simulate(c.Initial, c.Properties, c.Environment)
	if err != nil {
		return ValidationResult{}, err
	}

	simMetrics, err := ExtractMetrics(computed)
	if err != nil {
		return ValidationResult{}, err
	}

	var refMetrics TrajectoryMetrics
	haveTrajectory := c.ExpectedTrajectory != nil
	if c.ExpectedMetrics != nil {
		refMetrics = *c.ExpectedMetrics
	} else {
		refMetrics, err = ExtractMetrics(*c.ExpectedTrajectory)
		if err != nil {
			return ValidationResult{}, err
		}
	}

	cfg := config.Current()
	metrics := validate.CompareMetrics(
		toMetricSet(simMetrics), toMetricSet(refMetrics),
		cfg.MetricRelativeTolerance, cfg.WarningFraction,
		map[string]float64{"spin_rate": cfg.SpinRateTolerance},
	)

	var shape *validate.ShapeResult
	shapePass := true
	if haveTrajectory {
		s := validate.CompareShape(toSamples(computed), toSamples(*c.ExpectedTrajectory), cfg.ShapeSampleCount)
		shape = &s
		shapePass = s.RSquared >= cfg.ShapeRSquaredThreshold
	}

	var errs, warnings []*Error
	for _, m := range metrics {
		switch {
		case !m.WithinTolerance:
			errs = append(errs, newError(CodeValidationShortfall, fmt.Sprintf("metric %q out of tolerance: %s", m.Name, m), nil))
		case m.WithinWarnRange:
			warnings = append(warnings, newError(CodeValidationShortfall, fmt.Sprintf("metric %q nearing tolerance: %s", m.Name, m), nil))
		}
	}
	if haveTrajectory && !shapePass {
		errs = append(errs, newError(CodeValidationShortfall, fmt.Sprintf("trajectory shape R^2=%.4f below threshold %.4f", shape.RSquared, cfg.ShapeRSquaredThreshold), nil))
	}

	return ValidationResult{
		ComputedTrajectory: computed,
		Metrics:            metrics,
		Shape:              shape,
		Errors:             errs,
		Warnings:           warnings,
		IsValid:            len(errs) == 0,
	}, nil
}

func toSamples(t Trajectory) []validate.Sample {
	duration := t.Duration()
	out := make([]validate.Sample, len(t.Points))
	for i, p := range t.Points {
		frac := 0.0
		if duration > 0 {
			frac = p.Time / duration
		}
		out[i] = validate.Sample{
			TimeFraction: frac,
			X:            p.State.Position.X,
			Y:            p.State.Position.Y,
			Z:            p.State.Position.Z,
		}
	}
	return out
}

func toMetricSet(m TrajectoryMetrics) validate.MetricSet {
	return validate.MetricSet{
		"carry_distance":   m.CarryDistance,
		"total_distance":   m.TotalDistance,
		"max_height":       m.MaxHeight,
		"flight_time":      m.FlightTime,
		"launch_angle":     m.LaunchAngle,
		"launch_direction": m.LaunchDirection,
		"launch_speed":     m.LaunchSpeed,
		"landing_angle":    m.LandingAngle,
		"landing_speed":    m.LandingSpeed,
		"spin_rate":        m.SpinRate,
	}
}
