package validate

import (
	"fmt"
	"math"
)

// MetricSet is a named collection of scalar trajectory metrics (carry
// distance, max height, flight time, ...). It is a map rather than a
// fixed struct so this package stays independent of golftraj's
// TrajectoryMetrics type and avoids an import cycle; golftraj's own
// Validate wrapper is responsible for the conversion.
type MetricSet map[string]float64

// MetricComparison is the per-metric outcome of comparing a simulated
// value against a reference one.
type MetricComparison struct {
	Name            string
	Simulated       float64
	Reference       float64
	RelativeError   float64 // |sim-ref| / max(|ref|, epsilon)
	Tolerance       float64
	WithinTolerance bool
	WithinWarnRange bool // past WarningFraction*tolerance; also true when outside tolerance
}

func (c MetricComparison) String() string {
	status := "ok"
	if !c.WithinTolerance {
		status = "FAIL"
	} else if c.WithinWarnRange {
		status = "warn"
	}
	return fmt.Sprintf("%s: sim=%.4f ref=%.4f relerr=%.4f (tol=%.4f) [%s]",
		c.Name, c.Simulated, c.Reference, c.RelativeError, c.Tolerance, status)
}

// CompareMetrics checks every metric present in both simulated and
// reference against relativeTolerance, flagging values that exceed
// warnFraction*relativeTolerance as WithinWarnRange even when they
// still pass. perMetricTolerance overrides relativeTolerance for any
// metric named in it (e.g. spin rate's own configurable threshold);
// it may be nil. Metrics present in only one set are skipped since
// there is nothing to compare them against.
func CompareMetrics(simulated, reference MetricSet, relativeTolerance, warnFraction float64, perMetricTolerance map[string]float64) []MetricComparison {
	const epsilon = 1e-9

	names := make([]string, 0, len(reference))
	for name := range reference {
		if _, ok := simulated[name]; ok {
			names = append(names, name)
		}
	}
	sortStrings(names)

	out := make([]MetricComparison, 0, len(names))
	for _, name := range names {
		sim := simulated[name]
		ref := reference[name]
		denom := math.Max(math.Abs(ref), epsilon)
		relErr := math.Abs(sim-ref) / denom

		tolerance := relativeTolerance
		if t, ok := perMetricTolerance[name]; ok {
			tolerance = t
		}

		out = append(out, MetricComparison{
			Name:            name,
			Simulated:       sim,
			Reference:       ref,
			RelativeError:   relErr,
			Tolerance:       tolerance,
			WithinTolerance: relErr <= tolerance,
			WithinWarnRange: relErr > tolerance*warnFraction,
		})
	}
	return out
}

// sortStrings is a tiny insertion sort: names lists are always short
// (a handful of metric names), so pulling in sort for this alone isn't
// worth it.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
