package validate

// Result is the full outcome of comparing a simulated trajectory
// against a reference one: per-metric comparisons plus the overall
// shape fit.
type Result struct {
	Metrics []MetricComparison
	Shape   ShapeResult
	Passed  bool // every metric within tolerance and shape above ShapeRSquaredThreshold
	Strict  bool // shape also above StrictRSquaredThreshold
}

// Options bundles the tunables a comparison needs, read from
// golftraj/config by the caller rather than this package (validate
// has no config dependency of its own, keeping it reusable against any
// pair of series/metric sets).
type Options struct {
	RelativeTolerance       float64
	WarnFraction            float64
	SampleCount             int
	ShapeRSquaredThreshold  float64
	StrictRSquaredThreshold float64
	// PerMetricTolerance overrides RelativeTolerance for specific
	// metric names (e.g. spin rate's own configurable threshold). May
	// be nil, in which case every metric uses RelativeTolerance.
	PerMetricTolerance map[string]float64
}

// Compare runs the full comparison pipeline: metric-by-metric
// tolerance checks plus an R-squared shape comparison, in one call.
// CompareMetrics and CompareShape are also usable on their own;
// golftraj.Validate calls those two directly.
func Compare(simSeries, refSeries []Sample, simMetrics, refMetrics MetricSet, opts Options) Result {
	metrics := CompareMetrics(simMetrics, refMetrics, opts.RelativeTolerance, opts.WarnFraction, opts.PerMetricTolerance)
	shape := CompareShape(simSeries, refSeries, opts.SampleCount)

	allMetricsPass := true
	for _, m := range metrics {
		if !m.WithinTolerance {
			allMetricsPass = false
			break
		}
	}

	return Result{
		Metrics: metrics,
		Shape:   shape,
		Passed:  allMetricsPass && shape.RSquared >= opts.ShapeRSquaredThreshold,
		Strict:  allMetricsPass && shape.RSquared >= opts.StrictRSquaredThreshold,
	}
}
