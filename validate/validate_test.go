package validate

import "testing"

func TestCompareIdenticalPasses(t *testing.T) {
	series := lineSeries(20, 100)
	metrics := MetricSet{"carry": 210, "height": 30}
	opts := Options{
		RelativeTolerance:       0.10,
		WarnFraction:            0.80,
		SampleCount:             10,
		ShapeRSquaredThreshold:  0.25,
		StrictRSquaredThreshold: 0.95,
	}

	result := Compare(series, series, metrics, metrics, opts)
	if !result.Passed {
		t.Fatalf("expected identical comparison to pass, got %+v", result)
	}
	if !result.Strict {
		t.Fatalf("expected identical comparison to pass strictly, got %+v", result)
	}
}

func TestCompareFailingMetricFailsOverall(t *testing.T) {
	series := lineSeries(20, 100)
	sim := MetricSet{"carry": 400}
	ref := MetricSet{"carry": 200}
	opts := Options{
		RelativeTolerance:      0.10,
		WarnFraction:           0.80,
		SampleCount:            10,
		ShapeRSquaredThreshold: 0.25,
	}

	result := Compare(series, series, sim, ref, opts)
	if result.Passed {
		t.Fatalf("expected a badly mismatched metric to fail the comparison, got %+v", result)
	}
}
