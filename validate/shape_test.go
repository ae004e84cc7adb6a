package validate

import "testing"

func lineSeries(n int, scale float64) []Sample {
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		out[i] = Sample{TimeFraction: f, X: scale * f, Y: scale * f * (1 - f), Z: 0}
	}
	return out
}

func TestCompareShapeIdenticalSeriesIsPerfect(t *testing.T) {
	series := lineSeries(20, 100)
	result := CompareShape(series, series, 10)
	if result.RSquared < 0.999 {
		t.Fatalf("expected near-perfect R^2 for identical series, got %v", result.RSquared)
	}
}

func TestCompareShapeDivergentSeriesScoresLow(t *testing.T) {
	reference := lineSeries(20, 100)
	divergent := lineSeries(20, 5) // much flatter arc
	result := CompareShape(divergent, reference, 10)
	if result.RSquared > 0.9 {
		t.Fatalf("expected a degraded R^2 for a very different shape, got %v", result.RSquared)
	}
}

func TestInterpolateAtClampsToEnds(t *testing.T) {
	series := lineSeries(10, 50)
	if got := interpolateAt(series, -1); got != series[0] {
		t.Fatalf("expected clamp to first sample, got %+v", got)
	}
	if got := interpolateAt(series, 2); got != series[len(series)-1] {
		t.Fatalf("expected clamp to last sample, got %+v", got)
	}
}
