// Package validate compares a simulated trajectory against a reference
// one: a metric-by-metric tolerance check and an overall shape
// comparison via R-squared on time-fraction-aligned samples.
package validate

// Sample is the minimal shape a trajectory point needs to expose for
// comparison: a time fraction through the flight and a position. The
// root golftraj package adapts its own TrajectoryPoint to this shape
// rather than validate importing golftraj, avoiding an import cycle
// (golftraj already imports validate's sibling package integrator, and
// imports validate itself for the top-level Validate convenience
// wrapper).
type Sample struct {
	TimeFraction float64 // 0 at launch, 1 at landing
	X, Y, Z      float64
}

// interpolateAt returns the linearly interpolated sample at time
// fraction f within samples, which must be sorted by TimeFraction and
// span [0, 1]. It mirrors cprevallet/baseballgui's
// correctFinalPosition fractional interpolation, generalized from a
// single altitude target to an arbitrary time fraction on any axis.
func interpolateAt(samples []Sample, f float64) Sample {
	if len(samples) == 0 {
		return Sample{}
	}
	if f <= samples[0].TimeFraction {
		return samples[0]
	}
	last := samples[len(samples)-1]
	if f >= last.TimeFraction {
		return last
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].TimeFraction >= f {
			a, b := samples[i-1], samples[i]
			span := b.TimeFraction - a.TimeFraction
			if span <= 0 {
				return a
			}
			t := (f - a.TimeFraction) / span
			return Sample{
				TimeFraction: f,
				X:            a.X + t*(b.X-a.X),
				Y:            a.Y + t*(b.Y-a.Y),
				Z:            a.Z + t*(b.Z-a.Z),
			}
		}
	}
	return last
}

// resample returns n samples of series evenly spaced in time fraction
// across [0, 1], via interpolateAt.
func resample(series []Sample, n int) []Sample {
	if n <= 1 {
		return []Sample{interpolateAt(series, 0)}
	}
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		out[i] = interpolateAt(series, f)
	}
	return out
}
