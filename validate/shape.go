package validate

import "gonum.org/v1/gonum/stat"

// ShapeResult reports how closely a simulated trajectory's shape
// matches a reference, independent of any single metric. RSquared is
// computed per axis against the reference as the "observed" series and
// averaged, since gonum/stat.RSquaredFrom expects a single response
// variable rather than a 3D curve.
type ShapeResult struct {
	RSquaredX float64
	RSquaredY float64
	RSquaredZ float64
	RSquared  float64 // mean of the three axes
}

// CompareShape resamples both series to sampleCount time-fraction-
// aligned points and computes R-squared per axis via
// gonum.org/v1/gonum/stat.RSquaredFrom: 1 - SSres/SStot against the
// reference mean.
func CompareShape(simulated, reference []Sample, sampleCount int) ShapeResult {
	sim := resample(simulated, sampleCount)
	ref := resample(reference, sampleCount)

	simX := make([]float64, sampleCount)
	simY := make([]float64, sampleCount)
	simZ := make([]float64, sampleCount)
	refX := make([]float64, sampleCount)
	refY := make([]float64, sampleCount)
	refZ := make([]float64, sampleCount)

	for i := range sim {
		simX[i], simY[i], simZ[i] = sim[i].X, sim[i].Y, sim[i].Z
		refX[i], refY[i], refZ[i] = ref[i].X, ref[i].Y, ref[i].Z
	}

	rx := rSquared(simX, refX)
	ry := rSquared(simY, refY)
	rz := rSquared(simZ, refZ)

	return ShapeResult{
		RSquaredX: rx,
		RSquaredY: ry,
		RSquaredZ: rz,
		RSquared:  (rx + ry + rz) / 3,
	}
}

// rSquared wraps gonum/stat.RSquaredFrom with the two guarantees the spec
// requires that the library call alone doesn't give: a constant
// reference series (SS_tot == 0) scores a perfect match instead of
// dividing by zero, and the result is clamped to [0, 1] since a
// wildly divergent shape can otherwise drive R^2 arbitrarily negative.
func rSquared(estimate, reference []float64) float64 {
	mean := meanOf(reference)
	ssTot := 0.0
	for _, v := range reference {
		d := v - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 1
	}
	r := stat.RSquaredFrom(estimate, reference, nil)
	return clampUnit(r)
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
