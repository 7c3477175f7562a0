package cost

import "math"

// DefaultMinVariance floors the per-segment variance of Normal so that
// constant or single-sample segments keep a finite cost.
const DefaultMinVariance = 1e-8

// Normal is the Gaussian negative log-likelihood with the segment's own
// maximum-likelihood mean and variance (changes in mean and/or variance):
//
//	C(s, e) = k·(ln(2π·σ²) + 1),  k = e − s,  σ² = max(scatter/k, MinVariance).
//
// A single-sample segment always sits on the floor, so with a small
// MinVariance a leading one-sample segment is very cheap; raise MinVariance
// to the noise scale when that matters.
type Normal struct {
	m moments

	// MinVariance floors σ²; set by NewNormal to DefaultMinVariance.
	MinVariance float64
}

// NewNormal precomputes prefix sums for data.
func NewNormal(data []float64) (*Normal, error) {
	if err := checkSeries(data); err != nil {
		return nil, err
	}

	return &Normal{m: newCentredMoments(data), MinVariance: DefaultMinVariance}, nil
}

// Len returns the number of samples.
func (c *Normal) Len() int { return c.m.n }

// Cost returns the Gaussian cost of data[start:end).
func (c *Normal) Cost(start, end int) (float64, error) {
	if err := checkInterval(start, end, c.m.n); err != nil {
		return 0, err
	}

	k := float64(end - start)
	variance := math.Max(c.m.scatter(start, end)/k, c.MinVariance)

	return k * (math.Log(2*math.Pi*variance) + 1), nil
}
