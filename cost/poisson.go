package cost

import (
	"fmt"
	"math"
)

// Poisson is twice the Poisson negative log-likelihood of a count segment at
// its maximum-likelihood rate λ = S/k (the Σ ln x! term is dropped, it is the
// same for every segmentation):
//
//	C(s, e) = 2·(S − S·ln(S/k)),  S = Σ x,  k = e − s;  C = 0 when S = 0.
//
// Typical input: events per minute.
type Poisson struct {
	m moments
}

// NewPoisson precomputes prefix sums for non-negative count data.
func NewPoisson(data []float64) (*Poisson, error) {
	if err := checkSeries(data); err != nil {
		return nil, err
	}
	for i, x := range data {
		if x < 0 {
			return nil, fmt.Errorf("%w: data[%d] = %v", ErrNegativeCount, i, x)
		}
	}

	return &Poisson{m: newMoments(data)}, nil
}

// Len returns the number of samples.
func (c *Poisson) Len() int { return c.m.n }

// Cost returns the Poisson cost of data[start:end).
func (c *Poisson) Cost(start, end int) (float64, error) {
	if err := checkInterval(start, end, c.m.n); err != nil {
		return 0, err
	}

	k, s, _ := c.m.span(start, end)
	if s <= 0 {
		return 0, nil
	}

	return 2 * (s - s*math.Log(s/k)), nil
}
