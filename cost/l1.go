package cost

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// L1 is the robust location cost: the sum of absolute deviations of the
// segment from its median. Each call sorts a copy of the segment, so a
// call costs O(k log k) for a segment of length k.
type L1 struct {
	data []float64
}

// NewL1 keeps a private copy of data.
func NewL1(data []float64) (*L1, error) {
	if err := checkSeries(data); err != nil {
		return nil, err
	}

	return &L1{data: slices.Clone(data)}, nil
}

// Len returns the number of samples.
func (c *L1) Len() int { return len(c.data) }

// Cost returns the L1 cost of data[start:end).
func (c *L1) Cost(start, end int) (float64, error) {
	if err := checkInterval(start, end, len(c.data)); err != nil {
		return 0, err
	}

	seg := slices.Clone(c.data[start:end])
	slices.Sort(seg)
	median := stat.Quantile(0.5, stat.Empirical, seg, nil)

	var total float64
	for _, x := range seg {
		total += math.Abs(x - median)
	}

	return total, nil
}
