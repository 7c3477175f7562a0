package cost

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptySeries is returned by constructors given no samples.
	ErrEmptySeries = errors.New("cost: series is empty")

	// ErrNonFinite is returned by constructors given NaN or ±Inf samples.
	ErrNonFinite = errors.New("cost: series contains NaN or Inf")

	// ErrNegativeCount is returned by NewPoisson for negative samples.
	ErrNegativeCount = errors.New("cost: count series contains a negative value")

	// ErrBadInterval is returned by Cost when !(0 ≤ start < end ≤ n).
	ErrBadInterval = errors.New("cost: interval out of range")
)

// checkSeries rejects empty and non-finite input.
func checkSeries(data []float64) error {
	if len(data) == 0 {
		return ErrEmptySeries
	}
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: data[%d] = %v", ErrNonFinite, i, x)
		}
	}

	return nil
}

// checkInterval enforces 0 ≤ start < end ≤ n.
func checkInterval(start, end, n int) error {
	if start < 0 || end > n || start >= end {
		return fmt.Errorf("%w: [%d, %d) on %d samples", ErrBadInterval, start, end, n)
	}

	return nil
}

// moments holds prefix sums of x and x² with a leading zero, so the sums
// over [s, e) are sum[e]-sum[s].
type moments struct {
	n     int
	sum   []float64
	sumSq []float64
}

// newCentredMoments builds moments of data minus its mean. Scatter is
// shift-invariant, and centring keeps Σx² − (Σx)²/k from cancelling when the
// series carries a large offset.
func newCentredMoments(data []float64) moments {
	centred := make([]float64, len(data))
	copy(centred, data)
	floats.AddConst(-stat.Mean(data, nil), centred)

	return newMoments(centred)
}

func newMoments(data []float64) moments {
	n := len(data)
	sq := make([]float64, n)
	floats.MulTo(sq, data, data)

	m := moments{
		n:     n,
		sum:   make([]float64, n+1),
		sumSq: make([]float64, n+1),
	}
	floats.CumSum(m.sum[1:], data)
	floats.CumSum(m.sumSq[1:], sq)

	return m
}

// span returns length, Σx and Σx² over [start, end).
func (m moments) span(start, end int) (k, s, sq float64) {
	return float64(end - start), m.sum[end] - m.sum[start], m.sumSq[end] - m.sumSq[start]
}

// scatter is Σ(x-mean)² over [start, end), clamped at 0 against rounding.
func (m moments) scatter(start, end int) float64 {
	k, s, sq := m.span(start, end)
	if v := sq - s*s/k; v > 0 {
		return v
	}

	return 0
}
