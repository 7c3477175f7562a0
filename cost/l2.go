package cost

// L2 is the mean-shift cost: the sum of squared deviations of the segment
// from its own mean,
//
//	C(s, e) = Σ x² − (Σ x)² / (e − s).
//
// Evaluated in O(1) from prefix sums of the mean-centred series.
type L2 struct {
	m moments
}

// NewL2 precomputes prefix sums for data.
func NewL2(data []float64) (*L2, error) {
	if err := checkSeries(data); err != nil {
		return nil, err
	}

	return &L2{m: newCentredMoments(data)}, nil
}

// Len returns the number of samples.
func (c *L2) Len() int { return c.m.n }

// Cost returns the L2 cost of data[start:end).
func (c *L2) Cost(start, end int) (float64, error) {
	if err := checkInterval(start, end, c.m.n); err != nil {
		return 0, err
	}

	return c.m.scatter(start, end), nil
}
