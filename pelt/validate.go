package pelt

import "fmt"

// validate checks the series, the cost and the collected options, in that
// order, and returns the penalty to use.
//
// Contract:
//   - a recorded option error wins (it is already wrapped in ErrInvalidInput);
//   - the series needs at least 2 samples and at least MinSize samples;
//   - the cost must be non-nil (including a nil CostFunc).
func validate(data []float64, c Cost, o *Options) (float64, error) {
	if o.err != nil {
		return 0, o.err
	}

	n := len(data)
	switch {
	case n == 0:
		return 0, fmt.Errorf("%w: series is empty", ErrInvalidInput)
	case n < 2:
		return 0, fmt.Errorf("%w: series needs at least 2 samples, got %d", ErrInvalidInput, n)
	case n < o.MinSize:
		return 0, fmt.Errorf("%w: series of %d samples is shorter than MinSize %d", ErrInvalidInput, n, o.MinSize)
	}

	if c == nil {
		return 0, fmt.Errorf("%w: cost is nil", ErrInvalidInput)
	}
	if fn, ok := c.(CostFunc); ok && fn == nil {
		return 0, fmt.Errorf("%w: cost is nil", ErrInvalidInput)
	}

	if o.penaltySet {
		return o.Penalty, nil
	}

	return DefaultPenalty(n), nil
}
