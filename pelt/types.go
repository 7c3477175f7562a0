package pelt

import (
	"errors"
	"fmt"
)

// Sentinel errors for PELT execution.
var (
	// ErrInvalidInput is returned when the series, the cost or an option
	// cannot describe a valid segmentation problem (n < 2, nil cost,
	// negative penalty, MinSize < 1, ...).
	ErrInvalidInput = errors.New("pelt: invalid input")

	// ErrCostEvaluation is matched (errors.Is) by every *CostEvaluationError.
	ErrCostEvaluation = errors.New("pelt: cost evaluation failed")
)

// Cost is the segment-cost capability injected by the caller.
//
// Cost(start, end) returns the fitting cost of data[start:end) treated as a
// single homogeneous segment. It must be deterministic and defined for every
// 0 ≤ start < end ≤ n. When WithWorkers(k>1) is used it is called from
// several goroutines at once and must not mutate shared state.
type Cost interface {
	Cost(start, end int) (float64, error)
}

// CostFunc adapts an ordinary function to the Cost interface.
type CostFunc func(start, end int) (float64, error)

// Cost calls f(start, end).
func (f CostFunc) Cost(start, end int) (float64, error) {
	return f(start, end)
}

// CostEvaluationError reports a failed or non-finite cost for one interval.
// The error returned by the cost itself (if any) is available via Unwrap.
type CostEvaluationError struct {
	Start int     // first index of the interval
	End   int     // exclusive end of the interval
	Value float64 // offending value when the cost returned NaN/±Inf
	Err   error   // error returned by the cost, nil for non-finite values
}

// Error implements error.
func (e *CostEvaluationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pelt: cost on [%d, %d) failed: %v", e.Start, e.End, e.Err)
	}

	return fmt.Sprintf("pelt: cost on [%d, %d) is not finite: %v", e.Start, e.End, e.Value)
}

// Unwrap returns the cost's own error.
func (e *CostEvaluationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrCostEvaluation) true.
func (e *CostEvaluationError) Is(target error) bool { return target == ErrCostEvaluation }

// Step describes the solver state right after a position has been processed.
//
//   - T     — position just processed (1..n).
//   - Best  — predecessor chosen for T (0 while T ≤ MinSize).
//   - Value — F[T].
//   - Live  — candidate set R after pruning and appending; a copy owned by the hook.
type Step struct {
	T     int
	Best  int
	Value float64
	Live  []int
}

// Segment is one half-open interval [Start, End) of the optimal partition.
// Cost is the segment cost recovered from the DP table (F[End]-F[Start]-penalty).
type Segment struct {
	Start int
	End   int
	Cost  float64
}

// Result holds the outcome of a PELT run.
type Result struct {
	// Changepoints is the ascending list of segment starts. It always begins
	// with 0 and every entry is < N; consecutive entries (plus N) delimit the
	// optimal segments.
	Changepoints []int

	// Cost is the DP table F of length N+1: Cost[0] = -Penalty and Cost[t] is
	// the minimal penalised cost of data[0:t).
	Cost []float64

	// Back is the raw per-position back-pointer array of length N+1:
	// Back[t] is the start of the last segment in the optimum for data[0:t).
	// Back[0] = 0 and Back[t] = 0 for t ≤ MinSize.
	Back []int

	// Penalty is the per-segment penalty actually used.
	Penalty float64

	// N is the length of the series.
	N int
}

// Total returns the optimal penalised cost of the whole series, F[N].
// It equals the sum of segment costs plus Penalty per interior changepoint.
func (r *Result) Total() float64 {
	return r.Cost[r.N]
}

// Segments expands Changepoints into the half-open intervals they delimit.
func (r *Result) Segments() []Segment {
	segs := make([]Segment, len(r.Changepoints))
	for i, start := range r.Changepoints {
		end := r.N
		if i+1 < len(r.Changepoints) {
			end = r.Changepoints[i+1]
		}
		segs[i] = Segment{
			Start: start,
			End:   end,
			Cost:  r.Cost[end] - r.Cost[start] - r.Penalty,
		}
	}

	return segs
}
