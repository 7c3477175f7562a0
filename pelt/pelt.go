package pelt

import (
	"math"

	"github.com/sourcegraph/conc/iter"
)

// PELT — Pruned Exact Linear Time changepoint detection
//
// Algorithm Outline:
//  1. Let n = len(data), m = MinSize. Allocate F[0..n], back[0..n].
//     F[0] = -penalty, R = {0}.
//  2. For t = 1..n:
//     F[t]    = min_{s ∈ R} F[s] + cost(s,t) + penalty
//     back[t] = argmin (ties → first s in R)
//     u = t-m+1 is the candidate admissible from t+1 on. If u > 0:
//     R = { s ∈ R : F[s] + cost(s,u) < F[u] } ∪ {u}
//  3. Backtrack from back[n] to 0 (see backtrack).
//
// Candidate 0 is live from the start, so the leading segment [0,t) may be
// shorter than m; every later segment has at least m samples. With the
// default m = 2 a leading single-sample segment is admissible and candidate 1
// enters R after t = 2.
//
// Pruning compares against u, the candidate being appended, so every dropped
// s is dominated by a live candidate for every later position whenever
// cost(s,T) ≥ cost(s,u) + cost(u,T). With m = 1 the rule reads
// F[s] + cost(s,t) ≥ F[t] and the appended candidate is t.
//
// Complexity:
//
//	Time   = O(n) expected for costs satisfying the condition above, O(n²) worst case
//	Memory = O(n)

// DefaultPenalty returns ln(n), the BIC-style penalty used when none is given.
func DefaultPenalty(n int) float64 {
	return math.Log(float64(n))
}

// Changepoints returns the ascending changepoint list of the optimal
// segmentation of data under cost. The list always starts with 0; segment i
// spans [cps[i], cps[i+1]) and the last one ends at len(data).
//
// Example:
//
//	l2, _ := cost.NewL2(data)
//	cps, err := pelt.Changepoints(data, l2, pelt.WithPenalty(3))
func Changepoints(data []float64, c Cost, opts ...Option) ([]int, error) {
	res, err := Run(data, c, opts...)
	if err != nil {
		return nil, err
	}

	return res.Changepoints, nil
}

// Run executes PELT and returns the full Result (changepoints, F table and
// raw back-pointers).
//
// Errors:
//   - ErrInvalidInput           — bad series, nil cost or invalid option.
//   - *CostEvaluationError      — cost failed or returned NaN/±Inf (matches ErrCostEvaluation).
//   - ctx.Err()                 — the context from WithContext was cancelled.
func Run(data []float64, c Cost, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	penalty, err := validate(data, c, &cfg)
	if err != nil {
		return nil, err
	}

	n := len(data)
	s := newSolver(n, c, penalty, cfg)
	if err = s.forward(); err != nil {
		return nil, err
	}

	return &Result{
		Changepoints: backtrack(s.back, n),
		Cost:         s.f,
		Back:         s.back,
		Penalty:      penalty,
		N:            n,
	}, nil
}

// solver owns the DP state of one run.
type solver struct {
	n       int
	cost    Cost
	penalty float64
	opts    Options

	f    []float64 // F
	back []int
	live []int     // R, ascending
	vals []float64 // F[s]+cost(s,end) aligned with live
}

func newSolver(n int, c Cost, penalty float64, opts Options) *solver {
	f := make([]float64, n+1)
	back := make([]int, n+1)
	f[0] = -penalty

	return &solver{
		n:       n,
		cost:    c,
		penalty: penalty,
		opts:    opts,
		f:       f,
		back:    back,
		live:    []int{0},
	}
}

// forward fills f and back for positions 1..n.
func (s *solver) forward() error {
	for t := 1; t <= s.n; t++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := s.relax(t); err != nil {
			return err
		}
		if err := s.prune(t); err != nil {
			return err
		}
		if s.opts.OnStep != nil {
			s.opts.OnStep(Step{
				T:     t,
				Best:  s.back[t],
				Value: s.f[t],
				Live:  append([]int(nil), s.live...),
			})
		}
	}

	return nil
}

// relax computes F[t] and back[t] over the live candidates.
func (s *solver) relax(t int) error {
	vals, err := s.evaluate(t)
	if err != nil {
		return err
	}

	best := 0
	bestVal := vals[0] + s.penalty
	for i := 1; i < len(vals); i++ {
		if v := vals[i] + s.penalty; v < bestVal {
			best, bestVal = i, v
		}
	}
	s.f[t] = bestVal
	s.back[t] = s.live[best]

	return nil
}

// prune drops dominated candidates and appends u = t-MinSize+1.
func (s *solver) prune(t int) error {
	u := t - s.opts.MinSize + 1
	if u <= 0 {
		return nil
	}
	if !s.opts.Pruning {
		s.live = append(s.live, u)

		return nil
	}

	vals := s.vals
	if u != t {
		var err error
		if vals, err = s.evaluate(u); err != nil {
			return err
		}
	}

	kept := s.live[:0]
	for i, cand := range s.live {
		if vals[i] < s.f[u] {
			kept = append(kept, cand)

			continue
		}
		if s.opts.OnPrune != nil {
			s.opts.OnPrune(t, cand)
		}
	}
	s.live = append(kept, u)

	return nil
}

// evaluate returns F[s]+cost(s,end) for every live s, in order.
// The returned slice is reused by the next call.
func (s *solver) evaluate(end int) ([]float64, error) {
	s.vals = s.vals[:0]
	if s.opts.Workers > 1 && len(s.live) > 1 {
		return s.evaluateParallel(end)
	}

	for _, start := range s.live {
		v, err := s.segment(start, end)
		if err != nil {
			return nil, err
		}
		s.vals = append(s.vals, s.f[start]+v)
	}

	return s.vals, nil
}

type evaluation struct {
	value float64
	err   error
}

// evaluateParallel fans the cost calls out to at most Workers goroutines.
// The reduction stays in candidate order, so the first failing candidate's
// error is reported, as in the sequential path.
func (s *solver) evaluateParallel(end int) ([]float64, error) {
	mapper := iter.Mapper[int, evaluation]{MaxGoroutines: s.opts.Workers}
	evals := mapper.Map(s.live, func(start *int) evaluation {
		v, err := s.segment(*start, end)

		return evaluation{value: v, err: err}
	})

	for i, e := range evals {
		if e.err != nil {
			return nil, e.err
		}
		s.vals = append(s.vals, s.f[s.live[i]]+e.value)
	}

	return s.vals, nil
}

// segment calls the cost and enforces a finite result.
func (s *solver) segment(start, end int) (float64, error) {
	v, err := s.cost.Cost(start, end)
	if err != nil {
		return 0, &CostEvaluationError{Start: start, End: end, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &CostEvaluationError{Start: start, End: end, Value: v}
	}

	return v, nil
}
