// Package pelt finds optimal changepoints in a one-dimensional series with
// the PELT algorithm (Killick, Fearnhead & Eckley, 2012).
//
// 🚀 What is PELT?
//
//	Given a segment cost C(s, e) and a per-segment penalty β, PELT returns
//	the partition of data[0:n) minimizing Σ C(segment) + β·(#segments − 1).
//	It is exact dynamic programming plus a pruning rule that drops candidate
//	changepoints which can never be optimal again, giving expected linear
//	time when the cost satisfies C(s,T) ≥ C(s,u) + C(u,T).
//
// ✨ Key features:
//   - exact optimum (identical to O(n²) optimal partitioning)
//   - pluggable cost via the Cost interface / CostFunc (see package cost)
//   - default penalty ln(n), minimum segment length (default 2) for every
//     segment after the first; the leading segment may be shorter
//   - optional parallel candidate evaluation (WithWorkers)
//   - context cancellation and OnStep / OnPrune hooks
//   - full DP table and raw back-pointers in Result
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/changepoint/cost"
//	  "github.com/katalvlaran/changepoint/pelt"
//	)
//
//	l2, _ := cost.NewL2(data)
//	res, err := pelt.Run(data, l2,
//	  pelt.WithPenalty(3),   // β
//	  pelt.WithMinSize(2),   // shortest allowed segment
//	)
//	// res.Changepoints → [0 c1 c2 …], ascending, always starts at 0
//	// res.Segments()   → [{0 c1 …} {c1 c2 …} … {ck n …}]
//
// Performance:
//
//   - Time:   O(n) expected, O(n²) worst case (degenerate costs keep every candidate)
//   - Memory: O(n)
//
// The outer loop over positions is strictly sequential; only the
// evaluation of one position's candidates is parallelised.
package pelt
