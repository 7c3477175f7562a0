// Package cost provides segment-cost strategies for changepoint search.
//
// Every type exposes
//
//	Cost(start, end int) (float64, error)
//
// returning the cost of data[start:end) as one homogeneous segment, which
// makes it a drop-in pelt.Cost. Constructors validate and preprocess the
// series once (prefix sums via gonum/floats); values are immutable afterwards
// and safe for concurrent use.
//
// ✨ Available costs:
//   - L2       — squared deviation from the segment mean (mean shifts), O(1)
//   - Normal   — Gaussian negative log-likelihood (mean + variance shifts), O(1)
//   - Poisson  — Poisson negative log-likelihood for counts (rate shifts), O(1)
//   - L1       — absolute deviation from the segment median (robust), O(k log k)
//   - Constant — fixed value, useful for tests and degenerate baselines
//
// L2, Normal and Poisson are maximum-likelihood costs, so splitting a segment
// never increases its cost; that is the condition PELT pruning relies on.
package cost
