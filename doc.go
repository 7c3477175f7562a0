// Package changepoint is a small toolkit for offline changepoint detection in
// one-dimensional series: find where the statistical behaviour of a signal
// changes, exactly, in (near-)linear time.
//
// 🚀 What is changepoint?
//
//	A pure-Go library built around PELT (Pruned Exact Linear Time):
//		• Exact penalised segmentation via dynamic programming
//		• Sound candidate pruning, O(n) expected cost evaluations
//		• Pluggable segment costs: L2, Normal, L1, Poisson, Constant
//		• Optional bounded-parallel cost evaluation
//		• Hooks (OnStep, OnPrune) and context cancellation
//		• Deterministic synthetic generators with known ground truth
//
// ✨ Why choose changepoint?
//
//   - Exact – the pruned search returns the same optimum as the full DP
//   - Simple – one call: pelt.Changepoints(data, cost, opts...)
//   - Extensible – any type with Cost(start, end) plugs in
//   - Tested – brute-force cross-checks on every cost and option mix
//
// Under the hood, everything is organized under three subpackages:
//
//	pelt/   — the detector: options, forward pass, pruning, backtracking
//	cost/   — segment cost models backed by prefix sums (gonum/floats, gonum/stat)
//	series/ — reproducible test signals: Steps, Pulse, Counts
//
// ⚙️ Usage
//
//	data, _ := series.Steps([]float64{0, 4, 1}, []int{50, 50, 50}, series.WithNoise(1))
//	l2, _ := cost.NewL2(data)
//	cps, err := pelt.Changepoints(data, l2, pelt.WithPenalty(15))
//	// cps ≈ [0 50 100]
//
// See the package docs of pelt, cost and series for details.
package changepoint
