// SPDX-License-Identifier: MIT
// Package: changepoint/series
//
// counts.go — Poisson count series with piecewise-constant rates.
//
// Contract:
//   • Counts(rates, lengths, opts...) returns non-negative integer-valued
//     samples and the true changepoints. WithNoise/WithTrend do not apply.
//   • Invalid input (as for Steps, or a rate ≤ 0) ⇒ nil, nil.

package series

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Counts draws lengths[i] samples from Poisson(rates[i]) for each block i,
// e.g. visits per minute before and after a traffic change.
func Counts(rates []float64, lengths []int, opts ...Option) (data []float64, changepoints []int) {
	total, ok := totalLength(len(rates), lengths)
	if !ok {
		return nil, nil
	}
	for _, r := range rates {
		if !(r > 0) {
			return nil, nil
		}
	}

	cfg := newConfig(opts...)
	src := cfg.source()

	data = make([]float64, 0, total)
	changepoints = make([]int, 0, len(rates))
	for b, rate := range rates {
		changepoints = append(changepoints, len(data))
		dist := distuv.Poisson{Lambda: rate, Src: src}
		for range lengths[b] {
			data = append(data, dist.Rand())
		}
	}

	return data, changepoints
}
