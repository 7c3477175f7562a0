// SPDX-License-Identifier: MIT
// Package: changepoint/series
//
// steps.go — piecewise-constant series with known changepoints.
//
// Contract:
//   • Steps(levels, lengths, opts...) returns the series and its true
//     changepoints (segment starts, ascending, beginning with 0).
//   • Invalid input (empty, length mismatch, non-positive length) ⇒ nil, nil.
//   • O(n) time and memory.

package series

import (
	"math/rand/v2"
)

// Steps concatenates len(levels) constant blocks; block i has value levels[i]
// and lengths[i] samples. Trend and noise (WithTrend, WithNoise) are added on top.
func Steps(levels []float64, lengths []int, opts ...Option) (data []float64, changepoints []int) {
	total, ok := totalLength(len(levels), lengths)
	if !ok {
		return nil, nil
	}

	cfg := newConfig(opts...)
	rng := rand.New(cfg.source())

	data = make([]float64, 0, total)
	changepoints = make([]int, 0, len(levels))
	for b, level := range levels {
		changepoints = append(changepoints, len(data))
		for range lengths[b] {
			data = append(data, sample(cfg, rng, level, len(data)))
		}
	}

	return data, changepoints
}

// totalLength validates block lengths against the number of blocks.
func totalLength(blocks int, lengths []int) (int, bool) {
	if blocks == 0 || blocks != len(lengths) {
		return 0, false
	}
	total := 0
	for _, l := range lengths {
		if l < 1 {
			return 0, false
		}
		total += l
	}

	return total, true
}

// sample applies trend and noise to a base value at index i.
func sample(cfg config, rng *rand.Rand, base float64, i int) float64 {
	base += cfg.trend * float64(i)
	if cfg.noise > 0 {
		base += cfg.noise * rng.NormFloat64()
	}

	return base
}
