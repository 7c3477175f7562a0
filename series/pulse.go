// SPDX-License-Identifier: MIT
// Package: changepoint/series
//
// pulse.go — deterministic rectangular pulse train.
//
// Purpose:
//   • Reproducible on/off level shifts for tests and benchmarks: every rising
//     and falling edge is a true changepoint.
//
// Contract:
//   • Pulse(n, period, duty, amp, opts...) returns (data, changepoints) or
//     nil, nil on invalid input (n<1, period<2, duty∉(0,1), amp≤0, or a duty
//     that leaves an empty on- or off-phase).
//   • O(n) time and memory.

package series

import (
	"math/rand/v2"
)

// Pulse returns n samples of a rectangular wave: amp for the first
// round(duty*period) samples of each period, 0 for the rest.
func Pulse(n, period int, duty, amp float64, opts ...Option) (data []float64, changepoints []int) {
	if n < 1 || period < 2 || duty <= 0 || duty >= 1 || amp <= 0 {
		return nil, nil
	}
	on := int(duty*float64(period) + 0.5)
	if on < 1 || on >= period {
		return nil, nil
	}

	cfg := newConfig(opts...)
	rng := rand.New(cfg.source())

	data = make([]float64, n)
	changepoints = []int{0}
	for i := range data {
		phase := i % period
		base := 0.0
		if phase < on {
			base = amp
		}
		if i > 0 && (phase == 0 || phase == on) {
			changepoints = append(changepoints, i)
		}
		data[i] = sample(cfg, rng, base, i)
	}

	return data, changepoints
}
