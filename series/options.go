// SPDX-License-Identifier: MIT
// Package: changepoint/series
//
// options.go — functional options and resolved configuration for generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic and return nil on bad requests.
//   • Determinism is explicit: every random draw comes from the stream
//     selected by WithSeed (default seed 1).
//   • Later options override earlier ones.

package series

import (
	"math/rand/v2"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed  = 1   // PCG seed when WithSeed is not given
	defaultNoise = 0.0 // Gaussian sigma; 0 disables noise
	defaultTrend = 0.0 // linear trend increment per sample
)

// pcgStream is the fixed second PCG word; only the seed varies.
const pcgStream = 0x853c49e6748fea9b

// Option customizes a generator call.
type Option func(*config)

// config aggregates the knobs shared by all generators.
type config struct {
	seed  uint64
	noise float64 // ≥ 0
	trend float64 // any real
}

func newConfig(opts ...Option) config {
	cfg := config{seed: defaultSeed, noise: defaultNoise, trend: defaultTrend}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns a fresh PCG stream for this call.
func (c config) source() *rand.PCG {
	return rand.NewPCG(c.seed, pcgStream)
}

// WithSeed selects the random stream. Same seed, same output.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithNoise adds N(0, sigma²) noise to every real-valued sample.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithNoise(sigma<0)")
	}

	return func(c *config) {
		c.noise = sigma
	}
}

// WithTrend adds k*i to sample i of real-valued series.
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trend = k
	}
}
