package pelt

import (
	"context"
	"fmt"
	"math"
)

// DefaultMinSize is the default minimum length of every segment after the
// first. With two samples the candidate appended after position t is t-1;
// the leading segment may still be a single sample.
const DefaultMinSize = 2

// Option configures PELT via functional arguments.
// An invalid Option is recorded and surfaced as ErrInvalidInput when Run is invoked.
type Option func(*Options)

// Options holds the effective configuration of one run.
type Options struct {
	// Ctx is checked once per position; cancellation aborts the run with ctx.Err().
	Ctx context.Context

	// Penalty charged per segment. Ignored unless set through WithPenalty;
	// the default is DefaultPenalty(n).
	Penalty float64

	// MinSize is the minimum length (≥ 1) of every segment after the first.
	MinSize int

	// Pruning enables the PELT pruning rule. Disabled, every candidate is
	// kept and the run is plain O(n²) optimal partitioning.
	Pruning bool

	// Workers bounds the goroutines used to evaluate the candidates of one
	// position. 0 or 1 evaluates sequentially.
	Workers int

	// OnStep, if non-nil, is called after every position.
	OnStep func(Step)

	// OnPrune, if non-nil, is called for every candidate s dropped after position t.
	OnPrune func(t, s int)

	penaltySet bool
	err        error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - penalty = ln(n)
//   - MinSize = DefaultMinSize
//   - pruning enabled
//   - sequential evaluation, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MinSize: DefaultMinSize,
		Pruning: true,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPenalty sets the per-segment penalty.
//
//	p ≥ 0 and finite: used as is
//	otherwise: invalid option → ErrInvalidInput
func WithPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			o.err = fmt.Errorf("%w: penalty must be finite and non-negative, got %v", ErrInvalidInput, p)

			return
		}
		o.Penalty = p
		o.penaltySet = true
	}
}

// WithMinSize sets the minimum length of every non-leading segment; m < 1 is invalid.
func WithMinSize(m int) Option {
	return func(o *Options) {
		if m < 1 {
			o.err = fmt.Errorf("%w: MinSize must be ≥ 1, got %d", ErrInvalidInput, m)

			return
		}
		o.MinSize = m
	}
}

// WithPruning toggles the pruning rule.
func WithPruning(enabled bool) Option {
	return func(o *Options) {
		o.Pruning = enabled
	}
}

// WithWorkers evaluates candidates with up to k goroutines; k < 0 is invalid.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrInvalidInput, k)

			return
		}
		o.Workers = k
	}
}

// WithOnStep registers a callback run after every position.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnPrune registers a callback run for every pruned candidate.
func WithOnPrune(fn func(t, s int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}
