// Package series generates deterministic synthetic series with known
// changepoints, for tests, benchmarks and examples of the pelt package.
//
// Every generator returns the samples together with the true segment starts
// (ascending, beginning with 0), in the same shape pelt.Changepoints returns.
//
// Generators:
//   - Steps:  piecewise-constant levels (mean shifts)
//   - Pulse:  rectangular on/off train (periodic shifts)
//   - Counts: Poisson counts with piecewise-constant rates
//
// Options: WithSeed, WithNoise, WithTrend. Invalid generator arguments yield
// nil slices; invalid option values panic at construction.
package series
