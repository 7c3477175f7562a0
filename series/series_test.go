package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/changepoint/series"
)

// TestSteps_Noiseless checks exact values and changepoints.
func TestSteps_Noiseless(t *testing.T) {
	data, cps := series.Steps([]float64{0, 10, -2}, []int{3, 2, 4})
	assert.Equal(t, []float64{0, 0, 0, 10, 10, -2, -2, -2, -2}, data)
	assert.Equal(t, []int{0, 3, 5}, cps)
}

// TestSteps_Invalid returns nil slices for bad requests.
func TestSteps_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		levels  []float64
		lengths []int
	}{
		{"no blocks", nil, nil},
		{"length mismatch", []float64{1, 2}, []int{3}},
		{"zero length", []float64{1, 2}, []int{3, 0}},
		{"negative length", []float64{1}, []int{-4}},
	}
	for _, tc := range cases {
		data, cps := series.Steps(tc.levels, tc.lengths)
		assert.Nil(t, data, tc.name)
		assert.Nil(t, cps, tc.name)
	}
}

// TestSteps_Deterministic checks the seed policy.
func TestSteps_Deterministic(t *testing.T) {
	levels, lengths := []float64{0, 5}, []int{20, 20}

	a, _ := series.Steps(levels, lengths, series.WithSeed(4), series.WithNoise(1))
	b, _ := series.Steps(levels, lengths, series.WithSeed(4), series.WithNoise(1))
	c, _ := series.Steps(levels, lengths, series.WithSeed(5), series.WithNoise(1))
	assert.Equal(t, a, b, "same seed, same stream")
	assert.NotEqual(t, a, c, "different seed, different stream")
}

// TestSteps_Trend adds k*i.
func TestSteps_Trend(t *testing.T) {
	data, _ := series.Steps([]float64{1}, []int{4}, series.WithTrend(0.5))
	assert.Equal(t, []float64{1, 1.5, 2, 2.5}, data)
}

// TestWithNoise_PanicsOnNegative guards the option constructor.
func TestWithNoise_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { series.WithNoise(-1) })
}

// TestPulse checks edges of a 4-on/4-off train.
func TestPulse(t *testing.T) {
	data, cps := series.Pulse(20, 8, 0.5, 3)
	require.Len(t, data, 20)
	assert.Equal(t, []float64{3, 3, 3, 3, 0, 0, 0, 0, 3, 3}, data[:10])
	assert.Equal(t, []int{0, 4, 8, 12, 16}, cps)

	for _, bad := range [][4]float64{{0, 8, 0.5, 1}, {10, 1, 0.5, 1}, {10, 8, 0, 1}, {10, 8, 1, 1}, {10, 8, 0.5, 0}, {10, 2, 0.9, 1}} {
		data, cps := series.Pulse(int(bad[0]), int(bad[1]), bad[2], bad[3])
		assert.Nil(t, data, "%v", bad)
		assert.Nil(t, cps, "%v", bad)
	}
}

// TestCounts checks support, determinism and the per-block rate.
func TestCounts(t *testing.T) {
	rates, lengths := []float64{2, 30}, []int{2000, 2000}

	data, cps := series.Counts(rates, lengths, series.WithSeed(9))
	require.Len(t, data, 4000)
	assert.Equal(t, []int{0, 2000}, cps)
	for _, x := range data {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Equal(t, math.Trunc(x), x, "integer counts")
	}
	assert.InDelta(t, 2, stat.Mean(data[:2000], nil), 0.2)
	assert.InDelta(t, 30, stat.Mean(data[2000:], nil), 1)

	again, _ := series.Counts(rates, lengths, series.WithSeed(9))
	assert.Equal(t, data, again)

	data, cps = series.Counts([]float64{1, 0}, []int{3, 3})
	assert.Nil(t, data)
	assert.Nil(t, cps)
}
