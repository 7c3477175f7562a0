package pelt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/changepoint/cost"
	"github.com/katalvlaran/changepoint/pelt"
	"github.com/katalvlaran/changepoint/series"
)

// TestRun_RecoversSteps finds well separated mean shifts under noise.
func TestRun_RecoversSteps(t *testing.T) {
	data, want := series.Steps(
		[]float64{0, 20, -20, 20},
		[]int{40, 30, 50, 40},
		series.WithSeed(3), series.WithNoise(1),
	)
	require.NotNil(t, data)

	l2, err := cost.NewL2(data)
	require.NoError(t, err)
	pen := 3 * math.Log(float64(len(data)))

	for _, workers := range []int{0, 4} {
		cps, err := pelt.Changepoints(data, l2, pelt.WithPenalty(pen), pelt.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, want, cps, "workers=%d", workers)
	}
}

// TestRun_RecoversPulses finds every edge of a pulse train.
func TestRun_RecoversPulses(t *testing.T) {
	data, want := series.Pulse(64, 16, 0.5, 10, series.WithSeed(5), series.WithNoise(0.5))
	require.NotNil(t, data)

	l2, err := cost.NewL2(data)
	require.NoError(t, err)

	cps, err := pelt.Changepoints(data, l2, pelt.WithPenalty(3*math.Log(float64(len(data)))))
	require.NoError(t, err)
	assert.Equal(t, want, cps)
}

// TestRun_RecoversCountRates finds rate changes in Poisson counts.
func TestRun_RecoversCountRates(t *testing.T) {
	data, want := series.Counts([]float64{2, 40, 8}, []int{60, 60, 60}, series.WithSeed(11))
	require.NotNil(t, data)

	pois, err := cost.NewPoisson(data)
	require.NoError(t, err)

	cps, err := pelt.Changepoints(data, pois, pelt.WithPenalty(3*math.Log(float64(len(data)))))
	require.NoError(t, err)
	assert.Equal(t, want, cps)
}

// TestRun_L1RobustToOutlier keeps a single spike from creating segments.
func TestRun_L1RobustToOutlier(t *testing.T) {
	data, want := series.Steps([]float64{0, 5}, []int{30, 30}, series.WithSeed(2), series.WithNoise(0.3))
	data[12] = 40

	l1, err := cost.NewL1(data)
	require.NoError(t, err)

	cps, err := pelt.Changepoints(data, l1, pelt.WithPenalty(10), pelt.WithMinSize(3))
	require.NoError(t, err)
	assert.Equal(t, want, cps)
}

// TestRun_OffsetInvariant shifts a step series by 1e9; changepoints must not move.
func TestRun_OffsetInvariant(t *testing.T) {
	data, want := series.Steps([]float64{0, 1}, []int{8, 8}, series.WithSeed(4), series.WithNoise(0.1))
	shifted := make([]float64, len(data))
	for i, x := range data {
		shifted[i] = x + 1e9
	}

	for _, d := range [][]float64{data, shifted} {
		l2, err := cost.NewL2(d)
		require.NoError(t, err)
		cps, err := pelt.Changepoints(d, l2, pelt.WithPenalty(1))
		require.NoError(t, err)
		assert.Equal(t, want, cps)
	}
}
