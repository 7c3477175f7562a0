package pelt_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/changepoint/pelt"
)

// shiftSeries is the canonical two-level step: five zeros then five tens.
var shiftSeries = []float64{0, 0, 0, 0, 0, 10, 10, 10, 10, 10}

// piecewise builds a series of n samples whose mean jumps every ~n/levels
// steps, plus unit Gaussian noise. The stream is fully determined by seed.
func piecewise(seed uint64, n, levels int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	mean := 0.0
	for i := range out {
		if levels > 0 && i%(n/levels+1) == 0 {
			mean = float64(rng.IntN(11) - 5)
		}
		out[i] = mean + rng.NormFloat64()
	}

	return out
}

// bruteForce is unpruned optimal partitioning: every admissible start is
// tried at every position (0 always, s > 0 when end-s ≥ minSize). It returns
// the F table and back-pointers in the same layout as pelt.Result.
func bruteForce(t *testing.T, c pelt.Cost, n int, penalty float64, minSize int) ([]float64, []int) {
	t.Helper()

	f := make([]float64, n+1)
	back := make([]int, n+1)
	f[0] = -penalty
	for end := 1; end <= n; end++ {
		f[end] = math.Inf(1)
		back[end] = -1
		for start := 0; start < end; start++ {
			if start > 0 && end-start < minSize {
				break
			}
			v, err := c.Cost(start, end)
			require.NoError(t, err)
			if total := f[start] + v + penalty; total < f[end] {
				f[end], back[end] = total, start
			}
		}
	}

	return f, back
}

// chain follows back-pointers from n to 0, ascending.
func chain(back []int, n int) []int {
	var rev []int
	for last := back[n]; ; last = back[last] {
		rev = append(rev, last)
		if last == 0 {
			break
		}
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}
