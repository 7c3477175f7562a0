package pelt

import "slices"

// backtrack walks the back-pointer chain from position n down to 0 and
// returns the visited segment starts in ascending order. 0 is always included.
//
// Complexity: O(k log k) for k segments.
func backtrack(back []int, n int) []int {
	last := back[n]
	cps := []int{last}
	for last > 0 {
		last = back[last]
		cps = append(cps, last)
	}
	slices.Sort(cps)

	return cps
}
