// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package scoring

import "math"

// rangeEpsilon is the threshold below which a value range is treated as
// degenerate (all non-NaN values effectively equal).
const rangeEpsilon = 1e-8

// MinMaxNormalize scales v into [0, 1] using the min and max of its non-NaN
// entries. NaN entries in the output are always 0.0 (absence is treated as
// the worst score). If v has no non-NaN entries the result is all zeros; if
// the non-NaN range is smaller than rangeEpsilon every non-NaN position
// becomes 0.5.
func MinMaxNormalize(v []float64) []float64 {
	out := make([]float64, len(v))

	min := math.Inf(1)
	max := math.Inf(-1)
	any := false
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		any = true
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	if !any {
		return out
	}

	degenerate := max-min < rangeEpsilon
	for i, x := range v {
		if math.IsNaN(x) {
			out[i] = 0.0
			continue
		}
		if degenerate {
			out[i] = 0.5
			continue
		}
		out[i] = (x - min) / (max - min)
	}
	return out
}
