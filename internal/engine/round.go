// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package engine

import "math"

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
