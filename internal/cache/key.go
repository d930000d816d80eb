// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package cache

import "fmt"

// livenessKey is a sentinel key probed by Ping. It is never written by
// Set, so a lookup always misses cleanly; Ping only cares whether the
// lookup itself succeeds without a store-level error.
const livenessKey = "rec:__liveness__"

// Key builds the Result Cache key for a recommend call, per spec.md §6:
// rec:<engine_version>:<audio_model>:seed:<seed_id>:k:<k>. Changing
// engineVersion or audioModel produces a disjoint key space, which is how
// the cache invalidates itself across model/engine upgrades without an
// explicit flush.
func Key(engineVersion, audioModel string, seedID int64, k int) string {
	return fmt.Sprintf("rec:%s:%s:seed:%d:k:%d", engineVersion, audioModel, seedID, k)
}
