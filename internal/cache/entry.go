// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package cache

import "github.com/resonantlabs/trackrec/internal/engine"

// Entry is the cached payload for a single recommend call: method, seed,
// and items, exactly as spec.md §4.7 specifies. The "cached" flag
// returned to API callers is not part of the stored value — it reflects
// whether this entry was found on the current request, not a property of
// the data itself.
type Entry struct {
	Method string          `json:"method"`
	Seed   engine.SeedInfo `json:"seed"`
	Items  []engine.Item   `json:"items"`
}

// FromResponse converts an engine.Response into the cache payload shape.
func FromResponse(resp *engine.Response) Entry {
	return Entry{Method: resp.Method, Seed: resp.Seed, Items: resp.Items}
}

// ToResponse converts a cached entry back into an engine.Response.
func (e Entry) ToResponse() *engine.Response {
	return &engine.Response{Method: e.Method, Seed: e.Seed, Items: e.Items}
}
