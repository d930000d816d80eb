// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package engine

import "sort"

// demoKeyMod is the modulus for the deterministic demo-branch sort key.
const demoKeyMod = 1_000_000

// demoRecommend ignores all models and returns the first k catalogue ids
// (other than the seed) ordered by the deterministic key
// (id*31 + seed_id) mod demoKeyMod, per spec.md §4.6.
func (e *Engine) demoRecommend(seed SeedInfo, seedID int64, k int) *Response {
	ids := e.catalogue.IDs()

	type keyed struct {
		id  int64
		key int64
	}
	candidates := make([]keyed, 0, len(ids))
	for _, id := range ids {
		if id == seedID {
			continue
		}
		candidates = append(candidates, keyed{id: id, key: (id*31 + seedID) % demoKeyMod})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].key < candidates[j].key
	})

	if k > len(candidates) {
		k = len(candidates)
	}

	items := make([]Item, 0, k)
	for i := 0; i < k; i++ {
		track, ok := e.catalogue.Lookup(candidates[i].id)
		if !ok {
			continue
		}
		items = append(items, Item{
			Rank:          i + 1,
			ID:            track.ID,
			Name:          track.Name,
			DisplayArtist: track.DisplayArtist,
			PrimaryGenre:  primaryGenreToken(track.PrimaryGenre),
			Score:         round6(1.0 - float64(i)*0.01),
		})
	}

	return &Response{Method: "demo", Seed: seed, Items: items}
}
