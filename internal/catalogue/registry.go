// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package catalogue

import "strings"

// searchEntry is one row of the (id, normalized_text) search index.
type searchEntry struct {
	id   int64
	text string
}

// Registry is the immutable, in-memory track-metadata registry. Once built
// by Load or NewDemoRegistry it is read-only for the remainder of the
// process lifetime and safe for concurrent reads without locking.
type Registry struct {
	tracks map[int64]Track
	ids    []int64
	index  []searchEntry
}

// Lookup returns the track for id and whether it was present.
func (r *Registry) Lookup(id int64) (Track, bool) {
	t, ok := r.tracks[id]
	return t, ok
}

// Len returns the number of distinct tracks held by the registry.
func (r *Registry) Len() int {
	return len(r.ids)
}

// IDs returns the catalogue ids in insertion order. The returned slice must
// not be mutated by the caller.
func (r *Registry) IDs() []int64 {
	return r.ids
}

// Search lowercases and strips q, then performs a deterministic linear scan
// of the search index in insertion order, returning up to limit tracks whose
// normalized text contains q as a substring. No tokenization or fuzzy
// matching is performed.
func (r *Registry) Search(q string, limit int) []Track {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || limit <= 0 {
		return nil
	}

	results := make([]Track, 0, limit)
	for _, entry := range r.index {
		if len(results) >= limit {
			break
		}
		if strings.Contains(entry.text, q) {
			if t, ok := r.tracks[entry.id]; ok {
				results = append(results, t)
			}
		}
	}
	return results
}

func normalizedText(name, displayArtist string) string {
	return strings.ToLower(strings.TrimSpace(name + " " + displayArtist))
}

// newRegistry assembles a Registry from tracks already deduplicated and in
// insertion order, building the search index alongside it.
func newRegistry(ordered []Track) *Registry {
	r := &Registry{
		tracks: make(map[int64]Track, len(ordered)),
		ids:    make([]int64, 0, len(ordered)),
		index:  make([]searchEntry, 0, len(ordered)),
	}
	for _, t := range ordered {
		r.tracks[t.ID] = t
		r.ids = append(r.ids, t.ID)
		r.index = append(r.index, searchEntry{id: t.ID, text: normalizedText(t.Name, t.DisplayArtist)})
	}
	return r
}
