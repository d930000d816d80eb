// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package covisit

import (
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/resonantlabs/trackrec/internal/logging"
)

// Neighbour is one entry of a neighbours() result: a co-listening partner
// key and its similarity score.
type Neighbour struct {
	Key   string  `json:"key"`
	Score float64 `json:"score"`
}

// Vocabulary is the loaded, read-only co-listening model. A nil *Vocabulary
// means "absent": CF is unavailable for the process lifetime.
type Vocabulary struct {
	adjacency map[string][]Neighbour
}

// onDiskFormat is the opaque on-disk representation: seed key to an
// unordered list of neighbours, sorted into descending score order on load.
type onDiskFormat map[string][]Neighbour

// Load reads the co-listening vocabulary from path. An empty path or a
// missing file yields (nil, nil): the vocabulary is absent, not an error,
// per the optional-resource contract. A present-but-unparsable file is
// logged and also treated as absent.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logging.Info().Str("path", path).Msg("co-listening vocabulary source unavailable, CF disabled")
		return nil, nil
	}

	var disk onDiskFormat
	if err := json.Unmarshal(raw, &disk); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("co-listening vocabulary unparsable, CF disabled")
		return nil, nil
	}

	adjacency := make(map[string][]Neighbour, len(disk))
	for key, neighbours := range disk {
		sorted := make([]Neighbour, len(neighbours))
		copy(sorted, neighbours)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Score > sorted[j].Score
		})
		adjacency[key] = sorted
	}

	return &Vocabulary{adjacency: adjacency}, nil
}

// Has reports whether key is present in the vocabulary.
func (v *Vocabulary) Has(key string) bool {
	if v == nil {
		return false
	}
	_, ok := v.adjacency[key]
	return ok
}

// Neighbours returns up to n neighbours of key in strictly decreasing score
// order. The second return value is false when key is absent from the
// vocabulary ("unknown to CF").
func (v *Vocabulary) Neighbours(key string, n int) ([]Neighbour, bool) {
	if v == nil {
		return nil, false
	}
	all, ok := v.adjacency[key]
	if !ok {
		return nil, false
	}
	if n < 0 || n > len(all) {
		n = len(all)
	}
	return all[:n], true
}
