// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package rerank

import (
	"sort"

	"github.com/resonantlabs/trackrec/internal/catalogue"
	"github.com/resonantlabs/trackrec/internal/scoring"
)

// Rerank applies the three stages of the re-ranking pipeline in order and
// returns a new, shorter candidate list of at most topkFinal entries,
// ordered by ScoreFinal descending with ties broken by their position after
// Stage B (equivalently, by the order the greedy Stage C pass selected
// them). The input slice is not mutated.
func Rerank(input []Candidate, seedPrimaryGenre string, topkFinal int, s Scalars) []Candidate {
	if len(input) == 0 {
		return nil
	}

	working := make([]Candidate, len(input))
	copy(working, input)

	stageArtistSoftPenalty(working, s)
	stageGenreRailguard(working, seedPrimaryGenre, s)
	return stageArtistHardcut(working, topkFinal, s)
}

func artistKeyOf(key string) string {
	if key == "" {
		return catalogue.UnknownArtistKey
	}
	return key
}

// stageArtistSoftPenalty sorts by ScoreCF descending (stable) and penalizes
// the occurrences of each artist beyond MaxPerArtistSoft.
func stageArtistSoftPenalty(working []Candidate, s Scalars) {
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].ScoreCF > working[j].ScoreCF
	})

	occurrence := make(map[string]int, len(working))
	for i := range working {
		c := &working[i]
		key := artistKeyOf(c.ArtistKey)
		ord := occurrence[key]

		var penalty float64
		if ord >= s.MaxPerArtistSoft {
			penalty = float64(ord-s.MaxPerArtistSoft+1) * s.PenaltyPerExtra
		}

		c.ArtistPenaltySoft = penalty
		c.ScoreAfterArtist = c.ScoreCF - penalty
		occurrence[key] = ord + 1
	}
}

// stageGenreRailguard penalizes candidates whose genre group differs from
// the seed's, scaled by whether either side is one of the special groups.
func stageGenreRailguard(working []Candidate, seedPrimaryGenre string, s Scalars) {
	seedGroup := scoring.GenreGroup(seedPrimaryGenre)

	for i := range working {
		c := &working[i]
		candGroup := scoring.GenreGroup(c.PrimaryGenre)
		penalty := genrePenalty(seedGroup, candGroup, s)
		c.GenrePenalty = penalty
		c.ScoreAfterGenre = c.ScoreAfterArtist - penalty
	}
}

func genrePenalty(seedGroup, candGroup string, s Scalars) float64 {
	if seedGroup == scoring.GroupUnknown {
		return 0
	}
	if candGroup == seedGroup {
		return 0
	}

	seedSpecial := scoring.IsSpecialGroup(seedGroup)
	candSpecial := scoring.IsSpecialGroup(candGroup)

	switch {
	case seedSpecial && candSpecial:
		return s.OffrailPenaltySpecial
	case seedSpecial != candSpecial:
		return s.OffrailPenaltyGeneral * 1.5
	default:
		return s.OffrailPenaltyGeneral
	}
}

// stageArtistHardcut sorts by ScoreAfterGenre descending (stable) and
// greedily selects up to topkFinal candidates, skipping any artist beyond
// MaxPerArtistFinal occurrences.
func stageArtistHardcut(working []Candidate, topkFinal int, s Scalars) []Candidate {
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].ScoreAfterGenre > working[j].ScoreAfterGenre
	})

	selected := make([]Candidate, 0, topkFinal)
	finalCount := make(map[string]int, len(working))

	for i := range working {
		if len(selected) >= topkFinal {
			break
		}
		c := working[i]
		key := artistKeyOf(c.ArtistKey)
		if finalCount[key] >= s.MaxPerArtistFinal {
			continue
		}
		c.ScoreFinal = c.ScoreAfterGenre
		selected = append(selected, c)
		finalCount[key]++
	}

	return selected
}
