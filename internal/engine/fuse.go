// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package engine

import (
	"math"
	"sort"

	"github.com/resonantlabs/trackrec/internal/rerank"
	"github.com/resonantlabs/trackrec/internal/scoring"
)

// fuse implements Stage 3 (audio fusion) and top-k emission of
// spec.md §4.6.
func (e *Engine) fuse(seed SeedInfo, seedID int64, reranked []rerank.Candidate, k int) *Response {
	seedRow, seedInBundle := e.bundle.RowByID(seedID)

	audioRaw := make([]float64, len(reranked))
	for i := range audioRaw {
		audioRaw[i] = math.NaN()
	}

	presentIdx := make([]int, 0, len(reranked))
	presentRows := make([][]float32, 0, len(reranked))
	if seedInBundle {
		for i, c := range reranked {
			if row, ok := e.bundle.RowByID(c.ID); ok {
				presentIdx = append(presentIdx, i)
				presentRows = append(presentRows, row)
			}
		}
		if len(presentRows) > 0 {
			cos := scoring.BatchCosine(seedRow, presentRows)
			for j, idx := range presentIdx {
				audioRaw[idx] = cos[j]
			}
		}
	}

	if len(presentRows) == 0 && !seedInBundle {
		return e.emitCFOnly(seed, reranked, k)
	}
	return e.emitHybrid(seed, reranked, audioRaw, k)
}

func (e *Engine) emitCFOnly(seed SeedInfo, reranked []rerank.Candidate, k int) *Response {
	if k > len(reranked) {
		k = len(reranked)
	}
	items := make([]Item, 0, k)
	for i := 0; i < k; i++ {
		items = append(items, e.toItem(i+1, reranked[i], reranked[i].ScoreFinal))
	}
	return &Response{Method: "cf_only", Seed: seed, Items: items}
}

func (e *Engine) emitHybrid(seed SeedInfo, reranked []rerank.Candidate, audioRaw []float64, k int) *Response {
	cfRaw := make([]float64, len(reranked))
	for i, c := range reranked {
		cfRaw[i] = c.ScoreFinal
	}
	cfNorm := scoring.MinMaxNormalize(cfRaw)
	audioNorm := scoring.MinMaxNormalize(audioRaw)

	alphaAudio := e.config.AlphaAudio
	alphaCF := 1 - alphaAudio

	type fused struct {
		candidate rerank.Candidate
		hybrid    float64
	}
	all := make([]fused, len(reranked))
	for i, c := range reranked {
		all[i] = fused{candidate: c, hybrid: alphaCF*cfNorm[i] + alphaAudio*audioNorm[i]}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].hybrid > all[j].hybrid
	})

	if k > len(all) {
		k = len(all)
	}
	items := make([]Item, 0, k)
	for i := 0; i < k; i++ {
		items = append(items, e.toItem(i+1, all[i].candidate, all[i].hybrid))
	}
	return &Response{Method: "hybrid", Seed: seed, Items: items}
}

func (e *Engine) toItem(rank int, c rerank.Candidate, score float64) Item {
	track, ok := e.catalogue.Lookup(c.ID)
	name, displayArtist := "", ""
	if ok {
		name = track.Name
		displayArtist = track.DisplayArtist
	}
	return Item{
		Rank:          rank,
		ID:            c.ID,
		Name:          name,
		DisplayArtist: displayArtist,
		PrimaryGenre:  c.PrimaryGenre,
		Score:         round6(score),
	}
}
