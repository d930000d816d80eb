// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/resonantlabs/trackrec/internal/audioembed"
	"github.com/resonantlabs/trackrec/internal/catalogue"
	"github.com/resonantlabs/trackrec/internal/covisit"
	"github.com/resonantlabs/trackrec/internal/rerank"
)

// Engine orchestrates the catalogue, vocabulary, and audio bundle behind a
// single Recommend entry point. All three resources are read-only for the
// lifetime of the Engine, so Recommend requires no locking of its own.
type Engine struct {
	config Config
	logger zerolog.Logger

	catalogue *catalogue.Registry
	vocab     *covisit.Vocabulary
	bundle    *audioembed.Bundle
}

//nolint:gocritic // logger passed by value is the teacher's zerolog convention
func New(cfg Config, reg *catalogue.Registry, vocab *covisit.Vocabulary, bundle *audioembed.Bundle, logger zerolog.Logger) *Engine {
	return &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "engine").Logger(),
		catalogue: reg,
		vocab:     vocab,
		bundle:    bundle,
	}
}

// Healthy reports the resource-level load state the health endpoint needs.
type Healthy struct {
	CatalogueLoaded  bool
	VocabularyLoaded bool
	BundleLoaded     bool
}

func (e *Engine) Health() Healthy {
	return Healthy{
		CatalogueLoaded:  e.catalogue != nil,
		VocabularyLoaded: e.vocab != nil,
		BundleLoaded:     e.bundle != nil,
	}
}

// EngineVersion returns the configured engine version tag.
func (e *Engine) EngineVersion() string { return e.config.EngineVersion }

// AudioModel returns the configured audio model tag.
func (e *Engine) AudioModel() string { return e.config.AudioModel }

// DemoMode reports whether the engine is running in demo mode.
func (e *Engine) DemoMode() bool { return e.config.DemoMode }

// DefaultK returns the configured default result count.
func (e *Engine) DefaultK() int { return e.config.DefaultK }

// Recommend resolves seedID against the catalogue and returns a ranked
// top-k list, choosing the demo, cf_only, or hybrid path per spec.md §4.6.
func (e *Engine) Recommend(ctx context.Context, seedID int64, k int) (*Response, error) {
	if e.catalogue == nil {
		return nil, newError(EngineUninitialized, "catalogue is not loaded")
	}

	seedTrack, ok := e.catalogue.Lookup(seedID)
	if !ok {
		return nil, newError(SeedNotFound, fmt.Sprintf("seed id %d not found in catalogue", seedID))
	}
	seedInfo := SeedInfo{ID: seedTrack.ID, Name: seedTrack.Name, DisplayArtist: seedTrack.DisplayArtist}

	if e.config.DemoMode {
		return e.demoRecommend(seedInfo, seedID, k), nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	candidates, err := e.retrieveCandidates(seedID)
	if err != nil {
		return nil, err
	}

	seedPrimaryGenre := primaryGenreToken(seedTrack.PrimaryGenre)
	reranked := rerank.Rerank(candidates, seedPrimaryGenre, e.config.Stage3Candidates, e.config.Rerank)

	return e.fuse(seedInfo, seedID, reranked, k), nil
}

// retrieveCandidates implements Stage 1 (CF retrieval) of spec.md §4.6.
func (e *Engine) retrieveCandidates(seedID int64) ([]rerank.Candidate, error) {
	seedKey := strconv.FormatInt(seedID, 10)
	if e.vocab == nil || !e.vocab.Has(seedKey) {
		return nil, newError(SeedUnknownToCF, fmt.Sprintf("seed key %q is unknown to the CF vocabulary", seedKey))
	}

	neighbours, _ := e.vocab.Neighbours(seedKey, e.config.CandidateTopN+50)

	candidates := make([]rerank.Candidate, 0, e.config.CandidateTopN)
	for _, nb := range neighbours {
		if len(candidates) >= e.config.CandidateTopN {
			break
		}
		nid, err := strconv.ParseInt(nb.Key, 10, 64)
		if err != nil || nid == seedID {
			continue
		}
		track, ok := e.catalogue.Lookup(nid)
		if !ok {
			continue
		}
		candidates = append(candidates, rerank.Candidate{
			ID:           nid,
			ScoreCF:      nb.Score,
			ArtistKey:    track.ArtistKey,
			PrimaryGenre: primaryGenreToken(track.PrimaryGenre),
		})
	}

	if len(candidates) == 0 {
		return nil, newError(CFGenerationFailed, "no surviving CF candidates for seed")
	}
	return candidates, nil
}
